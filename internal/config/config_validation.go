package config

// validate checks the merged structured config for values that can be
// rejected before the client view is built. The client view performs its own
// stricter validation in [ClientConfig.validate]; here only values that are
// nonsensical in any view are rejected.
func (c *StructuredConfig) validate() error {
	if c.Adapter.RequestsPerSecond < 0 {
		return ErrNegativeRate
	}
	if c.Workers.SyncInterval < 0 {
		return ErrNegativeInterval
	}

	return nil
}
