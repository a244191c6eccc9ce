package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings derived from the shared structured
// config.
type ClientApp struct {
	// Version is the application version string.
	Version string
	// Accounts lists the account ids to keep synchronized.
	Accounts []string
}

// ClientAdapter holds network settings used by the events API client.
type ClientAdapter struct {
	// BaseURL is the root URL of the remote mail service.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RequestsPerSecond caps outbound call rate; zero disables the cap.
	RequestsPerSecond float64
	// Tokens maps account ids to bearer tokens for the remote API.
	Tokens map[string]string
}

// ClientDB contains local replica database settings.
type ClientDB struct {
	// DSN is the SQLite connection string of the local replica.
	DSN string
}

// ClientStorage groups replica storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientControl holds the local control API settings.
type ClientControl struct {
	// HTTPAddress is the listen address of the control API.
	HTTPAddress string
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level daemon configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Adapter contains outbound transport settings.
	Adapter ClientAdapter
	// Storage contains replica storage settings.
	Storage ClientStorage
	// Control contains control API settings.
	Control ClientControl
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the daemon config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the daemon runtime, applies defaults for optional values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			Accounts: cfg.App.Accounts,
		},
		Adapter: ClientAdapter{
			BaseURL:           cfg.Adapter.BaseURL,
			RequestTimeout:    cfg.Adapter.RequestTimeout,
			RequestsPerSecond: cfg.Adapter.RequestsPerSecond,
			Tokens:            cfg.Adapter.Tokens,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Control: ClientControl{HTTPAddress: cfg.Control.HTTPAddress},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (c *ClientConfig) applyDefaults() {
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = "mailsync.db"
	}
	if c.Control.HTTPAddress == "" {
		c.Control.HTTPAddress = "localhost:8489"
	}
	if c.Workers.SyncInterval <= 0 {
		c.Workers.SyncInterval = 5 * time.Minute
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = 30 * time.Second
	}
}

func (c *ClientConfig) validate() error {
	if c.Adapter.BaseURL == "" {
		return ErrNoBaseURL
	}
	if len(c.App.Accounts) == 0 {
		return ErrNoAccounts
	}

	return nil
}
