package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads path and decodes it into a StructuredConfig. The file uses
// the json tags declared on the config types.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %q: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding json config %q: %w", path, err)
	}

	return cfg, nil
}
