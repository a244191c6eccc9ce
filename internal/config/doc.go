// Package config loads the go-mail-sync daemon configuration from
// environment variables, command-line flags and an optional JSON file,
// merges the sources (first non-zero value wins) and exposes a validated
// client view via GetClientConfig.
package config
