package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-d replica database DSN (SQLite path)
//	-server remote mail service base URL
//	-accounts comma-separated account ids to synchronize
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-rps outbound requests per second cap
//	-sync-interval periodic sync interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var controlAddress string
	var databaseDSN string
	var serverBaseURL string
	var accounts string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var requestsPerSecond float64
	var syncInterval time.Duration

	flag.StringVar(&controlAddress, "a", "", "Control API address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Replica database DSN")
	flag.StringVar(&serverBaseURL, "server", "", "Remote mail service base URL")
	flag.StringVar(&accounts, "accounts", "", "Comma-separated account ids")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&requestsPerSecond, "rps", 0, "Outbound requests per second cap")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")

	flag.Parse()

	var accountList []string
	if accounts != "" {
		for _, id := range strings.Split(accounts, ",") {
			if id = strings.TrimSpace(id); id != "" {
				accountList = append(accountList, id)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			Accounts: accountList,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:           serverBaseURL,
			RequestTimeout:    requestTimeout,
			RequestsPerSecond: requestsPerSecond,
		},
		Control: Control{
			HTTPAddress: controlAddress,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}
