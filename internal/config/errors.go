package config

import "errors"

var (
	// ErrNoBaseURL is returned when no remote mail service URL is configured.
	ErrNoBaseURL = errors.New("config: remote mail service base URL is required")
	// ErrNoAccounts is returned when the account list is empty.
	ErrNoAccounts = errors.New("config: at least one account id is required")
	// ErrNegativeRate is returned for a negative requests-per-second cap.
	ErrNegativeRate = errors.New("config: requests per second must not be negative")
	// ErrNegativeInterval is returned for a negative sync interval.
	ErrNegativeInterval = errors.New("config: sync interval must not be negative")
)
