// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Outcome labels for API request counters.
const (
	OutcomeSuccess      = "success"
	OutcomeAPIError     = "api_error"
	OutcomeNetworkError = "network_error"
)

// Login outcome labels.
const (
	LoginSuccess  = "success"
	LoginRejected = "rejected"
	LoginError    = "error"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Backend API client metrics
	IncAPIRequest(outcome string) // OutcomeSuccess, OutcomeAPIError, OutcomeNetworkError
	ObserveAPIRequestDuration(duration time.Duration)

	// Session metrics
	IncLogin(outcome string) // LoginSuccess, LoginRejected, LoginError
	IncLogout()

	// Lookup screen metrics
	IncDomainCheck(phishing bool)
	IncEmailCheck(valid bool)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
