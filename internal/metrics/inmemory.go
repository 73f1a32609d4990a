package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	APIRequestSuccesses     uint64
	APIRequestErrors        uint64
	APINetworkErrors        uint64
	APIRequestDurationCount uint64
	APIRequestTotalNs       int64
	LoginSuccesses          uint64
	LoginRejections         uint64
	LoginErrors             uint64
	Logouts                 uint64
	DomainChecksPhishing    uint64
	DomainChecksClean       uint64
	EmailChecksValid        uint64
	EmailChecksInvalid      uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	apiRequestSuccesses     uint64
	apiRequestErrors        uint64
	apiNetworkErrors        uint64
	apiRequestDurationCount uint64
	apiRequestTotalNs       int64
	loginSuccesses          uint64
	loginRejections         uint64
	loginErrors             uint64
	logouts                 uint64
	domainChecksPhishing    uint64
	domainChecksClean       uint64
	emailChecksValid        uint64
	emailChecksInvalid      uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		APIRequestSuccesses:     atomic.LoadUint64(&m.apiRequestSuccesses),
		APIRequestErrors:        atomic.LoadUint64(&m.apiRequestErrors),
		APINetworkErrors:        atomic.LoadUint64(&m.apiNetworkErrors),
		APIRequestDurationCount: atomic.LoadUint64(&m.apiRequestDurationCount),
		APIRequestTotalNs:       atomic.LoadInt64(&m.apiRequestTotalNs),
		LoginSuccesses:          atomic.LoadUint64(&m.loginSuccesses),
		LoginRejections:         atomic.LoadUint64(&m.loginRejections),
		LoginErrors:             atomic.LoadUint64(&m.loginErrors),
		Logouts:                 atomic.LoadUint64(&m.logouts),
		DomainChecksPhishing:    atomic.LoadUint64(&m.domainChecksPhishing),
		DomainChecksClean:       atomic.LoadUint64(&m.domainChecksClean),
		EmailChecksValid:        atomic.LoadUint64(&m.emailChecksValid),
		EmailChecksInvalid:      atomic.LoadUint64(&m.emailChecksInvalid),
	}
}

// IncAPIRequest increments the counter for one backend call outcome.
func (m *InMemoryRecorder) IncAPIRequest(outcome string) {
	switch outcome {
	case OutcomeSuccess:
		atomic.AddUint64(&m.apiRequestSuccesses, 1)
	case OutcomeNetworkError:
		atomic.AddUint64(&m.apiNetworkErrors, 1)
	default:
		atomic.AddUint64(&m.apiRequestErrors, 1)
	}
}

// ObserveAPIRequestDuration records one backend call duration.
func (m *InMemoryRecorder) ObserveAPIRequestDuration(duration time.Duration) {
	atomic.AddUint64(&m.apiRequestDurationCount, 1)
	atomic.AddInt64(&m.apiRequestTotalNs, duration.Nanoseconds())
}

// IncLogin increments the counter for one login outcome.
func (m *InMemoryRecorder) IncLogin(outcome string) {
	switch outcome {
	case LoginSuccess:
		atomic.AddUint64(&m.loginSuccesses, 1)
	case LoginRejected:
		atomic.AddUint64(&m.loginRejections, 1)
	default:
		atomic.AddUint64(&m.loginErrors, 1)
	}
}

// IncLogout increments the logout counter.
func (m *InMemoryRecorder) IncLogout() {
	atomic.AddUint64(&m.logouts, 1)
}

// IncDomainCheck increments the counter for one domain verdict.
func (m *InMemoryRecorder) IncDomainCheck(phishing bool) {
	if phishing {
		atomic.AddUint64(&m.domainChecksPhishing, 1)
	} else {
		atomic.AddUint64(&m.domainChecksClean, 1)
	}
}

// IncEmailCheck increments the counter for one email verdict.
func (m *InMemoryRecorder) IncEmailCheck(valid bool) {
	if valid {
		atomic.AddUint64(&m.emailChecksValid, 1)
	} else {
		atomic.AddUint64(&m.emailChecksInvalid, 1)
	}
}
