package metrics

import "time"

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
// Useful as a default until a real metrics backend is wired in.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (n *NoopRecorder) IncAPIRequest(outcome string) {}

func (n *NoopRecorder) ObserveAPIRequestDuration(duration time.Duration) {}

func (n *NoopRecorder) IncLogin(outcome string) {}

func (n *NoopRecorder) IncLogout() {}

func (n *NoopRecorder) IncDomainCheck(phishing bool) {}

func (n *NoopRecorder) IncEmailCheck(valid bool) {}
