package models

import "time"

// Fault describes an injected failure for a single request path on the
// fixture server.
type Fault struct {
	// StatusCode is written instead of the real response when non-zero.
	StatusCode int `json:"status_code,omitempty"`

	// Body replaces the default error body when StatusCode is set.
	Body string `json:"body,omitempty"`

	// DelayMS is slept before the fault (or the real handler) runs.
	DelayMS int `json:"delay_ms,omitempty"`

	// Rate is the probability (0..1] of the fault triggering. Zero means 1.
	Rate float64 `json:"rate,omitempty"`

	// Drop closes the connection without writing any response.
	Drop bool `json:"drop,omitempty"`
}

// Delay returns DelayMS as a duration.
func (f Fault) Delay() time.Duration {
	return time.Duration(f.DelayMS) * time.Millisecond
}
