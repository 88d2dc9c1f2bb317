package utils

import "github.com/google/uuid"

// NewTraceID returns a fresh, time-ordered (UUIDv7) identifier for tracing a
// request across the client and the fixture server. It falls back to a random
// UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
