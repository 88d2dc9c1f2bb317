package server

import "context"

// Server defines the lifecycle contract of the fixture server.
//
// Implementations block in [Server.RunServer] until shutdown is requested
// and release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// a stop signal arrives or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
