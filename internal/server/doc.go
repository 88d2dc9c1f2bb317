// Package server runs the fixture server's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
