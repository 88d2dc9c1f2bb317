// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// resource client command line.
//
// All Msg* constants are human-readable message strings printed to the
// diagnostic stream to describe why a command failed. Keeping them in one
// place ensures consistent wording across commands.
package app

const (
	// MsgRemoteResponse is printed when the resource service answered with a
	// non-success status.
	MsgRemoteResponse = "the resource service answered with an error status"

	// MsgNoResponse is printed when a request was sent but nothing came back
	// (network failure, refused connection, timeout).
	MsgNoResponse = "no response was received from the resource service"

	// MsgRequestConstruction is printed when a request could not be built
	// from the given arguments.
	MsgRequestConstruction = "the request could not be built"

	// MsgInvalidDataProvided is printed when command arguments fail
	// validation before any request is made.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnexpectedError is printed for any other failure.
	MsgUnexpectedError = "unexpected error"
)
