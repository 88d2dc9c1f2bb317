// Package http implements the HTTP transport of the fixture server.
//
// It exposes the resource routes (/posts, /users) with the same contract as
// the public resource service, an admin API for injecting faults and the
// middleware chain: panic recovery, request tracing, access logging, fault
// injection and response compression. Requests are delegated to the service
// layer.
package http
