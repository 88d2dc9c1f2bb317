// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the resource-client command line.
//
// It wires configuration, the resource client transport and the client
// services into a cobra command tree. Payloads are written to stdout;
// diagnostics and classified failures go to stderr.
package client
