// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// RunServer blocks until a stop signal arrives; Shutdown may also be called
// directly to stop every transport.
type Server interface {
	// RunServer serves requests until a stop signal is received.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
