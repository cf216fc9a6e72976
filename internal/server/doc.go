// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API, the optional gRPC health endpoint and the
// background workers, and stops all of them on SIGTERM, SIGINT or SIGQUIT.
package server
