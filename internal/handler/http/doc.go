// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of go-photo-share.
//
// It wires the chi router, decodes requests into service calls and maps
// service errors onto HTTP status codes. Sessions travel in an HttpOnly
// cookie (or an "Authorization: Bearer" header); request tracing and access
// logging are handled here before requests reach the service layer.
package http
