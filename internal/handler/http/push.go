// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// subscribeLikes upgrades the request to the like-update push channel.
func (h *Handler) subscribeLikes(w http.ResponseWriter, r *http.Request) {
	if h.subscriptions == nil {
		http.NotFound(w, r)
		return
	}

	h.subscriptions.ServeWS(w, r)
}
