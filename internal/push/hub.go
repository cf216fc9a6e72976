// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package push broadcasts like updates to connected WebSocket clients.
package push

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-photo-share/internal/config"
	"github.com/MKhiriev/go-photo-share/internal/logger"
	"github.com/MKhiriev/go-photo-share/models"
	"github.com/gorilla/websocket"
)

// MessageLikeUpdated is the type of every message the hub sends.
const MessageLikeUpdated = "like.updated"

// Message is the JSON frame written to clients.
type Message struct {
	Type string `json:"type"`
	models.LikeEvent
}

// Hub fans like events out to every connected client. LikeUpdated never
// blocks: events are dropped once the queue is full, and a client that
// cannot keep up is disconnected.
type Hub struct {
	clients map[*client]struct{}
	closed  bool
	mu      sync.RWMutex

	broadcast chan models.LikeEvent

	upgrader websocket.Upgrader
	logger   *logger.Logger
}

func NewHub(cfg config.Push, logger *logger.Logger) *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		broadcast: make(chan models.LikeEvent, cfg.BufferSize),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// LikeUpdated queues event for broadcasting.
func (h *Hub) LikeUpdated(ctx context.Context, event models.LikeEvent) {
	select {
	case h.broadcast <- event:
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "*Hub.LikeUpdated").
			Str("photo_id", event.PhotoID).
			Msg("push queue is full, like update dropped")
	}
}

// Run broadcasts queued events until ctx is done, then disconnects every
// client.
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info().Str("func", "*Hub.Run").Msg("push hub started")

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.logger.Info().Str("func", "*Hub.Run").Msg("push hub stopped")
			return

		case event := <-h.broadcast:
			h.send(event)
		}
	}
}

// ClientsCount returns the number of connected clients.
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades the request to a WebSocket connection and subscribes it
// to like updates.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response.
		log.Warn().Err(err).Str("func", "*Hub.ServeWS").Msg("websocket upgrade failed")
		return
	}

	c := newClient(h, conn)
	if !h.subscribe(c) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server is shutting down"))
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (h *Hub) send(event models.LikeEvent) {
	payload, err := json.Marshal(Message{Type: MessageLikeUpdated, LikeEvent: event})
	if err != nil {
		h.logger.Err(err).Str("func", "*Hub.send").Msg("error marshalling like update")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn().Str("func", "*Hub.send").Msg("slow client disconnected")
			h.remove(c)
		}
	}
}

func (h *Hub) subscribe(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove must be called with h.mu held.
func (h *Hub) remove(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.remove(c)
	}
}
