// Package notify pushes booking and review events to connected accounts over
// websockets. Delivery is best effort: an offline recipient simply misses the
// event.
package notify

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"homestay/internal/domain"
)

type Event struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id,omitempty"`
	ReviewID  string    `json:"review_id,omitempty"`
	PlaceID   string    `json:"place_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Hub tracks one connection per account id. Registering again replaces the
// previous connection.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{connections: make(map[string]*websocket.Conn)}
}

func (h *Hub) Register(accountID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.connections[accountID]; ok && old != nil {
		_ = old.Close()
	}
	h.connections[accountID] = conn
}

func (h *Hub) Unregister(accountID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.connections[accountID]; ok && conn != nil {
		_ = conn.Close()
		delete(h.connections, accountID)
	}
}

func (h *Hub) Send(accountID string, event Event) bool {
	h.mu.RLock()
	conn, ok := h.connections[accountID]
	h.mu.RUnlock()

	if !ok || conn == nil {
		return false
	}
	if err := conn.WriteJSON(event); err != nil {
		h.Unregister(accountID)
		return false
	}
	return true
}

func (h *Hub) IsOnline(accountID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.connections[accountID]
	return ok
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

// The hub satisfies facade.Notifier.

func (h *Hub) BookingCreated(hostID string, b *domain.Booking) {
	h.Send(hostID, Event{
		Type:      "booking_created",
		BookingID: b.ID,
		PlaceID:   b.PlaceID,
		Status:    string(b.Status),
		SentAt:    time.Now().UTC(),
	})
}

func (h *Hub) BookingStatusChanged(userID string, b *domain.Booking) {
	h.Send(userID, Event{
		Type:      "booking_status_changed",
		BookingID: b.ID,
		PlaceID:   b.PlaceID,
		Status:    string(b.Status),
		SentAt:    time.Now().UTC(),
	})
}

func (h *Hub) ReviewCreated(hostID string, r *domain.Review) {
	h.Send(hostID, Event{
		Type:     "review_created",
		ReviewID: r.ID,
		PlaceID:  r.PlaceID,
		Rating:   r.Rating,
		SentAt:   time.Now().UTC(),
	})
}
