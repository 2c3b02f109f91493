package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type NotificationCreatedEvent struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyNotificationCreated pushes a freshly stored notification to the
// owner's open sessions. A nil default hub makes this a no-op, so callers
// never depend on the hub being wired.
func NotifyNotificationCreated(userID uuid.UUID, id uuid.UUID, title, message, link string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := NotificationCreatedEvent{
		Type:      "notification_created",
		ID:        id.String(),
		Title:     title,
		Message:   message,
		Link:      link,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(userID, b)
}
