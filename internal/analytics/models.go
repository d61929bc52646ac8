package analytics

import "time"

// EventType classifies an analytics event.
type EventType string

const (
	EventEvaluation     EventType = "evaluation_performed"
	EventRecommendation EventType = "recommendations_ranked"
	EventChatMessage    EventType = "chat_message_classified"
	EventSchemeSaved    EventType = "scheme_saved"
	EventSchemeUnsaved  EventType = "scheme_unsaved"
)

// Event is one append-only analytics record. Events feed usage dashboards;
// they are advisory and must never block or fail a business call.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	UserID    string         `json:"user_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}
