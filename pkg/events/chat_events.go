package events

import (
	"strings"
	"time"
)

// Turn event codes, one per conversation outcome.
const (
	FaqMatched  = "FAQ_MATCHED"
	FaqFallback = "FAQ_FALLBACK"
	FaqGreeting = "FAQ_GREETING"
	FaqFarewell = "FAQ_FAREWELL"
)

// TurnEventType maps an outcome name ("matched", "fallback", ...) to its event code.
func TurnEventType(outcome string) string {
	return "FAQ_" + strings.ToUpper(outcome)
}

// OutcomeFromType is the inverse of TurnEventType. Unknown codes yield "".
func OutcomeFromType(eventType string) string {
	switch eventType {
	case FaqMatched, FaqFallback, FaqGreeting, FaqFarewell:
		return strings.ToLower(strings.TrimPrefix(eventType, "FAQ_"))
	default:
		return ""
	}
}

// TurnEvent describes one answered chat turn.
type TurnEvent struct {
	SessionID   string
	Outcome     string
	Category    string
	Utterance   string
	Related     int
	Suggestions int
	OccurredAt  time.Time
}

func (e TurnEvent) EventType() string {
	return TurnEventType(e.Outcome)
}

func (e TurnEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":        e.SessionID,
		"outcome":           e.Outcome,
		"category":          e.Category,
		"utterance":         e.Utterance,
		"related_questions": e.Related,
		"suggestions":       e.Suggestions,
		"occurred_at":       e.OccurredAt.Format(time.RFC3339Nano),
	}
}

func (e TurnEvent) Timestamp() time.Time {
	return e.OccurredAt
}
