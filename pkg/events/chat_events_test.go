package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTurnEventType(t *testing.T) {
	tests := []struct {
		outcome string
		want    string
	}{
		{"matched", FaqMatched},
		{"fallback", FaqFallback},
		{"greeting", FaqGreeting},
		{"farewell", FaqFarewell},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			assert.Equal(t, tt.want, TurnEventType(tt.outcome))
			assert.Equal(t, tt.outcome, OutcomeFromType(tt.want))
		})
	}

	assert.Empty(t, OutcomeFromType("USER_REGISTERED"))
}

func TestTurnEventPayload(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	evt := TurnEvent{SessionID: "s-1", Outcome: "matched", Category: "shipping", Utterance: "cuanto tarda", Related: 1, OccurredAt: at}

	var e Event = evt
	assert.Equal(t, FaqMatched, e.EventType())
	assert.Equal(t, at, e.Timestamp())
	assert.Equal(t, "shipping", e.Payload()["category"])
	assert.Equal(t, "2025-03-01T10:00:00Z", e.Payload()["occurred_at"])
}
