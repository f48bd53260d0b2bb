package nats

import (
	"testing"
	"time"

	"faq-chat-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	at := time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC)
	evt := events.TurnEvent{SessionID: "abc", Outcome: "fallback", Utterance: "asdf", OccurredAt: at}

	data := []byte(`{"session_id":"abc","outcome":"fallback","utterance":"asdf","occurred_at":"2025-05-02T08:30:00Z"}`)
	decoded, err := DecodeEvent(Subject(evt.EventType()), data)
	require.NoError(t, err)

	assert.Equal(t, events.FaqFallback, decoded.EventType())
	assert.Equal(t, at, decoded.Timestamp())
	assert.Equal(t, "asdf", decoded.Payload()["utterance"])
}

func TestDecodeEventErrors(t *testing.T) {
	_, err := DecodeEvent("chat.FAQ_MATCHED", []byte("not json"))
	assert.Error(t, err)

	decoded, err := DecodeEvent("chat.FAQ_MATCHED", []byte(`{"occurred_at":"yesterday"}`))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), decoded.Timestamp(), time.Second)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "chat.FAQ_GREETING", Subject(events.FaqGreeting))
}
