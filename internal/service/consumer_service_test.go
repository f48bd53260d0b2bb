package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/pkg/faq"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReloader struct {
	calls chan struct{}
	err   error
}

func (f *fakeReloader) Reload(ctx context.Context) (*faq.KnowledgeBase, error) {
	defer func() { f.calls <- struct{}{} }()
	if f.err != nil {
		return nil, f.err
	}
	return faq.NewKnowledgeBase(storeDocument()), nil
}

func newTestPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
}

func TestConsumerServiceReloadsOnMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "success"},
		{name: "failure is acked", err: errors.New("source unreachable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			pubSub := newTestPubSub()
			defer pubSub.Close()

			reloader := &fakeReloader{calls: make(chan struct{}, 2), err: tt.err}
			consumer := NewConsumerService(pubSub, "KB_RELOAD_TEST", reloader, time.Second, logger.NewNopLogger())
			require.NoError(t, consumer.Consume(ctx))

			publisher := NewPublisherService("KB_RELOAD_TEST", pubSub)
			payload, _ := json.Marshal(dto.ReloadKnowledgeBaseMessage{RequestedBy: "admin-1", RequestedAt: time.Now()})

			require.NoError(t, publisher.Publish(ctx, payload))
			waitCall(t, reloader.calls)

			// A second request is processed as well, so the first one was acked.
			require.NoError(t, publisher.Publish(ctx, payload))
			waitCall(t, reloader.calls)
		})
	}
}

func TestConsumerServiceSkipsMalformedMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub()
	defer pubSub.Close()

	reloader := &fakeReloader{calls: make(chan struct{}, 1)}
	consumer := NewConsumerService(pubSub, "KB_RELOAD_TEST", reloader, time.Second, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("KB_RELOAD_TEST", pubSub)
	require.NoError(t, publisher.Publish(ctx, []byte("{not json")))

	payload, _ := json.Marshal(dto.ReloadKnowledgeBaseMessage{RequestedBy: "admin-1"})
	require.NoError(t, publisher.Publish(ctx, payload))
	waitCall(t, reloader.calls)

	select {
	case <-reloader.calls:
		t.Fatal("malformed message triggered a reload")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, reloader.calls)
}

func waitCall(t *testing.T, calls <-chan struct{}) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("reload was not triggered")
	}
}
