package service

import (
	"context"

	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/pkg/events"
)

// EventPublisher is satisfied by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// ITurnPublisher receives one event per answered chat turn.
type ITurnPublisher interface {
	PublishTurn(ctx context.Context, evt events.TurnEvent)
}

type natsTurnPublisher struct {
	publisher EventPublisher
	logger    logger.ILogger
}

// NewNatsTurnPublisher publishes turn events on the bus. A nil publisher
// turns every call into a no-op.
func NewNatsTurnPublisher(publisher EventPublisher, log logger.ILogger) ITurnPublisher {
	return &natsTurnPublisher{
		publisher: publisher,
		logger:    log,
	}
}

func (p *natsTurnPublisher) PublishTurn(ctx context.Context, evt events.TurnEvent) {
	if p.publisher == nil {
		return
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("CHAT", "Failed to publish "+evt.EventType()+" event", map[string]interface{}{
			"session_id": evt.SessionID,
			"error":      err.Error(),
		})
	}
}
