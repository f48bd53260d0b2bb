package service

import (
	"context"
	"encoding/json"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/pkg/faq"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// KnowledgeBaseReloader is satisfied by *faq.Provider.
type KnowledgeBaseReloader interface {
	Reload(ctx context.Context) (*faq.KnowledgeBase, error)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	reloader  KnowledgeBaseReloader
	timeout   time.Duration
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	reloader KnowledgeBaseReloader,
	timeout time.Duration,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		reloader:  reloader,
		timeout:   timeout,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: a failed reload keeps the current knowledge
// base and is only retried when an admin asks again.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.ReloadKnowledgeBaseMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("KB_RELOAD", "Dropping malformed reload message", map[string]interface{}{"error": err.Error()})
		return
	}

	reloadCtx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()

	start := time.Now()
	kb, err := cs.reloader.Reload(reloadCtx)
	if err != nil {
		cs.logger.Error("KB_RELOAD", "Knowledge base reload failed, keeping previous version", map[string]interface{}{
			"requested_by": payload.RequestedBy,
			"error":        err.Error(),
		})
		return
	}

	cs.logger.Info("KB_RELOAD", "Knowledge base reloaded", map[string]interface{}{
		"requested_by": payload.RequestedBy,
		"entries":      kb.Len(),
		"duration_ms":  time.Since(start).Milliseconds(),
	})
}
