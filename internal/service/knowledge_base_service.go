package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/pkg/faq"
)

type IKnowledgeBaseService interface {
	Status(ctx context.Context) (*dto.KnowledgeBaseStatusResponse, error)
	RequestReload(ctx context.Context, requestedBy string) (*dto.ReloadKnowledgeBaseResponse, error)
}

type knowledgeBaseService struct {
	provider  *faq.Provider
	publisher IPublisherService
	sessions  SessionStore
}

func NewKnowledgeBaseService(provider *faq.Provider, publisher IPublisherService, sessions SessionStore) IKnowledgeBaseService {
	return &knowledgeBaseService{
		provider:  provider,
		publisher: publisher,
		sessions:  sessions,
	}
}

func (s *knowledgeBaseService) Status(ctx context.Context) (*dto.KnowledgeBaseStatusResponse, error) {
	res := &dto.KnowledgeBaseStatusResponse{
		Source:     s.provider.SourceName(),
		Generation: s.provider.Generation(),
		Categories: map[string]int{},
	}

	select {
	case <-s.provider.Ready():
		res.Ready = true
	default:
	}

	if loadedAt := s.provider.LoadedAt(); !loadedAt.IsZero() {
		res.LoadedAt = &loadedAt
	}
	if le := s.provider.LastError(); le != nil {
		res.LastError = le.Error()
	}
	if s.sessions != nil {
		if n, err := s.sessions.Count(ctx); err == nil {
			res.OpenSessions = n
		}
	}

	if kb := s.provider.Current(); kb != nil {
		stats := kb.Stats()
		res.Entries = stats.Entries
		res.Skipped = stats.Skipped
		res.Greetings = stats.Greetings
		res.Synonyms = stats.Synonyms
		res.Categories = stats.Categories
		res.Empty = stats.Empty
	} else {
		res.Empty = true
	}

	return res, nil
}

// RequestReload queues a reload on the event bus. The reload itself runs in
// the consumer; sessions already open keep their snapshot.
func (s *knowledgeBaseService) RequestReload(ctx context.Context, requestedBy string) (*dto.ReloadKnowledgeBaseResponse, error) {
	now := time.Now()
	payload, err := json.Marshal(dto.ReloadKnowledgeBaseMessage{
		RequestedBy: requestedBy,
		RequestedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		return nil, fmt.Errorf("failed to queue knowledge base reload: %w", err)
	}

	return &dto.ReloadKnowledgeBaseResponse{
		RequestedAt: now,
		Async:       true,
	}, nil
}
