package service

import (
	"context"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/pkg/events"
	"faq-chat-be/pkg/faq"

	"github.com/google/uuid"
)

// KnowledgeBaseProvider is satisfied by *faq.Provider.
type KnowledgeBaseProvider interface {
	Wait(ctx context.Context) (*faq.KnowledgeBase, error)
}

// SessionStore is satisfied by *memory.SessionRepository for a single
// instance and *distributed.SessionRepository when sessions live in Redis.
// Save must be called after every mutation so other instances see it.
type SessionStore interface {
	Save(ctx context.Context, session *faq.Session) error
	Get(ctx context.Context, sessionID string) (*faq.Session, bool, error)
	Delete(ctx context.Context, sessionID string) error
	Count(ctx context.Context) (int, error)
}

type IChatService interface {
	OpenSession(ctx context.Context) (*dto.OpenSessionResponse, error)
	SendMessage(ctx context.Context, sessionId string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	CloseSession(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error)
	ReopenSession(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error)
	GetHistory(ctx context.Context, sessionId string) ([]*dto.ChatMessageResponse, error)
	DefaultSuggestions(ctx context.Context) (*dto.SuggestionsResponse, error)
}

type chatService struct {
	provider    KnowledgeBaseProvider
	sessions    SessionStore
	turns       ITurnPublisher
	waitTimeout time.Duration
	rnd         faq.RandSource
	logger      logger.ILogger
}

type ChatServiceOption func(*chatService)

// WithGreetingSource fixes the random source used for greetings.
func WithGreetingSource(rnd faq.RandSource) ChatServiceOption {
	return func(s *chatService) { s.rnd = rnd }
}

func NewChatService(
	provider KnowledgeBaseProvider,
	sessions SessionStore,
	turns ITurnPublisher,
	waitTimeout time.Duration,
	log logger.ILogger,
	opts ...ChatServiceOption,
) IChatService {
	s := &chatService{
		provider:    provider,
		sessions:    sessions,
		turns:       turns,
		waitTimeout: waitTimeout,
		logger:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// knowledgeBase queues the caller until the first load finishes, up to waitTimeout.
func (s *chatService) knowledgeBase(ctx context.Context) (*faq.KnowledgeBase, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	defer cancel()
	return s.provider.Wait(waitCtx)
}

func (s *chatService) findSession(ctx context.Context, sessionId string) (*faq.Session, error) {
	session, ok, err := s.sessions.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *chatService) OpenSession(ctx context.Context) (*dto.OpenSessionResponse, error) {
	kb, err := s.knowledgeBase(ctx)
	if err != nil {
		return nil, err
	}

	opts := []faq.SessionOption{faq.WithID(uuid.NewString())}
	if s.rnd != nil {
		opts = append(opts, faq.WithRandSource(s.rnd))
	}
	session := faq.OpenSession(kb, opts...)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("CHAT", "Session opened", map[string]interface{}{
		"session_id": session.ID(),
		"entries":    kb.Len(),
	})

	return &dto.OpenSessionResponse{
		SessionId:   session.ID(),
		Greeting:    session.Opening(),
		Suggestions: nonNil(kb.DefaultSuggestions()),
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, sessionId string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	session, err := s.findSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	reply, err := session.Submit(req.Text)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if s.turns != nil {
		s.turns.PublishTurn(ctx, events.TurnEvent{
			SessionID:   sessionId,
			Outcome:     string(reply.Outcome),
			Category:    reply.Category,
			Utterance:   req.Text,
			Related:     len(reply.RelatedQuestions),
			Suggestions: len(reply.Suggestions),
			OccurredAt:  time.Now(),
		})
	}

	return &dto.SendMessageResponse{
		SessionId:        sessionId,
		Reply:            reply.Reply,
		RelatedQuestions: nonNil(reply.RelatedQuestions),
		Suggestions:      nonNil(reply.Suggestions),
		Outcome:          string(reply.Outcome),
		Category:         reply.Category,
	}, nil
}

func (s *chatService) CloseSession(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error) {
	session, err := s.findSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	session.Close()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return sessionState(session), nil
}

func (s *chatService) ReopenSession(ctx context.Context, sessionId string) (*dto.SessionStateResponse, error) {
	session, err := s.findSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	session.Reopen()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return sessionState(session), nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionId string) ([]*dto.ChatMessageResponse, error) {
	session, err := s.findSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	history := session.History()
	res := make([]*dto.ChatMessageResponse, 0, len(history))
	for _, m := range history {
		res = append(res, &dto.ChatMessageResponse{
			Text:         m.Text,
			Role:         string(m.Role),
			IsSubMessage: m.IsSubMessage,
			Timestamp:    m.Timestamp,
		})
	}
	return res, nil
}

func (s *chatService) DefaultSuggestions(ctx context.Context) (*dto.SuggestionsResponse, error) {
	kb, err := s.knowledgeBase(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SuggestionsResponse{Suggestions: nonNil(kb.DefaultSuggestions())}, nil
}

func sessionState(session *faq.Session) *dto.SessionStateResponse {
	return &dto.SessionStateResponse{
		SessionId:    session.ID(),
		IsOpen:       session.IsOpen(),
		LastCategory: session.LastCategory(),
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
