package service

import (
	"context"
	"sync"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/pkg/events"
	pktNats "faq-chat-be/pkg/nats"
)

const (
	analyticsDurable   = "faq-analytics"
	maxUnmatchedSample = 50
)

// EventSubscriber is satisfied by *nats.Subscriber.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

// IAnalyticsService aggregates chat turn outcomes. It doubles as an
// ITurnPublisher so turns can be recorded in-process when no bus is available.
type IAnalyticsService interface {
	ITurnPublisher
	Start(ctx context.Context) error
	Snapshot() *dto.AnalyticsResponse
}

type analyticsService struct {
	subscriber EventSubscriber
	logger     logger.ILogger

	mu         sync.Mutex
	total      int64
	outcomes   map[string]int64
	categories map[string]int64
	unmatched  []string
	lastEvent  time.Time
}

func NewAnalyticsService(subscriber EventSubscriber, log logger.ILogger) IAnalyticsService {
	return &analyticsService{
		subscriber: subscriber,
		logger:     log,
		outcomes:   make(map[string]int64),
		categories: make(map[string]int64),
	}
}

// Start subscribes to the turn events on the bus. Without a subscriber it
// does nothing and turns must be fed through PublishTurn.
func (s *analyticsService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		return nil
	}
	return s.subscriber.Subscribe(ctx, pktNats.Subject(">"), analyticsDurable, s.handleEvent)
}

func (s *analyticsService) PublishTurn(ctx context.Context, evt events.TurnEvent) {
	s.record(evt.Outcome, evt.Category, evt.Utterance, evt.OccurredAt)
}

func (s *analyticsService) handleEvent(ctx context.Context, event events.Event) error {
	outcome := events.OutcomeFromType(event.EventType())
	if outcome == "" {
		return nil
	}

	payload := event.Payload()
	category, _ := payload["category"].(string)
	utterance, _ := payload["utterance"].(string)
	s.record(outcome, category, utterance, event.Timestamp())
	return nil
}

func (s *analyticsService) record(outcome, category, utterance string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.outcomes[outcome]++
	if category != "" {
		s.categories[category]++
	}
	if outcome == "fallback" && utterance != "" {
		s.unmatched = append(s.unmatched, utterance)
		if len(s.unmatched) > maxUnmatchedSample {
			s.unmatched = s.unmatched[len(s.unmatched)-maxUnmatchedSample:]
		}
	}
	if at.After(s.lastEvent) {
		s.lastEvent = at
	}
}

func (s *analyticsService) Snapshot() *dto.AnalyticsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &dto.AnalyticsResponse{
		TotalTurns:       s.total,
		Outcomes:         make(map[string]int64, len(s.outcomes)),
		Categories:       make(map[string]int64, len(s.categories)),
		UnmatchedSamples: append([]string{}, s.unmatched...),
	}
	for k, v := range s.outcomes {
		res.Outcomes[k] = v
	}
	for k, v := range s.categories {
		res.Categories[k] = v
	}

	answered := s.outcomes["matched"] + s.outcomes["fallback"]
	if answered > 0 {
		res.MatchRatePercent = float64(s.outcomes["matched"]) * 100 / float64(answered)
	}
	if !s.lastEvent.IsZero() {
		t := s.lastEvent
		res.LastEventReceived = &t
	}
	return res
}
