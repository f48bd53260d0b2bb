package service

import (
	"context"
	"strings"
	"time"

	"faq-chat-be/internal/dto"
	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/internal/repository/specification"
	"faq-chat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const maxFaqPageSize = 100

// ReloadRequester is satisfied by IKnowledgeBaseService.
type ReloadRequester interface {
	RequestReload(ctx context.Context, requestedBy string) (*dto.ReloadKnowledgeBaseResponse, error)
}

type IFaqEntryService interface {
	List(ctx context.Context, page, limit int, category string) (*dto.ListFaqEntriesResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.FaqEntryResponse, error)
	Create(ctx context.Context, requestedBy string, req *dto.CreateFaqEntryRequest) (*dto.FaqEntryMutationResponse, error)
	Update(ctx context.Context, requestedBy string, req *dto.UpdateFaqEntryRequest) (*dto.FaqEntryMutationResponse, error)
	Delete(ctx context.Context, requestedBy string, id uuid.UUID) (*dto.FaqEntryMutationResponse, error)
}

type faqEntryService struct {
	uowFactory unitofwork.RepositoryFactory
	reloader   ReloadRequester
	logger     logger.ILogger
}

// NewFaqEntryService manages the faq_entries table. When reloader is set,
// every change queues a knowledge base reload so the matcher picks it up.
func NewFaqEntryService(uowFactory unitofwork.RepositoryFactory, reloader ReloadRequester, log logger.ILogger) IFaqEntryService {
	return &faqEntryService{
		uowFactory: uowFactory,
		reloader:   reloader,
		logger:     log,
	}
}

func (s *faqEntryService) List(ctx context.Context, page, limit int, category string) (*dto.ListFaqEntriesResponse, error) {
	if s.uowFactory == nil {
		return nil, ErrDatabaseUnavailable
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxFaqPageSize {
		limit = 20
	}

	specs := []specification.Specification{}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.FaqEntryRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	entries, err := uow.FaqEntryRepository().FindAll(ctx, append(specs,
		specification.InLoadOrder{},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.FaqEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toFaqEntryResponse(e))
	}

	return &dto.ListFaqEntriesResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *faqEntryService) Show(ctx context.Context, id uuid.UUID) (*dto.FaqEntryResponse, error) {
	entry, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFaqEntryResponse(entry), nil
}

func (s *faqEntryService) Create(ctx context.Context, requestedBy string, req *dto.CreateFaqEntryRequest) (*dto.FaqEntryMutationResponse, error) {
	if s.uowFactory == nil {
		return nil, ErrDatabaseUnavailable
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		// Append after the current entries.
		count, err := uow.FaqEntryRepository().Count(ctx)
		if err != nil {
			return nil, err
		}
		position = int(count)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	entry := &entity.FaqEntry{
		Id:        uuid.New(),
		Question:  strings.TrimSpace(req.Question),
		Answer:    strings.TrimSpace(req.Answer),
		Keywords:  cleanKeywords(req.Keywords),
		Category:  strings.TrimSpace(req.Category),
		Position:  position,
		IsActive:  isActive,
		CreatedAt: time.Now(),
	}
	if err := uow.FaqEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("KNOWLEDGE_BASE", "FAQ entry created", map[string]interface{}{
		"id":           entry.Id.String(),
		"requested_by": requestedBy,
	})
	return s.mutated(ctx, requestedBy, entry.Id), nil
}

func (s *faqEntryService) Update(ctx context.Context, requestedBy string, req *dto.UpdateFaqEntryRequest) (*dto.FaqEntryMutationResponse, error) {
	entry, err := s.find(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.Question = strings.TrimSpace(req.Question)
	entry.Answer = strings.TrimSpace(req.Answer)
	entry.Keywords = cleanKeywords(req.Keywords)
	entry.Category = strings.TrimSpace(req.Category)
	entry.Position = req.Position
	entry.IsActive = req.IsActive
	entry.UpdatedAt = &now

	if err := s.uowFactory.NewUnitOfWork(ctx).FaqEntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("KNOWLEDGE_BASE", "FAQ entry updated", map[string]interface{}{
		"id":           entry.Id.String(),
		"requested_by": requestedBy,
	})
	return s.mutated(ctx, requestedBy, entry.Id), nil
}

func (s *faqEntryService) Delete(ctx context.Context, requestedBy string, id uuid.UUID) (*dto.FaqEntryMutationResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	if err := s.uowFactory.NewUnitOfWork(ctx).FaqEntryRepository().Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("KNOWLEDGE_BASE", "FAQ entry deleted", map[string]interface{}{
		"id":           id.String(),
		"requested_by": requestedBy,
	})
	return s.mutated(ctx, requestedBy, id), nil
}

func (s *faqEntryService) find(ctx context.Context, id uuid.UUID) (*entity.FaqEntry, error) {
	if s.uowFactory == nil {
		return nil, ErrDatabaseUnavailable
	}
	entry, err := s.uowFactory.NewUnitOfWork(ctx).FaqEntryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrFaqEntryNotFound
	}
	return entry, nil
}

// mutated queues a reload. A failed publish is logged; the write already happened.
func (s *faqEntryService) mutated(ctx context.Context, requestedBy string, id uuid.UUID) *dto.FaqEntryMutationResponse {
	res := &dto.FaqEntryMutationResponse{Id: id}
	if s.reloader == nil {
		return res
	}

	if _, err := s.reloader.RequestReload(ctx, requestedBy); err != nil {
		s.logger.Warn("KNOWLEDGE_BASE", "Failed to queue reload after FAQ change", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		return res
	}
	res.ReloadRequested = true
	return res
}

func cleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[strings.ToLower(k)] {
			continue
		}
		seen[strings.ToLower(k)] = true
		out = append(out, k)
	}
	return out
}

func toFaqEntryResponse(e *entity.FaqEntry) *dto.FaqEntryResponse {
	keywords := e.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return &dto.FaqEntryResponse{
		Id:        e.Id,
		Question:  e.Question,
		Answer:    e.Answer,
		Keywords:  keywords,
		Category:  e.Category,
		Position:  e.Position,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
