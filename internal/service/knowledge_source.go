package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/repository/specification"
	"faq-chat-be/internal/repository/unitofwork"
	"faq-chat-be/pkg/faq"
)

const PostgresSource = "postgres"

// NewKnowledgeSource picks the document source from the configured location:
// "postgres" reads the faq tables, http(s) URLs are downloaded and anything
// else is treated as a local JSON or YAML file.
func NewKnowledgeSource(location string, uowFactory unitofwork.RepositoryFactory, timeout time.Duration) faq.Source {
	switch {
	case location == PostgresSource:
		return NewRepositorySource(uowFactory)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return faq.HTTPSource{URL: location, Client: &http.Client{Timeout: timeout}}
	default:
		return faq.FileSource{Path: location}
	}
}

// RepositorySource builds the document from faq_entries and the latest
// knowledge_base_settings row.
type RepositorySource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRepositorySource(uowFactory unitofwork.RepositoryFactory) *RepositorySource {
	return &RepositorySource{uowFactory: uowFactory}
}

func (s *RepositorySource) Name() string {
	return PostgresSource
}

func (s *RepositorySource) Fetch(ctx context.Context) (*faq.Document, error) {
	if s.uowFactory == nil {
		return nil, fmt.Errorf("database is not configured")
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.FaqEntryRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.InLoadOrder{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load faq entries: %w", err)
	}

	setting, err := uow.KnowledgeBaseSettingRepository().FindLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base settings: %w", err)
	}

	doc := &faq.Document{
		FAQs: make([]faq.DocumentEntry, 0, len(entries)),
	}
	for _, e := range entries {
		doc.FAQs = append(doc.FAQs, faq.DocumentEntry{
			Question: e.Question,
			Answer:   e.Answer,
			Keywords: e.Keywords,
			Category: e.Category,
		})
	}

	if setting != nil {
		doc.Greetings = setting.Greetings
		doc.Fallback = setting.Fallback
		doc.Farewell = setting.Farewell
		doc.Suggestions = setting.Suggestions
		doc.Categories = setting.Categories
		doc.GreetingPhrases = setting.GreetingPhrases
		doc.FarewellPhrases = setting.FarewellPhrases
		if len(setting.Synonyms) > 0 {
			doc.Synonyms = faq.SynonymTable(setting.Synonyms)
		}
	}

	return doc, nil
}

// Import replaces the stored knowledge base with doc in one transaction.
// Entries keep their document order through Position.
func (s *RepositorySource) Import(ctx context.Context, doc *faq.Document) (int, error) {
	if s.uowFactory == nil {
		return 0, fmt.Errorf("database is not configured")
	}
	if doc == nil {
		return 0, fmt.Errorf("empty document")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.FaqEntryRepository().DeleteAllUnscoped(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear faq entries: %w", err)
	}

	entries := make([]*entity.FaqEntry, 0, len(doc.FAQs))
	for i, e := range doc.FAQs {
		entries = append(entries, &entity.FaqEntry{
			Question: e.Question,
			Answer:   e.Answer,
			Keywords: e.Keywords,
			Category: e.Category,
			Position: i,
			IsActive: true,
		})
	}
	if len(entries) > 0 {
		if err := uow.FaqEntryRepository().CreateBatch(ctx, entries); err != nil {
			return 0, fmt.Errorf("failed to insert faq entries: %w", err)
		}
	}

	setting := &entity.KnowledgeBaseSetting{
		Greetings:       doc.Greetings,
		Fallback:        doc.Fallback,
		Farewell:        doc.Farewell,
		Suggestions:     doc.Suggestions,
		Categories:      doc.Categories,
		GreetingPhrases: doc.GreetingPhrases,
		FarewellPhrases: doc.FarewellPhrases,
		Synonyms:        doc.Synonyms,
	}
	if err := uow.KnowledgeBaseSettingRepository().Save(ctx, setting); err != nil {
		return 0, fmt.Errorf("failed to save knowledge base settings: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return len(entries), nil
}
