package mapper

import (
	"time"

	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) FaqEntryToEntity(e *model.FaqEntry) *entity.FaqEntry {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.FaqEntry{
		Id:        e.Id,
		Question:  e.Question,
		Answer:    e.Answer,
		Keywords:  []string(e.Keywords),
		Category:  e.Category,
		Position:  e.Position,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *FaqMapper) FaqEntryToModel(e *entity.FaqEntry) *model.FaqEntry {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.FaqEntry{
		Id:        e.Id,
		Question:  e.Question,
		Answer:    e.Answer,
		Keywords:  datatypes.JSONSlice[string](e.Keywords),
		Category:  e.Category,
		Position:  e.Position,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *FaqMapper) FaqEntriesToEntities(models []*model.FaqEntry) []*entity.FaqEntry {
	entities := make([]*entity.FaqEntry, len(models))
	for i, e := range models {
		entities[i] = m.FaqEntryToEntity(e)
	}
	return entities
}

// Settings Mappers

func (m *FaqMapper) SettingToEntity(s *model.KnowledgeBaseSetting) *entity.KnowledgeBaseSetting {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeBaseSetting{
		Id:              s.Id,
		Greetings:       []string(s.Greetings),
		Fallback:        s.Fallback,
		Farewell:        s.Farewell,
		Suggestions:     []string(s.Suggestions),
		Categories:      s.Categories.Data(),
		GreetingPhrases: []string(s.GreetingPhrases),
		FarewellPhrases: []string(s.FarewellPhrases),
		Synonyms:        s.Synonyms.Data(),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *FaqMapper) SettingToModel(s *entity.KnowledgeBaseSetting) *model.KnowledgeBaseSetting {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.KnowledgeBaseSetting{
		Id:              s.Id,
		Greetings:       datatypes.JSONSlice[string](s.Greetings),
		Fallback:        s.Fallback,
		Farewell:        s.Farewell,
		Suggestions:     datatypes.JSONSlice[string](s.Suggestions),
		Categories:      datatypes.NewJSONType(s.Categories),
		GreetingPhrases: datatypes.JSONSlice[string](s.GreetingPhrases),
		FarewellPhrases: datatypes.JSONSlice[string](s.FarewellPhrases),
		Synonyms:        datatypes.NewJSONType(s.Synonyms),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}
