package contract

import (
	"context"

	"faq-chat-be/internal/entity"
	"faq-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FaqEntryRepository interface {
	Create(ctx context.Context, entry *entity.FaqEntry) error
	CreateBatch(ctx context.Context, entries []*entity.FaqEntry) error
	Update(ctx context.Context, entry *entity.FaqEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllUnscoped(ctx context.Context) error // Hard delete all
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FaqEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type KnowledgeBaseSettingRepository interface {
	FindLatest(ctx context.Context) (*entity.KnowledgeBaseSetting, error)
	Save(ctx context.Context, setting *entity.KnowledgeBaseSetting) error
}
