package unitofwork

import (
	"context"

	"faq-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FaqEntryRepository() contract.FaqEntryRepository
	KnowledgeBaseSettingRepository() contract.KnowledgeBaseSettingRepository
	AdminUserRepository() contract.AdminUserRepository
}
