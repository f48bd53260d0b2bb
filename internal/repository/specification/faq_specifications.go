package specification

import (
	"faq-chat-be/internal/repository/scope"

	"gorm.io/gorm"
)

// ActiveOnly keeps entries that are published to the matcher.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// InLoadOrder sorts entries the way the knowledge base document listed them.
type InLoadOrder struct{}

func (s InLoadOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByPositionAsc, scope.OrderByCreatedAsc)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
