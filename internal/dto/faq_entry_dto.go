package dto

import (
	"time"

	"github.com/google/uuid"
)

type FaqEntryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Keywords  []string   `json:"keywords"`
	Category  string     `json:"category"`
	Position  int        `json:"position"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ListFaqEntriesResponse struct {
	Items []*FaqEntryResponse `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

type CreateFaqEntryRequest struct {
	Question string   `json:"question" validate:"required,max=500"`
	Answer   string   `json:"answer" validate:"required,max=4000"`
	Keywords []string `json:"keywords" validate:"max=50,dive,required,max=100"`
	Category string   `json:"category" validate:"max=100"`
	Position *int     `json:"position" validate:"omitempty,min=0"`
	IsActive *bool    `json:"is_active"`
}

type UpdateFaqEntryRequest struct {
	Id       uuid.UUID `json:"-"`
	Question string    `json:"question" validate:"required,max=500"`
	Answer   string    `json:"answer" validate:"required,max=4000"`
	Keywords []string  `json:"keywords" validate:"max=50,dive,required,max=100"`
	Category string    `json:"category" validate:"max=100"`
	Position int       `json:"position" validate:"min=0"`
	IsActive bool      `json:"is_active"`
}

type FaqEntryMutationResponse struct {
	Id              uuid.UUID `json:"id"`
	ReloadRequested bool      `json:"reload_requested"`
}
