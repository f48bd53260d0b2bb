package entity

import (
	"time"

	"github.com/google/uuid"
)

type FaqEntry struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	Keywords  []string
	Category  string
	Position  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// KnowledgeBaseSetting holds the document-level fields of the knowledge base.
// Only one row is expected; the newest one wins.
type KnowledgeBaseSetting struct {
	Id              uuid.UUID
	Greetings       []string
	Fallback        string
	Farewell        string
	Suggestions     []string
	Categories      map[string][]string
	GreetingPhrases []string
	FarewellPhrases []string
	Synonyms        map[string][]string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
