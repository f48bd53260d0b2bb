package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FaqEntry struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string                      `gorm:"type:text;not null"`
	Answer    string                      `gorm:"type:text;not null"`
	Keywords  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Category  string                      `gorm:"type:varchar(100);index"`
	Position  int                         `gorm:"not null;default:0;index"`
	IsActive  bool                        `gorm:"default:true"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt              `gorm:"index"`
}

func (FaqEntry) TableName() string {
	return "faq_entries"
}

type KnowledgeBaseSetting struct {
	Id              uuid.UUID                               `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Greetings       datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	Fallback        string                                  `gorm:"type:text"`
	Farewell        string                                  `gorm:"type:text"`
	Suggestions     datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	Categories      datatypes.JSONType[map[string][]string] `gorm:"type:jsonb"`
	GreetingPhrases datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	FarewellPhrases datatypes.JSONSlice[string]             `gorm:"type:jsonb"`
	Synonyms        datatypes.JSONType[map[string][]string] `gorm:"type:jsonb"`
	CreatedAt       time.Time                               `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                               `gorm:"autoUpdateTime"`
}

func (KnowledgeBaseSetting) TableName() string {
	return "knowledge_base_settings"
}
