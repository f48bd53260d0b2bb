package dto

import (
	"time"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminLoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type KnowledgeBaseStatusResponse struct {
	Source       string         `json:"source"`
	Ready        bool           `json:"ready"`
	Generation   uint64         `json:"generation"`
	LoadedAt     *time.Time     `json:"loaded_at,omitempty"`
	LastError    string         `json:"last_error,omitempty"`
	Entries      int            `json:"entries"`
	Skipped      int            `json:"skipped"`
	Greetings    int            `json:"greetings"`
	Synonyms     int            `json:"synonyms"`
	Categories   map[string]int `json:"categories"`
	Empty        bool           `json:"empty"`
	OpenSessions int            `json:"open_sessions"`
}

type ReloadKnowledgeBaseResponse struct {
	RequestedAt time.Time `json:"requested_at"`
	Async       bool      `json:"async"`
}

type AnalyticsResponse struct {
	TotalTurns        int64            `json:"total_turns"`
	Outcomes          map[string]int64 `json:"outcomes"`
	Categories        map[string]int64 `json:"categories"`
	UnmatchedSamples  []string         `json:"unmatched_samples"`
	MatchRatePercent  float64          `json:"match_rate_percent"`
	LastEventReceived *time.Time       `json:"last_event_received,omitempty"`
}

type LogListResponse struct {
	Id        string    `json:"id"` // MD5 hash, not UUID
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}

// ReloadKnowledgeBaseMessage is published on the reload topic.
type ReloadKnowledgeBaseMessage struct {
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}
