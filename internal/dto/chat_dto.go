package dto

import (
	"time"
)

type OpenSessionResponse struct {
	SessionId   string   `json:"session_id"`
	Greeting    string   `json:"greeting"`
	Suggestions []string `json:"suggestions"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"max=1000"`
}

type SendMessageResponse struct {
	SessionId        string   `json:"session_id"`
	Reply            string   `json:"reply"`
	RelatedQuestions []string `json:"related_questions"`
	Suggestions      []string `json:"suggestions"`
	Outcome          string   `json:"outcome"`
	Category         string   `json:"category,omitempty"`
}

type SessionStateResponse struct {
	SessionId    string `json:"session_id"`
	IsOpen       bool   `json:"is_open"`
	LastCategory string `json:"last_category,omitempty"`
}

type ChatMessageResponse struct {
	Text         string    `json:"text"`
	Role         string    `json:"role"`
	IsSubMessage bool      `json:"is_sub_message"`
	Timestamp    time.Time `json:"timestamp"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// WsChatMessage is the frame exchanged over the chat websocket.
type WsChatMessage struct {
	Type             string   `json:"type"` // "message" | "reply" | "error"
	SessionId        string   `json:"session_id,omitempty"`
	Text             string   `json:"text,omitempty"`
	RelatedQuestions []string `json:"related_questions,omitempty"`
	Suggestions      []string `json:"suggestions,omitempty"`
	Outcome          string   `json:"outcome,omitempty"`
}
