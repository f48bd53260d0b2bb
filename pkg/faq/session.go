package faq

import (
	"sync"
	"time"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one line of the session history.
type Message struct {
	Text         string    `json:"text"`
	Role         Role      `json:"role"`
	IsSubMessage bool      `json:"is_sub_message"`
	Timestamp    time.Time `json:"timestamp"`
}

// Reply is what a turn hands back to the presentation layer.
type Reply struct {
	Reply            string   `json:"reply"`
	RelatedQuestions []string `json:"related_questions"`
	Suggestions      []string `json:"suggestions"`
	Outcome          Outcome  `json:"outcome"`
	Category         string   `json:"category,omitempty"`
}

type SessionOption func(*Session)

func WithRandSource(r RandSource) SessionOption {
	return func(s *Session) { s.rnd = r }
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func WithID(id string) SessionOption {
	return func(s *Session) { s.id = id }
}

// Session holds one conversation. Turns are serialized; concurrent callers
// queue on the session lock.
type Session struct {
	mu           sync.Mutex
	id           string
	kb           *KnowledgeBase
	rnd          RandSource
	now          func() time.Time
	open         bool
	history      []Message
	lastCategory string
	opening      string
	revision     uint64
}

// State is the portable form of a session. Revision grows with every turn,
// close and reopen so stores can tell which copy is newer.
type State struct {
	ID           string    `json:"id"`
	Opening      string    `json:"opening"`
	Open         bool      `json:"open"`
	LastCategory string    `json:"last_category,omitempty"`
	History      []Message `json:"history"`
	Revision     uint64    `json:"revision"`
}

// OpenSession starts an open session on kb with a random opening greeting.
func OpenSession(kb *KnowledgeBase, opts ...SessionOption) *Session {
	if kb == nil {
		kb = EmptyKnowledgeBase()
	}
	s := &Session{
		kb:   kb,
		rnd:  globalRand{},
		now:  time.Now,
		open: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.opening = pick(s.rnd, kb.greetings, DefaultGreeting)
	s.history = append(s.history, Message{Text: s.opening, Role: RoleBot, Timestamp: s.now()})
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Opening() string {
	return s.opening
}

func (s *Session) KnowledgeBase() *KnowledgeBase {
	return s.kb
}

// Submit runs one turn.
func (s *Session) Submit(text string) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return Reply{}, ErrSessionClosed
	}

	s.history = append(s.history, Message{Text: text, Role: RoleUser, Timestamp: s.now()})

	res := Match(s.kb, text, s.lastCategory, s.rnd)

	ts := s.now()
	s.history = append(s.history, Message{Text: res.Reply, Role: RoleBot, Timestamp: ts})
	for _, q := range res.RelatedQuestions {
		s.history = append(s.history, Message{Text: q, Role: RoleBot, IsSubMessage: true, Timestamp: ts})
	}

	if res.Outcome == OutcomeMatched {
		s.lastCategory = res.Category
	}
	s.revision++

	return Reply{
		Reply:            res.Reply,
		RelatedQuestions: res.RelatedQuestions,
		Suggestions:      SuggestionsFor(s.kb, res),
		Outcome:          res.Outcome,
		Category:         res.Category,
	}, nil
}

func (s *Session) Close() {
	s.mu.Lock()
	s.open = false
	s.revision++
	s.mu.Unlock()
}

// Reopen keeps history and category context.
func (s *Session) Reopen() {
	s.mu.Lock()
	s.open = true
	s.revision++
	s.mu.Unlock()
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Session) LastCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCategory
}

// History returns a copy of the message log.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.history...)
}

func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// State snapshots the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:           s.id,
		Opening:      s.opening,
		Open:         s.open,
		LastCategory: s.lastCategory,
		History:      append([]Message(nil), s.history...),
		Revision:     s.revision,
	}
}

// RestoreSession rebuilds a session from st on kb. The opening greeting is
// taken from st, not picked again.
func RestoreSession(kb *KnowledgeBase, st State, opts ...SessionOption) *Session {
	if kb == nil {
		kb = EmptyKnowledgeBase()
	}
	s := &Session{
		kb:  kb,
		rnd: globalRand{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.id = st.ID
	s.opening = st.Opening
	s.open = st.Open
	s.lastCategory = st.LastCategory
	s.history = append([]Message(nil), st.History...)
	s.revision = st.Revision
	return s
}
