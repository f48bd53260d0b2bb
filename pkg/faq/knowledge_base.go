package faq

import (
	"strings"
)

const (
	DefaultFallback = "Disculpá, no encontré una respuesta para eso. ¿Podés reformular la pregunta o elegir una de las sugerencias?"
	DefaultGreeting = "¡Hola! ¿En qué te puedo ayudar?"
	DefaultFarewell = "¡Gracias por escribirnos! Cuando necesites algo más, acá estamos."
)

var (
	defaultGreetingPhrases = []string{"hola", "buen dia", "buenos dias", "buenas tardes", "buenas noches", "buenas", "hey", "holis"}
	defaultFarewellPhrases = []string{"chau", "adios", "hasta luego", "nos vemos", "gracias", "muchas gracias", "saludos"}
)

// Document is the knowledge base source format.
type Document struct {
	FAQs            []DocumentEntry     `json:"faqs" yaml:"faqs"`
	Greetings       []string            `json:"greetings" yaml:"greetings"`
	Fallback        string              `json:"fallback" yaml:"fallback"`
	Suggestions     []string            `json:"suggestions" yaml:"suggestions"`
	Categories      map[string][]string `json:"categories" yaml:"categories"`
	Farewell        string              `json:"farewell,omitempty" yaml:"farewell,omitempty"`
	GreetingPhrases []string            `json:"greeting_phrases,omitempty" yaml:"greeting_phrases,omitempty"`
	FarewellPhrases []string            `json:"farewell_phrases,omitempty" yaml:"farewell_phrases,omitempty"`
	Synonyms        SynonymTable        `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

type DocumentEntry struct {
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// Entry is one loaded FAQ record. Normalized forms are computed once at load.
type Entry struct {
	Question string
	Answer   string
	Keywords []string
	Category string

	position       int
	normQuestion   string
	questionTokens map[string]struct{}
	normAnswer     string
}

// Position is the entry's index in load order.
func (e *Entry) Position() int {
	return e.position
}

// KnowledgeBase is read-only after construction and safe for concurrent use.
type KnowledgeBase struct {
	entries         []*Entry
	greetings       []string
	greetingPhrases []string
	farewellPhrases []string
	farewell        string
	fallback        string
	suggestions     []string
	categories      map[string][]string
	synonyms        SynonymTable
	skipped         int
}

// EmptyKnowledgeBase is the degraded base used after a failed load: every
// utterance resolves to the fallback message.
func EmptyKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		fallback:   DefaultFallback,
		farewell:   DefaultFarewell,
		categories: map[string][]string{},
		synonyms:   SynonymTable{},
	}
}

// NewKnowledgeBase builds a knowledge base from a decoded document. Entries
// without an answer, or whose question has no word characters, are skipped;
// missing keywords or category are treated as empty.
func NewKnowledgeBase(doc *Document) *KnowledgeBase {
	kb := &KnowledgeBase{
		greetings:       cleanList(doc.Greetings),
		greetingPhrases: normalizeList(doc.GreetingPhrases, defaultGreetingPhrases),
		farewellPhrases: normalizeList(doc.FarewellPhrases, defaultFarewellPhrases),
		farewell:        firstNonEmpty(doc.Farewell, DefaultFarewell),
		fallback:        firstNonEmpty(doc.Fallback, DefaultFallback),
		suggestions:     cleanList(doc.Suggestions),
		categories:      make(map[string][]string, len(doc.Categories)),
	}

	for name, list := range doc.Categories {
		kb.categories[strings.TrimSpace(name)] = cleanList(list)
	}

	synonyms := doc.Synonyms
	if len(synonyms) == 0 {
		synonyms = DefaultSynonyms()
	}
	kb.synonyms = synonyms.normalized()

	for _, de := range doc.FAQs {
		question := strings.TrimSpace(de.Question)
		answer := strings.TrimSpace(de.Answer)
		normQuestion := Normalize(question)
		if normQuestion == "" || answer == "" {
			kb.skipped++
			continue
		}

		entry := &Entry{
			Question:       question,
			Answer:         answer,
			Category:       strings.TrimSpace(de.Category),
			position:       len(kb.entries),
			normQuestion:   normQuestion,
			normAnswer:     Normalize(answer),
			questionTokens: make(map[string]struct{}),
		}
		for _, kw := range de.Keywords {
			if nk := Normalize(kw); nk != "" {
				entry.Keywords = append(entry.Keywords, nk)
			}
		}
		for _, tok := range Tokenize(question) {
			entry.questionTokens[tok] = struct{}{}
		}
		kb.entries = append(kb.entries, entry)
	}

	return kb
}

func (kb *KnowledgeBase) Entries() []*Entry {
	return kb.entries
}

func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

func (kb *KnowledgeBase) IsEmpty() bool {
	return len(kb.entries) == 0
}

func (kb *KnowledgeBase) Greetings() []string {
	return kb.greetings
}

func (kb *KnowledgeBase) Fallback() string {
	return kb.fallback
}

func (kb *KnowledgeBase) Farewell() string {
	return kb.farewell
}

func (kb *KnowledgeBase) Synonyms() SynonymTable {
	return kb.synonyms
}

// DefaultSuggestions returns a copy of the default suggestion list.
func (kb *KnowledgeBase) DefaultSuggestions() []string {
	return append([]string(nil), kb.suggestions...)
}

// CategorySuggestions returns the list configured for category, if any.
func (kb *KnowledgeBase) CategorySuggestions(category string) ([]string, bool) {
	list, ok := kb.categories[category]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// Stats summarizes the loaded content.
type Stats struct {
	Entries    int            `json:"entries"`
	Skipped    int            `json:"skipped"`
	Greetings  int            `json:"greetings"`
	Categories map[string]int `json:"categories"`
	Synonyms   int            `json:"synonyms"`
	Empty      bool           `json:"empty"`
}

func (kb *KnowledgeBase) Stats() Stats {
	s := Stats{
		Entries:    len(kb.entries),
		Skipped:    kb.skipped,
		Greetings:  len(kb.greetings),
		Categories: make(map[string]int),
		Synonyms:   len(kb.synonyms),
		Empty:      kb.IsEmpty(),
	}
	for _, e := range kb.entries {
		if e.Category != "" {
			s.Categories[e.Category]++
		}
	}
	return s
}

func (kb *KnowledgeBase) isGreeting(raw, normalized string) bool {
	return containsAny(raw, normalized, kb.greetingPhrases)
}

func (kb *KnowledgeBase) isFarewell(raw, normalized string) bool {
	return containsAny(raw, normalized, kb.farewellPhrases)
}

func containsAny(raw, normalized string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(raw, p) || strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func normalizeList(in, fallback []string) []string {
	if len(in) == 0 {
		in = fallback
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
