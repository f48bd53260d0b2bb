package faq

import (
	"strings"
)

const (
	weightKeywordSubstring = 5.0
	weightKeywordToken     = 4.0
	weightKeywordPartial   = 2.0
	weightQuestionToken    = 3.0
	weightQuestionOverlap  = 1.0
	weightAnswerToken      = 1.0
	weightCategory         = 2.0

	minOverlapTokenLen = 4
	minAnswerTokenLen  = 5
	shortUtteranceLen  = 3
	shortScoreCeiling  = 5.0
)

// Utterance is a user message prepared for scoring.
type Utterance struct {
	Raw      string // trimmed and lower-cased
	Tokens   []string
	Expanded string // normalized text plus synonym keys
}

func NewUtterance(text string, table SynonymTable) Utterance {
	tokens := Tokenize(text)
	return Utterance{
		Raw:      strings.ToLower(strings.TrimSpace(text)),
		Tokens:   tokens,
		Expanded: Expand(strings.Join(tokens, " "), table),
	}
}

func (u Utterance) Normalized() string {
	return strings.Join(u.Tokens, " ")
}

func (u Utterance) IsEmpty() bool {
	return len(u.Tokens) == 0
}

// Score rates how well e answers u. Short, weak matches are halved. The
// category continuity bonus is added last and only to entries that already
// have lexical evidence, so it shifts ranking without creating matches.
func Score(u Utterance, e *Entry, lastCategory string) float64 {
	score := lexicalScore(u, e)
	if score == 0 {
		return 0
	}
	if len(u.Tokens) < shortUtteranceLen && score < shortScoreCeiling {
		score /= 2
	}
	if lastCategory != "" && e.Category == lastCategory {
		score += weightCategory
	}
	return score
}

func lexicalScore(u Utterance, e *Entry) float64 {
	var score float64

	for _, kw := range e.Keywords {
		if strings.Contains(u.Expanded, kw) || strings.Contains(u.Raw, kw) {
			score += weightKeywordSubstring
		}
		for _, tok := range u.Tokens {
			if tok == kw {
				score += weightKeywordToken
				break
			}
		}
		for _, tok := range u.Tokens {
			if runeLen(tok) < minOverlapTokenLen {
				continue
			}
			if strings.Contains(kw, tok) || strings.Contains(tok, kw) {
				score += weightKeywordPartial
			}
		}
	}

	for _, tok := range u.Tokens {
		n := runeLen(tok)
		if n < minOverlapTokenLen {
			continue
		}
		if _, ok := e.questionTokens[tok]; ok {
			score += weightQuestionToken
		}
		if e.normQuestion != "" && (strings.Contains(e.normQuestion, tok) || strings.Contains(tok, e.normQuestion)) {
			score += weightQuestionOverlap
		}
		if n >= minAnswerTokenLen && strings.Contains(e.normAnswer, tok) {
			score += weightAnswerToken
		}
	}

	return score
}
