package faq

import (
	"strings"
)

const (
	maxSuggestions         = 6
	maxFallbackSuggestions = 4
	maxVerbatimWords       = 6
	truncatedWords         = 4
)

// SuggestionsFor returns at most six follow-up prompts for a turn result.
// Matched turns use the category list, fallback turns look for entries that
// share a token with the utterance, and every other path returns the defaults.
func SuggestionsFor(kb *KnowledgeBase, res Result) []string {
	var out []string
	switch res.Outcome {
	case OutcomeMatched:
		if list, ok := kb.CategorySuggestions(res.Category); ok {
			out = list
		} else {
			out = kb.DefaultSuggestions()
		}
	case OutcomeFallback:
		out = overlapSuggestions(kb, res.Utterance.Tokens)
		if len(out) == 0 {
			out = kb.DefaultSuggestions()
		}
	default:
		out = kb.DefaultSuggestions()
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func overlapSuggestions(kb *KnowledgeBase, tokens []string) []string {
	var probes []string
	for _, tok := range tokens {
		if runeLen(tok) >= minOverlapTokenLen {
			probes = append(probes, tok)
		}
	}
	if len(probes) == 0 {
		return nil
	}

	var out []string
	for _, e := range kb.entries {
		text := e.normQuestion + " " + e.normAnswer
		for _, p := range probes {
			if strings.Contains(text, p) {
				out = append(out, suggestionFromQuestion(e.Question))
				break
			}
		}
		if len(out) == maxFallbackSuggestions {
			break
		}
	}
	return out
}

func suggestionFromQuestion(question string) string {
	words := strings.Fields(question)
	if len(words) <= maxVerbatimWords {
		stripped := strings.NewReplacer("?", "", "¿", "").Replace(question)
		return strings.Join(strings.Fields(stripped), " ")
	}
	return strings.Join(words[:truncatedWords], " ") + "..."
}
