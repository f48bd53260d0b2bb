package faq

import (
	"sort"
)

// Outcome classifies a single turn.
type Outcome string

const (
	OutcomeGreeting Outcome = "greeting"
	OutcomeFarewell Outcome = "farewell"
	OutcomeMatched  Outcome = "matched"
	OutcomeFallback Outcome = "fallback"
)

const (
	relatedScoreRatio = 0.7
	maxRelated        = 2
)

// Candidate is an entry with a nonzero score.
type Candidate struct {
	Entry *Entry
	Score float64
}

// Result is the decision for one utterance. Category is only set on
// OutcomeMatched.
type Result struct {
	Outcome          Outcome
	Reply            string
	Category         string
	RelatedQuestions []string
	Candidates       []Candidate
	Utterance        Utterance
}

// Rank scores every entry, drops zeros and sorts by score descending.
// Ties keep knowledge base order.
func Rank(kb *KnowledgeBase, u Utterance, lastCategory string) []Candidate {
	var candidates []Candidate
	for _, e := range kb.entries {
		if s := Score(u, e, lastCategory); s > 0 {
			candidates = append(candidates, Candidate{Entry: e, Score: s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// Match classifies text against kb. It does not mutate anything; the caller
// owns lastCategory and should only replace it when the outcome is
// OutcomeMatched.
func Match(kb *KnowledgeBase, text, lastCategory string, rnd RandSource) Result {
	u := NewUtterance(text, kb.synonyms)
	res := Result{Utterance: u}

	if u.IsEmpty() {
		res.Outcome = OutcomeFallback
		res.Reply = kb.fallback
		return res
	}

	normalized := u.Normalized()
	switch {
	case kb.isGreeting(u.Raw, normalized):
		res.Outcome = OutcomeGreeting
		res.Reply = pick(rnd, kb.greetings, DefaultGreeting)
		return res
	case kb.isFarewell(u.Raw, normalized):
		res.Outcome = OutcomeFarewell
		res.Reply = kb.farewell
		return res
	}

	res.Candidates = Rank(kb, u, lastCategory)
	if len(res.Candidates) == 0 {
		res.Outcome = OutcomeFallback
		res.Reply = kb.fallback
		return res
	}

	top := res.Candidates[0]
	res.Outcome = OutcomeMatched
	res.Reply = top.Entry.Answer
	res.Category = top.Entry.Category

	threshold := top.Score * relatedScoreRatio
	for _, c := range res.Candidates[1:] {
		if len(res.RelatedQuestions) == maxRelated || c.Score < threshold {
			break
		}
		res.RelatedQuestions = append(res.RelatedQuestions, c.Entry.Question)
	}

	return res
}
