package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOutcomes(t *testing.T) {
	kb := storeKB()

	tests := []struct {
		name         string
		utterance    string
		lastCategory string
		wantOutcome  Outcome
		wantReply    string
		wantCategory string
	}{
		{
			name:         "shipping question",
			utterance:    "cuanto tarda el envio",
			wantOutcome:  OutcomeMatched,
			wantReply:    "El envío tarda entre 3 y 5 días hábiles según tu zona.",
			wantCategory: "shipping",
		},
		{
			name:         "informal phrasing through synonyms",
			utterance:    "puedo pagar con tarjeta",
			wantOutcome:  OutcomeMatched,
			wantReply:    "Aceptamos tarjetas de crédito, débito y transferencia bancaria.",
			wantCategory: "payments",
		},
		{
			name:        "greeting",
			utterance:   "hola",
			wantOutcome: OutcomeGreeting,
			wantReply:   "¡Buenas! ¿En qué te ayudo?",
		},
		{
			name:        "greeting with accents",
			utterance:   "Buen día",
			wantOutcome: OutcomeGreeting,
			wantReply:   "¡Buenas! ¿En qué te ayudo?",
		},
		{
			name:        "farewell",
			utterance:   "listo, chau",
			wantOutcome: OutcomeFarewell,
			wantReply:   DefaultFarewell,
		},
		{
			name:         "unknown text falls back",
			utterance:    "xyzxyz",
			lastCategory: "shipping",
			wantOutcome:  OutcomeFallback,
			wantReply:    "No entendí tu consulta.",
		},
		{
			name:        "blank input falls back",
			utterance:   "   ",
			wantOutcome: OutcomeFallback,
			wantReply:   "No entendí tu consulta.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(kb, tt.utterance, tt.lastCategory, FixedIndex(1))
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantReply, res.Reply)
			assert.Equal(t, tt.wantCategory, res.Category)
		})
	}
}

func TestMatchRelatedQuestions(t *testing.T) {
	entry := func(q string) DocumentEntry {
		return DocumentEntry{Question: q, Answer: "Consultá condiciones", Keywords: []string{"envio", "gratis"}}
	}
	kb := NewKnowledgeBase(&Document{
		FAQs: []DocumentEntry{
			entry("Envio gratis"),
			entry("Envio sin cargo"),
			entry("Envio gratis express"),
			entry("Envio gratis a todo el pais"),
		},
		Synonyms: noSynonyms,
	})

	res := Match(kb, "envio gratis", "", nil)
	require.Equal(t, OutcomeMatched, res.Outcome)
	require.Len(t, res.Candidates, 4)

	assert.Equal(t, "Envio gratis", res.Candidates[0].Entry.Question)
	assert.Equal(t, 30.0, res.Candidates[0].Score)
	assert.Equal(t, "Envio sin cargo", res.Candidates[3].Entry.Question)
	assert.Equal(t, []string{"Envio gratis express", "Envio gratis a todo el pais"}, res.RelatedQuestions)
}

func TestMatchRelatedQuestionsThreshold(t *testing.T) {
	kb := NewKnowledgeBase(&Document{
		FAQs: []DocumentEntry{
			{Question: "Costo del envio", Answer: "Depende", Keywords: []string{"envio"}},
			{Question: "Envio gratis", Answer: "Desde cierto monto", Keywords: []string{"envio", "gratis"}},
		},
		Synonyms: noSynonyms,
	})

	res := Match(kb, "envio gratis", "", nil)
	require.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, "Desde cierto monto", res.Reply)
	assert.Empty(t, res.RelatedQuestions)
}

func TestMatchRankingIsMonotonic(t *testing.T) {
	kb := storeKB()
	for _, text := range []string{"envio al interior", "pago con tarjeta", "devolver producto", "local"} {
		res := Match(kb, text, "", nil)
		for i := 1; i < len(res.Candidates); i++ {
			prev, cur := res.Candidates[i-1], res.Candidates[i]
			assert.GreaterOrEqual(t, prev.Score, cur.Score)
			if prev.Score == cur.Score {
				assert.Less(t, prev.Entry.Position(), cur.Entry.Position())
			}
		}
	}
}

func TestMatchCategoryContinuityBreaksTies(t *testing.T) {
	kb := NewKnowledgeBase(&Document{
		FAQs: []DocumentEntry{
			{Question: "Horarios del local", Answer: "De 9 a 18", Category: "store"},
			{Question: "Horarios de envio", Answer: "Despachamos a la tarde", Category: "shipping"},
		},
	})

	res := Match(kb, "horarios", "", nil)
	require.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, "store", res.Category)

	res = Match(kb, "horarios", "shipping", nil)
	require.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, "shipping", res.Category)
}

func TestMatchEmptyKnowledgeBase(t *testing.T) {
	kb := EmptyKnowledgeBase()
	for _, text := range []string{"hola", "cuanto tarda el envio", "chau", ""} {
		res := Match(kb, text, "shipping", nil)
		assert.Equal(t, OutcomeFallback, res.Outcome)
		assert.Equal(t, DefaultFallback, res.Reply)
		assert.Empty(t, SuggestionsFor(kb, res))
	}
}

func TestMatchSkipsPunctuationOnlyQuestions(t *testing.T) {
	kb := NewKnowledgeBase(&Document{
		FAQs: []DocumentEntry{
			{Question: "¿?", Answer: "respuesta generica"},
			{Question: "¿¡...!?", Answer: "otra respuesta"},
		},
		Synonyms: noSynonyms,
	})
	assert.Equal(t, 0, kb.Len())
	assert.Equal(t, 2, kb.Stats().Skipped)

	res := Match(kb, "quisiera saber sobre zapatillas", "", FixedIndex(0))
	assert.Equal(t, OutcomeFallback, res.Outcome)
	assert.Equal(t, DefaultFallback, res.Reply)
}

func TestMatchPhrasesWinOverFAQs(t *testing.T) {
	kb := storeKB()

	tests := []struct {
		utterance string
		want      Outcome
	}{
		{utterance: "gracias, cuanto tarda el envio", want: OutcomeFarewell},
		{utterance: "buenas, cuanto tarda el envio", want: OutcomeGreeting},
		{utterance: "hola, gracias", want: OutcomeGreeting},
		{utterance: "saludos al equipo de envios", want: OutcomeFarewell},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			res := Match(kb, tt.utterance, "shipping", FixedIndex(0))
			assert.Equal(t, tt.want, res.Outcome)
			assert.Empty(t, res.Candidates)
		})
	}
}
