package faq

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionsFor(t *testing.T) {
	kb := storeKB()

	tests := []struct {
		name      string
		utterance string
		want      []string
	}{
		{
			name:      "matched category with its own list",
			utterance: "cuanto tarda el envio",
			want:      []string{"¿Cuánto tarda el envío?", "¿Hacen envíos al interior?"},
		},
		{
			name:      "matched category without a list",
			utterance: "quiero devolver el producto",
			want:      []string{"Envíos", "Medios de pago", "Devoluciones"},
		},
		{
			name:      "fallback with token overlap",
			utterance: "dias",
			want:      []string{"Cuánto tarda el envío", "¿Puedo devolver un producto..."},
		},
		{
			name:      "fallback without overlap",
			utterance: "xyzxyz",
			want:      []string{"Envíos", "Medios de pago", "Devoluciones"},
		},
		{
			name:      "greeting",
			utterance: "hola",
			want:      []string{"Envíos", "Medios de pago", "Devoluciones"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(kb, tt.utterance, "", nil)
			assert.Equal(t, tt.want, SuggestionsFor(kb, res))
		})
	}
}

func TestSuggestionsAreCapped(t *testing.T) {
	var defaults []string
	var faqs []DocumentEntry
	for i := 0; i < 10; i++ {
		defaults = append(defaults, fmt.Sprintf("Sugerencia %d", i))
		faqs = append(faqs, DocumentEntry{Question: fmt.Sprintf("Pregunta sobre cuotas %d", i), Answer: "Respuesta"})
	}
	kb := NewKnowledgeBase(&Document{
		FAQs:        faqs,
		Suggestions: defaults,
		Categories:  map[string][]string{"big": defaults},
		Synonyms:    noSynonyms,
	})

	assert.Len(t, SuggestionsFor(kb, Result{Outcome: OutcomeMatched, Category: "big"}), 6)
	assert.Len(t, SuggestionsFor(kb, Result{Outcome: OutcomeGreeting}), 6)

	fallback := Result{Outcome: OutcomeFallback, Utterance: NewUtterance("pregunta", kb.Synonyms())}
	assert.Equal(t, []string{
		"Pregunta sobre cuotas 0",
		"Pregunta sobre cuotas 1",
		"Pregunta sobre cuotas 2",
		"Pregunta sobre cuotas 3",
	}, SuggestionsFor(kb, fallback))
}

func TestSuggestionFromQuestion(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{question: "¿Cuánto tarda el envío?", want: "Cuánto tarda el envío"},
		{question: "¿Aceptan pagos con tarjeta de crédito?", want: "Aceptan pagos con tarjeta de crédito"},
		{question: "¿Puedo cambiar el talle si la prenda no me queda?", want: "¿Puedo cambiar el talle..."},
		{question: "Envíos", want: "Envíos"},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestionFromQuestion(tt.question))
		})
	}
}
