package service

import (
	"context"
	"testing"
	"time"

	"faq-chat-be/internal/pkg/logger"
	"faq-chat-be/internal/repository/memory"
	"faq-chat-be/pkg/faq"

	"github.com/stretchr/testify/require"
)

func storeDocument() *faq.Document {
	return &faq.Document{
		FAQs: []faq.DocumentEntry{
			{
				Question: "¿Cuánto tarda el envío?",
				Answer:   "El envío tarda entre 3 y 5 días hábiles.",
				Keywords: []string{"envio", "demora"},
				Category: "shipping",
			},
			{
				Question: "¿Cuáles son los medios de pago?",
				Answer:   "Aceptamos tarjeta de crédito y transferencia.",
				Keywords: []string{"pago", "tarjeta"},
				Category: "payments",
			},
		},
		Greetings:   []string{"¡Hola! Soy el asistente de la tienda.", "¡Buenas! ¿Qué necesitás?"},
		Fallback:    "No entendí tu consulta.",
		Suggestions: []string{"Envíos", "Medios de pago"},
		Categories: map[string][]string{
			"shipping": {"¿Hacen envíos al interior?", "¿Cómo sigo mi pedido?"},
		},
	}
}

func readyProvider(t *testing.T, doc *faq.Document) *faq.Provider {
	t.Helper()
	provider := faq.NewProvider(faq.StaticSource{Label: "test", Doc: doc}, logger.NewNopLogger())
	provider.Start(context.Background())

	select {
	case <-provider.Ready():
	case <-time.After(time.Second):
		require.FailNow(t, "knowledge base never became ready")
	}
	return provider
}

// blockingSource never answers until release is closed.
type blockingSource struct {
	release chan struct{}
}

func (s blockingSource) Name() string { return "blocking" }

func (s blockingSource) Fetch(ctx context.Context) (*faq.Document, error) {
	select {
	case <-s.release:
		return storeDocument(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func newSessionStore() *memory.SessionRepository {
	return memory.NewSessionRepository(time.Minute, time.Minute)
}
