package service

import (
	"context"
	"testing"
	"time"

	"faq-chat-be/pkg/faq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKnowledgeSource(t *testing.T) {
	tests := []struct {
		location string
		wantName string
		wantType interface{}
	}{
		{"postgres", "postgres", &RepositorySource{}},
		{"https://cdn.example.com/faq.yaml", "https://cdn.example.com/faq.yaml", faq.HTTPSource{}},
		{"http://localhost:8080/faq.json", "http://localhost:8080/faq.json", faq.HTTPSource{}},
		{"data/knowledge_base.yaml", "file:data/knowledge_base.yaml", faq.FileSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			src := NewKnowledgeSource(tt.location, nil, time.Second)
			assert.IsType(t, tt.wantType, src)
			assert.Equal(t, tt.wantName, src.Name())
		})
	}
}

func TestRepositorySourceWithoutDatabase(t *testing.T) {
	_, err := NewRepositorySource(nil).Fetch(context.Background())
	require.Error(t, err)

	_, err = faq.LoadKnowledgeBase(context.Background(), NewRepositorySource(nil))
	var le *faq.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "postgres", le.Source)

	_, err = NewRepositorySource(nil).Import(context.Background(), &faq.Document{})
	assert.Error(t, err)
}

func TestRepositorySourceImportAndFetch(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	source := NewRepositorySource(store)

	doc := storeDocument()
	doc.Synonyms = faq.SynonymTable{"envio": {"despacho"}}

	count, err := source.Import(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, store.commits)

	fetched, err := source.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.FAQs, fetched.FAQs)
	assert.Equal(t, doc.Greetings, fetched.Greetings)
	assert.Equal(t, doc.Fallback, fetched.Fallback)
	assert.Equal(t, doc.Categories, fetched.Categories)
	assert.Equal(t, doc.Synonyms, fetched.Synonyms)

	// A second import replaces the first.
	doc.FAQs = doc.FAQs[:1]
	count, err = source.Import(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	kb, err := faq.LoadKnowledgeBase(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, 1, kb.Len())
}
