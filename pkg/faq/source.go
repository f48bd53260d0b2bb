package faq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source fetches a knowledge base document.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*Document, error)
}

// LoadKnowledgeBase fetches and builds a knowledge base. Any failure is
// returned as a *LoadError; callers are expected to fall back to
// EmptyKnowledgeBase.
func LoadKnowledgeBase(ctx context.Context, src Source) (*KnowledgeBase, error) {
	doc, err := src.Fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.Name(), Err: err}
	}
	if doc == nil {
		return nil, &LoadError{Source: src.Name(), Err: fmt.Errorf("empty document")}
	}
	return NewKnowledgeBase(doc), nil
}

// DecodeDocument parses a JSON or YAML document. format is "json", "yaml" or "yml".
func DecodeDocument(data []byte, format string) (*Document, error) {
	var doc Document
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml document: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse json document: %w", err)
		}
	}
	return &doc, nil
}

// FileSource reads a document from disk; the extension selects the format.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "file:" + s.Path
}

func (s FileSource) Fetch(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(data, strings.TrimPrefix(filepath.Ext(s.Path), "."))
}

// HTTPSource downloads a document. YAML is assumed when the URL path or
// the Content-Type says so, JSON otherwise.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Name() string {
	return s.URL
}

func (s HTTPSource) Fetch(ctx context.Context) (*Document, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	format := "json"
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") ||
		strings.HasSuffix(req.URL.Path, ".yaml") || strings.HasSuffix(req.URL.Path, ".yml") {
		format = "yaml"
	}
	return DecodeDocument(body, format)
}

// StaticSource serves an in-memory document.
type StaticSource struct {
	Label string
	Doc   *Document
}

func (s StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

func (s StaticSource) Fetch(ctx context.Context) (*Document, error) {
	return s.Doc, nil
}
