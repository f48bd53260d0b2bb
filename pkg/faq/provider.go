package faq

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Logger matches the structured logger used across the service.
type Logger interface {
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
}

// Provider owns the shared knowledge base. The first load runs in the
// background; until it finishes Wait blocks. A failed load installs
// EmptyKnowledgeBase so callers never see a partial base.
type Provider struct {
	source Source
	logger Logger

	current  atomic.Pointer[KnowledgeBase]
	ready    chan struct{}
	once     sync.Once
	reloadMu sync.Mutex

	lastErr    atomic.Pointer[LoadError]
	loadedAt   atomic.Int64
	generation atomic.Uint64
}

func NewProvider(source Source, logger Logger) *Provider {
	return &Provider{
		source: source,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start begins the initial load in a goroutine. Calling it again is a no-op.
func (p *Provider) Start(ctx context.Context) {
	p.once.Do(func() {
		go func() {
			p.load(ctx)
			close(p.ready)
		}()
	})
}

// Ready is closed once the initial load has finished.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

// Wait blocks until the initial load finishes or ctx is done.
func (p *Provider) Wait(ctx context.Context) (*KnowledgeBase, error) {
	select {
	case <-p.ready:
		return p.current.Load(), nil
	case <-ctx.Done():
		return nil, ErrKnowledgeBaseNotReady
	}
}

// Current returns the installed base, or nil before the first load finishes.
func (p *Provider) Current() *KnowledgeBase {
	return p.current.Load()
}

// Reload fetches the source again. On failure the previous base is kept.
func (p *Provider) Reload(ctx context.Context) (*KnowledgeBase, error) {
	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()

	kb, err := LoadKnowledgeBase(ctx, p.source)
	if err != nil {
		p.logError(err)
		return nil, err
	}
	p.lastErr.Store(nil)
	p.install(kb)
	return kb, nil
}

// LastError is the error of the most recent failed load, if any.
func (p *Provider) LastError() *LoadError {
	return p.lastErr.Load()
}

func (p *Provider) LoadedAt() time.Time {
	ns := p.loadedAt.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func (p *Provider) Generation() uint64 {
	return p.generation.Load()
}

func (p *Provider) SourceName() string {
	return p.source.Name()
}

func (p *Provider) load(ctx context.Context) {
	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()

	kb, err := LoadKnowledgeBase(ctx, p.source)
	if err != nil {
		p.logError(err)
		kb = EmptyKnowledgeBase()
	} else {
		p.lastErr.Store(nil)
	}
	p.install(kb)
}

func (p *Provider) install(kb *KnowledgeBase) {
	p.current.Store(kb)
	p.loadedAt.Store(time.Now().UnixNano())
	gen := p.generation.Add(1)
	if p.logger != nil {
		stats := kb.Stats()
		p.logger.Info("FAQ", "Knowledge base installed", map[string]interface{}{
			"source":     p.source.Name(),
			"entries":    stats.Entries,
			"skipped":    stats.Skipped,
			"generation": gen,
		})
	}
}

func (p *Provider) logError(err error) {
	var le *LoadError
	if !errors.As(err, &le) {
		le = &LoadError{Source: p.source.Name(), Err: err}
	}
	p.lastErr.Store(le)
	if p.logger != nil {
		p.logger.Error("FAQ", "Knowledge base load failed, serving fallback only", map[string]interface{}{
			"source": le.Source,
			"error":  le.Err.Error(),
		})
	}
}
