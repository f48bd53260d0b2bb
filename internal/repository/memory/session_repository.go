package memory

import (
	"context"
	"time"

	"faq-chat-be/pkg/faq"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live chat sessions in process memory. Entries
// expire after the configured TTL of inactivity.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (r *SessionRepository) Save(ctx context.Context, session *faq.Session) error {
	r.cache.Set(session.ID(), session, cache.DefaultExpiration)
	return nil
}

// Get returns the session and refreshes its expiry.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*faq.Session, bool, error) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false, nil
	}
	session := x.(*faq.Session)
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
	return session, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}

func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	return r.cache.ItemCount(), nil
}

// OnEvicted registers a callback for expired or deleted sessions.
func (r *SessionRepository) OnEvicted(fn func(sessionID string)) {
	r.cache.OnEvicted(func(key string, _ interface{}) {
		fn(key)
	})
}
