package distributed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"faq-chat-be/internal/repository/memory"
	"faq-chat-be/pkg/faq"

	"github.com/redis/go-redis/v9"
)

const KeyPrefix = "chat:session:"

// Client is the subset of *redis.Client the repository needs.
type Client interface {
	GetEx(ctx context.Context, key string, expiration time.Duration) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// SessionRepository stores session state in Redis so any instance can serve
// any session. Live *faq.Session values stay in a local cache and are only
// rebuilt when Redis holds a newer revision than the local copy.
type SessionRepository struct {
	rdb           Client
	local         *memory.SessionRepository
	ttl           time.Duration
	knowledgeBase func() *faq.KnowledgeBase
}

// NewSessionRepository uses knowledgeBase to bind sessions restored from
// Redis; it returns nil until the first load finishes.
func NewSessionRepository(rdb Client, local *memory.SessionRepository, ttl time.Duration, knowledgeBase func() *faq.KnowledgeBase) *SessionRepository {
	return &SessionRepository{
		rdb:           rdb,
		local:         local,
		ttl:           ttl,
		knowledgeBase: knowledgeBase,
	}
}

func key(sessionID string) string {
	return KeyPrefix + sessionID
}

func (r *SessionRepository) Save(ctx context.Context, session *faq.Session) error {
	data, err := json.Marshal(session.State())
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID(), err)
	}
	if err := r.rdb.Set(ctx, key(session.ID()), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID(), err)
	}
	return r.local.Save(ctx, session)
}

// Get refreshes the Redis expiry and returns the newest copy of the session.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*faq.Session, bool, error) {
	data, err := r.rdb.GetEx(ctx, key(sessionID), r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		_ = r.local.Delete(ctx, sessionID)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var st faq.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, false, fmt.Errorf("decode session %s: %w", sessionID, err)
	}

	if cached, ok, _ := r.local.Get(ctx, sessionID); ok && cached.Revision() >= st.Revision {
		return cached, true, nil
	}

	kb := r.knowledgeBase()
	if kb == nil {
		return nil, false, faq.ErrKnowledgeBaseNotReady
	}
	session := faq.RestoreSession(kb, st)
	if err := r.local.Save(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return r.local.Delete(ctx, sessionID)
}

// Count reports sessions across all instances.
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("count sessions: %w", err)
		}
		total += len(keys)
		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}
