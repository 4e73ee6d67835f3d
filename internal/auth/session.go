package auth

import (
    "context"
    "encoding/json"
    "errors"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"

    "helpdesk/internal/model"
)

// ErrNoSession is returned when no persisted session record exists for a
// user.  Middleware translates it into a 401 login redirect.
var ErrNoSession = errors.New("no session")

// SessionStore persists the logged-in User record (sans password) so that
// /v1/me can answer without re-contacting the spreadsheet backend.  Logout
// deletes the record unconditionally.
type SessionStore interface {
    Save(ctx context.Context, u model.User, ttl time.Duration) error
    Get(ctx context.Context, userID string) (model.User, error)
    Delete(ctx context.Context, userID string) error
}

// RedisSessionStore keeps session records under session:<userID> with a TTL.
type RedisSessionStore struct{ rdb *redis.Client }

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
    return &RedisSessionStore{rdb: rdb}
}

func sessionKey(userID string) string { return "session:" + userID }

func (s *RedisSessionStore) Save(ctx context.Context, u model.User, ttl time.Duration) error {
    b, err := json.Marshal(u)
    if err != nil {
        return err
    }
    return s.rdb.Set(ctx, sessionKey(u.ID), b, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, userID string) (model.User, error) {
    b, err := s.rdb.Get(ctx, sessionKey(userID)).Bytes()
    if err == redis.Nil {
        return model.User{}, ErrNoSession
    }
    if err != nil {
        return model.User{}, err
    }
    var u model.User
    if err := json.Unmarshal(b, &u); err != nil {
        return model.User{}, ErrNoSession
    }
    return u, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID string) error {
    return s.rdb.Del(ctx, sessionKey(userID)).Err()
}

// MemorySessionStore is the fallback when Redis is unreachable at startup,
// and the store tests run against.  Records expire lazily on read.
type MemorySessionStore struct {
    mu      sync.RWMutex
    records map[string]memorySession
}

type memorySession struct {
    user model.User
    exp  time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
    return &MemorySessionStore{records: map[string]memorySession{}}
}

func (s *MemorySessionStore) Save(_ context.Context, u model.User, ttl time.Duration) error {
    s.mu.Lock()
    s.records[u.ID] = memorySession{user: u, exp: time.Now().Add(ttl)}
    s.mu.Unlock()
    return nil
}

func (s *MemorySessionStore) Get(_ context.Context, userID string) (model.User, error) {
    s.mu.RLock()
    rec, ok := s.records[userID]
    s.mu.RUnlock()
    if !ok || time.Now().After(rec.exp) {
        return model.User{}, ErrNoSession
    }
    return rec.user, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, userID string) error {
    s.mu.Lock()
    delete(s.records, userID)
    s.mu.Unlock()
    return nil
}
