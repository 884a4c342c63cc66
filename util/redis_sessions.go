package util

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks issued tokens per user and the set of revoked token ids.
// A nil Redis client turns every operation into a no-op.
type SessionStore struct {
	rdb *redis.Client
}

// NewSessionStore returns a SessionStore backed by rdb, which may be nil.
func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Enabled reports whether a Redis client is configured.
func (s *SessionStore) Enabled() bool {
	return s != nil && s.rdb != nil
}

func revokedKey(jti string) string {
	return fmt.Sprintf("revoked:%s", jti)
}

func userSessionsKey(phone, name string) string {
	return fmt.Sprintf("user_sessions:%s:%s", phone, name)
}

// TrackSession records jti in the user's session set. The set lives as long as
// the newest token so it never outlives what it tracks.
func (s *SessionStore) TrackSession(ctx context.Context, phone, name, jti string, ttl time.Duration) error {
	if !s.Enabled() || jti == "" {
		return nil
	}
	key := userSessionsKey(phone, name)
	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, key, jti)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeToken marks jti revoked until ttl elapses. Non-positive ttls are ignored
// since the token has already expired.
func (s *SessionStore) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if !s.Enabled() || jti == "" || ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

// IsRevoked reports whether jti has been revoked.
func (s *SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if !s.Enabled() || jti == "" {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RemoveSession drops jti from the user's session set, deleting the set once empty.
func (s *SessionStore) RemoveSession(ctx context.Context, phone, name, jti string) error {
	if !s.Enabled() {
		return nil
	}
	script := `
		local removed = redis.call('SREM', KEYS[1], ARGV[1])
		if removed > 0 and redis.call('SCARD', KEYS[1]) == 0 then
			redis.call('DEL', KEYS[1])
		end
		return removed
	`
	return s.rdb.Eval(ctx, script, []string{userSessionsKey(phone, name)}, jti).Err()
}

// RevokeUserSessions revokes every tracked token of the user for ttl and clears the set.
func (s *SessionStore) RevokeUserSessions(ctx context.Context, phone, name string, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	key := userSessionsKey(phone, name)
	members, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	pipe := s.rdb.TxPipeline()
	for _, jti := range members {
		pipe.Set(ctx, revokedKey(jti), "1", ttl)
	}
	pipe.Del(ctx, key)
	_, err = pipe.Exec(ctx)
	return err
}
