package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/synergyvets/careers-site/internal/core/domain"
)

// SessionStore persists one serialized Session per browser profile.
// Key format: session:<profile_id>
//
// The stored copy is a cache of the session manager's in-memory state; a
// malformed payload is treated as "logged out" and dropped, never surfaced
// as an error.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewSessionStore(client *redis.Client, ttl time.Duration, log zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, ttl: ttl, log: log}
}

func (s *SessionStore) Load(ctx context.Context, profileID string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(profileID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.log.Warn().Err(err).Str("profile", profileID).Msg("dropping malformed stored session")
		_ = s.client.Del(ctx, s.key(profileID)).Err()
		return nil, nil
	}
	if sess.AccessToken == "" || sess.RefreshToken == "" {
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, profileID string, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(profileID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, profileID string) error {
	if err := s.client.Del(ctx, s.key(profileID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(profileID string) string {
	return "session:" + profileID
}
