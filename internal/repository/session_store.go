package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is the hydrated sign-in state kept in Redis for the lifetime of
// a token. Handlers read it instead of consulting any ambient global.
type Session struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
}

type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Delete tears a session down on sign-out.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// SaveOAuthState stores a one-shot OAuth state nonce.
func (s *SessionStore) SaveOAuthState(ctx context.Context, state string) error {
	return s.client.Set(ctx, stateKey(state), "1", 10*time.Minute).Err()
}

// ConsumeOAuthState checks and deletes a state nonce in one call, so a
// replayed callback fails.
func (s *SessionStore) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	deleted, err := s.client.Del(ctx, stateKey(state)).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func stateKey(state string) string {
	return "oauth_state:" + state
}
