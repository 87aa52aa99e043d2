package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frontdesk/database/kvstore"
	"frontdesk/models"
	"frontdesk/utils"
)

var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionStore keeps price quotes between calculation and confirmation.
type SessionStore interface {
	Save(ctx context.Context, session models.QuoteSession) (models.QuoteSession, error)
	Get(ctx context.Context, sessionID string) (models.QuoteSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// KVSessionStore stores sessions as JSON next to the front desk records.
// Backends implementing kvstore.TTLSetter expire them natively; the rest rely
// on ExpiresAt being checked on read.
type KVSessionStore struct {
	Store kvstore.Store
	TTL   time.Duration
	Now   func() time.Time
}

func NewKVSessionStore(store kvstore.Store, ttl time.Duration) *KVSessionStore {
	return &KVSessionStore{Store: store, TTL: ttl, Now: time.Now}
}

func sessionKey(id string) string {
	return utils.BookingSessionPrefix + id
}

// Save stamps CreatedAt and ExpiresAt when unset and returns the stored session.
func (s *KVSessionStore) Save(ctx context.Context, session models.QuoteSession) (models.QuoteSession, error) {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.Now()
	}
	if session.ExpiresAt.IsZero() && s.TTL > 0 {
		session.ExpiresAt = session.CreatedAt.Add(s.TTL)
	}
	data, err := json.Marshal(session)
	if err != nil {
		return models.QuoteSession{}, fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if setter, ok := s.Store.(kvstore.TTLSetter); ok && s.TTL > 0 {
		err = setter.SetWithTTL(ctx, sessionKey(session.SessionID), string(data), s.TTL)
	} else {
		err = s.Store.Set(ctx, sessionKey(session.SessionID), string(data))
	}
	if err != nil {
		return models.QuoteSession{}, fmt.Errorf("failed to store booking session: %w", err)
	}
	return session, nil
}

func (s *KVSessionStore) Get(ctx context.Context, sessionID string) (models.QuoteSession, error) {
	if sessionID == "" {
		return models.QuoteSession{}, ErrSessionNotFound
	}
	raw, err := s.Store.Get(ctx, sessionKey(sessionID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return models.QuoteSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.QuoteSession{}, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.QuoteSession{}, fmt.Errorf("failed to parse booking session: %w", err)
	}
	if session.Expired(s.Now()) {
		_ = s.Store.Delete(ctx, sessionKey(sessionID))
		return models.QuoteSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *KVSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}
