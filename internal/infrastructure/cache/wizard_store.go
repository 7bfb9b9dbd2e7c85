package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"legal-consult-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis key prefixes for wizard session state
const (
	bookingWizardKeyPrefix = "wizard:booking:"
	profileWizardKeyPrefix = "wizard:profile:"
	submitLockKeyPrefix    = "wizard:submit-lock:"
)

// WizardStore persists wizard session state between steps. Sessions carry a
// TTL so abandoned wizards evaporate on their own; an explicit Cancel
// deletes them immediately.
type WizardStore interface {
	GetBookingSession(ctx context.Context, clientID, lawyerID uuid.UUID) (*entity.BookingWizardSession, error)
	SaveBookingSession(ctx context.Context, session *entity.BookingWizardSession) error
	DeleteBookingSession(ctx context.Context, clientID, lawyerID uuid.UUID) error

	GetProfileSession(ctx context.Context, userID uuid.UUID) (*entity.ProfileWizardSession, error)
	SaveProfileSession(ctx context.Context, session *entity.ProfileWizardSession) error
	DeleteProfileSession(ctx context.Context, userID uuid.UUID) error

	// AcquireSubmitLock takes a single-flight lock for one wizard's final
	// submission. Returns false when a submission is already outstanding.
	AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, key string) error
}

type redisWizardStore struct {
	client     *redis.Client
	sessionTTL time.Duration
}

// NewWizardStore creates a redis-backed WizardStore.
func NewWizardStore(client *redis.Client, sessionTTL time.Duration) WizardStore {
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	return &redisWizardStore{
		client:     client,
		sessionTTL: sessionTTL,
	}
}

func bookingKey(clientID, lawyerID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", bookingWizardKeyPrefix, clientID, lawyerID)
}

func profileKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", profileWizardKeyPrefix, userID)
}

func (s *redisWizardStore) GetBookingSession(ctx context.Context, clientID, lawyerID uuid.UUID) (*entity.BookingWizardSession, error) {
	data, err := s.client.Get(ctx, bookingKey(clientID, lawyerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking wizard session: %w", err)
	}

	var session entity.BookingWizardSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode booking wizard session: %w", err)
	}
	return &session, nil
}

func (s *redisWizardStore) SaveBookingSession(ctx context.Context, session *entity.BookingWizardSession) error {
	session.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode booking wizard session: %w", err)
	}
	if err := s.client.Set(ctx, bookingKey(session.ClientID, session.LawyerID), data, s.sessionTTL).Err(); err != nil {
		return fmt.Errorf("save booking wizard session: %w", err)
	}
	return nil
}

func (s *redisWizardStore) DeleteBookingSession(ctx context.Context, clientID, lawyerID uuid.UUID) error {
	if err := s.client.Del(ctx, bookingKey(clientID, lawyerID)).Err(); err != nil {
		return fmt.Errorf("delete booking wizard session: %w", err)
	}
	return nil
}

func (s *redisWizardStore) GetProfileSession(ctx context.Context, userID uuid.UUID) (*entity.ProfileWizardSession, error) {
	data, err := s.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile wizard session: %w", err)
	}

	var session entity.ProfileWizardSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode profile wizard session: %w", err)
	}
	return &session, nil
}

func (s *redisWizardStore) SaveProfileSession(ctx context.Context, session *entity.ProfileWizardSession) error {
	session.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode profile wizard session: %w", err)
	}
	if err := s.client.Set(ctx, profileKey(session.UserID), data, s.sessionTTL).Err(); err != nil {
		return fmt.Errorf("save profile wizard session: %w", err)
	}
	return nil
}

func (s *redisWizardStore) DeleteProfileSession(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete profile wizard session: %w", err)
	}
	return nil
}

func (s *redisWizardStore) AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, submitLockKeyPrefix+key, "in-flight", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submit lock: %w", err)
	}
	return ok, nil
}

func (s *redisWizardStore) ReleaseSubmitLock(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, submitLockKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release submit lock: %w", err)
	}
	return nil
}
