package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gearfitness/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gear-session||"
)

var ErrInvalidSession = errors.New("invalid session")

// SessionStore maps opaque session tokens to user ids. Tokens are issued by the
// login flow; the backend only resolves them.
type SessionStore struct {
	ttl         time.Duration
	redisClient *redis.Client
	// injectable for tests
	RandStringFunc func(s int) (string, error)
	Now            func() time.Time
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		Now:            time.Now,
	}
}

// Resolve returns the user bound to token. Unknown or expired tokens return ErrInvalidSession.
func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrInvalidSession
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("get session: %w", err)
	}

	userIDStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return uuid.Nil, fmt.Errorf("malformed session value")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse session created at: %w", err)
	}

	if s.Now().Sub(time.Unix(createdAtUnix, 0)) > s.ttl {
		return uuid.Nil, ErrInvalidSession
	}
	return userID, nil
}

// Create stores a new session for userID and returns its token.
func (s *SessionStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.RandStringFunc(35)
	if err != nil {
		return "", err
	}
	value := fmt.Sprintf("%s|%d", userID, s.Now().Unix())
	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, value, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.redisClient.Del(ctx, sessionKeyPrefix+token).Err()
}
