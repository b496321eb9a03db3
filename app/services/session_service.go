package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionService keeps a redis denylist of revoked token IDs so logout takes
// effect before the JWT expires. A nil client disables revocation.
type SessionService struct{ rdb *redis.Client }

func NewSessionService(rdb *redis.Client) *SessionService { return &SessionService{rdb: rdb} }

func (s *SessionService) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s.rdb == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, "revoked:"+jti, 1, ttl).Err()
}

func (s *SessionService) IsRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil || jti == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, "revoked:"+jti).Result()
	return err == nil && n > 0
}
