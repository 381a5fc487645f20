package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the set of live access-token IDs in Redis so that logout
// and account deactivation can revoke tokens before they expire.
type TokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenStore(rdb *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{rdb: rdb, ttl: ttl}
}

type TokenRecord struct {
	UserID    string `json:"uid"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

func key(jti string) string        { return fmt.Sprintf("ims:token:%s", jti) }
func userSetKey(uid string) string { return fmt.Sprintf("ims:user_tokens:%s", uid) }

func (s *TokenStore) Create(ctx context.Context, jti, userID string) error {
	now := time.Now()
	b, _ := json.Marshal(TokenRecord{
		UserID:    userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(jti), b, s.ttl)
	pipe.SAdd(ctx, userSetKey(userID), jti)
	pipe.Expire(ctx, userSetKey(userID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *TokenStore) Get(ctx context.Context, jti string) (*TokenRecord, error) {
	b, err := s.rdb.Get(ctx, key(jti)).Bytes()
	if err != nil {
		return nil, err
	}
	var rec TokenRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *TokenStore) Delete(ctx context.Context, jti string) error {
	rec, _ := s.Get(ctx, jti)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(jti))
	if rec != nil {
		pipe.SRem(ctx, userSetKey(rec.UserID), jti)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForUser kills every live token of one user, used when an account
// is deactivated.
func (s *TokenStore) RevokeAllForUser(ctx context.Context, userID string) error {
	jtis, err := s.rdb.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, jti := range jtis {
		pipe.Del(ctx, key(jti))
	}
	pipe.Del(ctx, userSetKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}
