package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/travel-booking/pkg/helpers"
)

// RedisStore keeps sessions as JSON values under "session:<id>".
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(id string) string { return "session:" + id }

func (s *RedisStore) Create(ctx context.Context, userID int64) (*Session, error) {
	sess := newSession(userID)
	if err := helpers.RedisSetJSON(ctx, s.rdb, key(sess.ID), sess, s.ttl); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	ok, err := helpers.RedisGetJSON(ctx, s.rdb, key(id), &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return helpers.RedisDel(ctx, s.rdb, key(id))
}

var _ Store = (*RedisStore)(nil)
