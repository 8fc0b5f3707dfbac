package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in redis as JSON values with a server-side TTL,
// so logins survive process restarts.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func key(token string) string { return "session:" + token }

func (r *RedisStore) Put(ctx context.Context, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.rdb.Set(ctx, key(s.Token), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (Session, bool) {
	val, err := r.rdb.Get(ctx, key(token)).Result()
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return Session{}, false
	}
	if s.Expired() {
		return Session{}, false
	}
	return s, true
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, key(token)).Err()
}
