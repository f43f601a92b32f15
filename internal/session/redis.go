package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "shopconsole:session:"

// OpenRedis connects to addr and pings it.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		addr = "localhost:6379"
		log.Warn().Str("addr", addr).Msg("redis address not set, using default")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, &StoreError{Op: "ping", Err: err}
	}
	return rdb, nil
}

// RedisStore keeps session state as JSON values with a sliding TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (State, error) {
	var st State
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return st, nil
	}
	if err != nil {
		return st, &StoreError{Op: "load", Err: err}
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, &StoreError{Op: "decode", Err: err}
	}
	return st, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, st State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return &StoreError{Op: "encode", Err: err}
	}
	if err := s.rdb.Set(ctx, keyPrefix+id, raw, s.ttl).Err(); err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}
