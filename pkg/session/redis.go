package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "lizardui:session:"

// RedisStore keeps sessions in Redis. Each session is stored as JSON under
// its ID, with a token key pointing at the ID. Both keys share the session TTL.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = (*RedisStore)(nil)

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix sets the key prefix. Default: "lizardui:session:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) idKey(id string) string       { return s.prefix + "id:" + id }
func (s *RedisStore) tokenKey(token string) string { return s.prefix + "token:" + token }

func (s *RedisStore) Create(ctx context.Context, sess *Session) error {
	return s.write(ctx, sess, "")
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	id, err := s.client.Get(ctx, s.tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: get token: %w", err)
	}

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() {
		return nil, ErrExpired
	}
	return sess, nil
}

func (s *RedisStore) Update(ctx context.Context, sess *Session) error {
	old, err := s.load(ctx, sess.ID)
	if err != nil {
		return err
	}
	staleToken := ""
	if old.Token != sess.Token {
		staleToken = old.Token
	}
	return s.write(ctx, sess, staleToken)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	sess, err := s.load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.idKey(id), s.tokenKey(sess.Token)).Err(); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, s.idKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: get: %w", err)
	}
	var sess Session
	if err := sonic.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) write(ctx context.Context, sess *Session, staleToken string) error {
	raw, err := sonic.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.idKey(sess.ID), raw, ttl)
		pipe.Set(ctx, s.tokenKey(sess.Token), sess.ID, ttl)
		if staleToken != "" {
			pipe.Del(ctx, s.tokenKey(staleToken))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	return nil
}
