package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/northwear-shop/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore Redis 会话存储实现
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(cfg *config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("redis is not enabled")
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "nw"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}, nil
}

// GetCart 读取购物车
func (s *RedisStore) GetCart(ctx context.Context, sessionID string) (Cart, error) {
	val, err := s.client.Get(ctx, s.cartKey(sessionID)).Result()
	if err == redis.Nil {
		return Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	cart := Cart{}
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SaveCart 写入购物车并续期
func (s *RedisStore) SaveCart(ctx context.Context, sessionID string, cart Cart) error {
	if cart == nil {
		cart = Cart{}
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.cartKey(sessionID), payload, s.ttl).Err()
}

// ClearCart 清空购物车
func (s *RedisStore) ClearCart(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.cartKey(sessionID)).Err()
}

// PushFlash 追加提示消息
func (s *RedisStore) PushFlash(ctx context.Context, sessionID, message string) error {
	key := s.flashKey(sessionID)
	if err := s.client.RPush(ctx, key, message).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

// PopFlashes 取出并清空提示消息
func (s *RedisStore) PopFlashes(ctx context.Context, sessionID string) ([]string, error) {
	key := s.flashKey(sessionID)
	messages, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *RedisStore) cartKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s:cart", s.prefix, sessionID)
}

func (s *RedisStore) flashKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s:flash", s.prefix, sessionID)
}
