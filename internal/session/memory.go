package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	cart      Cart
	flashes   []string
	expiresAt time.Time
}

// MemoryStore 进程内会话存储实现
// Redis 关闭时的回退方案，也用于测试；进程重启后会话丢失。
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

// NewMemoryStore 创建进程内会话存储
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = TTLFromHours(0)
	}
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}
}

// GetCart 读取购物车
func (s *MemoryStore) GetCart(ctx context.Context, sessionID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.liveEntry(sessionID)
	if entry == nil || entry.cart == nil {
		return Cart{}, nil
	}
	return entry.cart.Clone(), nil
}

// SaveCart 写入购物车并续期
func (s *MemoryStore) SaveCart(ctx context.Context, sessionID string, cart Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.ensureEntry(sessionID)
	entry.cart = cart.Clone()
	entry.expiresAt = time.Now().Add(s.ttl)
	return nil
}

// ClearCart 清空购物车
func (s *MemoryStore) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry := s.liveEntry(sessionID); entry != nil {
		entry.cart = nil
	}
	return nil
}

// PushFlash 追加提示消息
func (s *MemoryStore) PushFlash(ctx context.Context, sessionID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.ensureEntry(sessionID)
	entry.flashes = append(entry.flashes, message)
	entry.expiresAt = time.Now().Add(s.ttl)
	return nil
}

// PopFlashes 取出并清空提示消息
func (s *MemoryStore) PopFlashes(ctx context.Context, sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.liveEntry(sessionID)
	if entry == nil {
		return nil, nil
	}
	messages := entry.flashes
	entry.flashes = nil
	return messages, nil
}

func (s *MemoryStore) ensureEntry(sessionID string) *memoryEntry {
	entry := s.liveEntry(sessionID)
	if entry == nil {
		entry = &memoryEntry{expiresAt: time.Now().Add(s.ttl)}
		s.entries[sessionID] = entry
	}
	return entry
}

func (s *MemoryStore) liveEntry(sessionID string) *memoryEntry {
	entry, ok := s.entries[sessionID]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil
	}
	return entry
}
