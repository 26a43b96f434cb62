package repository

import (
	"context"
	"sync"
	"time"

	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // 0이면 만료 없음
}

// InMemoryCacheImpl는 프로세스 내부 캐시 구현체입니다
type InMemoryCacheImpl struct {
	entries map[string]memoryEntry
	lock    sync.RWMutex
	now     func() time.Time
}

// NewInMemoryCacheRepository는 새 인메모리 캐시 저장소를 생성합니다
func NewInMemoryCacheRepository() _interface.CacheStore {
	return newInMemoryCache(time.Now)
}

func newInMemoryCache(now func() time.Time) *InMemoryCacheImpl {
	return &InMemoryCacheImpl{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

// Get은 만료되지 않은 값을 조회합니다
func (m *InMemoryCacheImpl) Get(ctx context.Context, key string) (string, bool, error) {
	m.lock.RLock()
	entry, exists := m.entries[key]
	m.lock.RUnlock()

	if !exists {
		return "", false, nil
	}

	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.lock.Lock()
		// 그 사이 다시 저장된 값은 지우지 않습니다
		if current, ok := m.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, key)
		}
		m.lock.Unlock()
		return "", false, nil
	}

	return entry.value, true, nil
}

// Set은 값을 저장합니다. ttl이 0이면 만료 없이 저장합니다.
func (m *InMemoryCacheImpl) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.lock.Lock()
	m.entries[key] = entry
	m.lock.Unlock()
	return nil
}
