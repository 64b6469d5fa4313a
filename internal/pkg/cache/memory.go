package cache

import (
	"context"
	"sync"
	"time"

	"github.com/printadmin/storformat/internal/domain"
)

type memoryItem struct {
	result  domain.PriceResult
	expires time.Time
}

// DefaultMemoryMaxItems caps the in-memory cache between expiry sweeps.
const DefaultMemoryMaxItems = 10_000

type Memory struct {
	ttl       time.Duration
	maxItems  int
	now       func() time.Time
	mu        sync.RWMutex
	items     map[string]memoryItem
	nextSweep time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:      ttl,
		maxItems: DefaultMemoryMaxItems,
		now:      time.Now,
		items:    make(map[string]memoryItem),
	}
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *Memory) Get(_ context.Context, key string) (*domain.PriceResult, bool, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if m.now().After(item.expires) {
		m.mu.Lock()
		if cur, ok := m.items[key]; ok && cur.expires.Equal(item.expires) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}

	res := item.result
	if item.result.SplitInfo != nil {
		split := *item.result.SplitInfo
		res.SplitInfo = &split
	}
	return &res, true, nil
}

func (m *Memory) Set(_ context.Context, key string, res *domain.PriceResult) error {
	item := memoryItem{result: *res, expires: m.now().Add(m.ttl)}
	if res.SplitInfo != nil {
		split := *res.SplitInfo
		item.result.SplitInfo = &split
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.After(m.nextSweep) || len(m.items) >= m.maxItems {
		m.sweep(now)
	}
	if _, exists := m.items[key]; !exists && len(m.items) >= m.maxItems {
		m.evictOne()
	}
	m.items[key] = item
	return nil
}

// sweep drops expired items. Callers hold the write lock.
func (m *Memory) sweep(now time.Time) {
	for k, it := range m.items {
		if now.After(it.expires) {
			delete(m.items, k)
		}
	}
	m.nextSweep = now.Add(m.ttl)
}

// evictOne drops the item closest to expiry.
func (m *Memory) evictOne() {
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for k, it := range m.items {
		if !found || it.expires.Before(soonest) {
			victim, soonest, found = k, it.expires, true
		}
	}
	if found {
		delete(m.items, victim)
	}
}

func (m *Memory) Invalidate(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]memoryItem)
	return nil
}
