package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/printadmin/storformat/internal/domain"
)

func TestMemory_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	if _, ok, _ := c.Get(ctx, "q1"); ok {
		t.Fatal("empty cache returned a hit")
	}

	res := &domain.PriceResult{TotalPrice: 160, SplitInfo: &domain.SplitInfo{IsSplit: true, PiecesWide: 2, PiecesHigh: 1, TotalPieces: 2}}
	if err := c.Set(ctx, "q1", res); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "q1")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v; want hit", ok, err)
	}
	if got.TotalPrice != 160 || got.SplitInfo.TotalPieces != 2 {
		t.Fatalf("got %+v", got)
	}

	got.SplitInfo.TotalPieces = 99
	again, _, _ := c.Get(ctx, "q1")
	if again.SplitInfo.TotalPieces != 2 {
		t.Fatal("cached result shares memory with callers")
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "q1"); ok {
		t.Fatal("hit after Invalidate")
	}
}

func TestMemory_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "q", &domain.PriceResult{TotalPrice: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, ok, _ := c.Get(ctx, "q"); !ok {
		t.Fatal("expired too early")
	}

	now = now.Add(2 * time.Second)
	if _, ok, _ := c.Get(ctx, "q"); ok {
		t.Fatal("entry outlived its TTL")
	}
}

func TestMemory_DropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory(time.Millisecond)
	c.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		if err := c.Set(ctx, fmt.Sprintf("q%d", i), &domain.PriceResult{TotalPrice: float64(i)}); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	now = now.Add(time.Hour)
	if err := c.Set(ctx, "fresh", &domain.PriceResult{TotalPrice: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := c.Len(); got != 1 {
		t.Fatalf("Len = %d after all but one expired, want 1", got)
	}
}

func TestMemory_GetDeletesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "q", &domain.PriceResult{TotalPrice: 1})
	now = now.Add(2 * time.Minute)

	if _, ok, _ := c.Get(ctx, "q"); ok {
		t.Fatal("expired entry returned")
	}
	if got := c.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0", got)
	}
}

func TestMemory_CapsSize(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Hour)
	c.maxItems = 3

	for i := 0; i < 10; i++ {
		_ = c.Set(ctx, fmt.Sprintf("q%d", i), &domain.PriceResult{TotalPrice: float64(i)})
	}
	if got := c.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	if _, ok, _ := c.Get(ctx, "q9"); !ok {
		t.Fatal("latest entry was evicted")
	}
}
