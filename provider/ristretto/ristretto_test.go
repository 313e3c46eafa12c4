package ristretto

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64, Metrics: true, SyncWrites: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("miss expected, ok=%v err=%v", ok, err)
	}
	ok, err := p.Set(ctx, "k", []byte("s#VJ-00003vpAZD"), 1, time.Minute)
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	v, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || string(v) != "s#VJ-00003vpAZD" {
		t.Fatalf("Get: %q ok=%v err=%v", v, ok, err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("value still present after Del")
	}
	if p.Metrics() == nil {
		t.Fatalf("metrics enabled but nil")
	}
}

func TestUnexpectedShapeIsDropped(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	p.c.Set("k", "not bytes", 1)
	p.c.Wait()
	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("non-[]byte entry should miss, ok=%v err=%v", ok, err)
	}
}
