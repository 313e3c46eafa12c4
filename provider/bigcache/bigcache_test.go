package bigcache

import (
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, Config{LifeWindow: time.Minute, Shards: 16, MaxEntriesInWindow: 100, MaxEntrySize: 256})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("miss expected, ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, "k", []byte("HelloWorld"), 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	v, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || string(v) != "HelloWorld" {
		t.Fatalf("Get: %q ok=%v err=%v", v, ok, err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	// deleting a missing key is not an error
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del missing: %v", err)
	}
}
