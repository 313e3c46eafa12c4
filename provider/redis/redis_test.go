package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestNilClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("want ErrNilClient, got %v", err)
	}
}

// No server listens on the address; every call must surface the transport error.
func TestUnreachableServer(t *testing.T) {
	ctx := context.Background()
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	p, err := New(Config{Client: rdb, CloseClient: true})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := p.Get(ctx, "k"); err == nil || ok {
		t.Fatalf("Get: want error, ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, "k", []byte("HelloWorld"), 1, time.Minute); err == nil || ok {
		t.Fatalf("Set: want error, ok=%v err=%v", ok, err)
	}
	if err := p.Del(ctx, "k"); err == nil {
		t.Fatalf("Del: want error")
	}

	if err := p.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(ctx); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
