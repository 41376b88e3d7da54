package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

func TestNewRedisClient_BadURL(t *testing.T) {
	if _, err := NewRedisClient("not a url"); err == nil {
		t.Fatal("expected error for invalid redis url")
	}
}

// An unreachable server must behave like an empty cache.
func TestQueueRedisCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewQueueRedisCache(client, time.Second, zerolog.Nop())
	ctx := context.Background()

	c.Invalidate(ctx)
	if s, ok := c.Get(ctx); ok || s != nil {
		t.Fatalf("expected miss, got %+v", s)
	}
}
