package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestKey(t *testing.T) {
	if got := key(42); got != "vehicle:42" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewVehicleCache_DefaultTTL(t *testing.T) {
	c := NewVehicleCache(redis.NewClient(&redis.Options{Addr: "localhost:0"}), 0)
	if c.ttl != defaultCacheTTL {
		t.Fatalf("expected default ttl, got %v", c.ttl)
	}
}

func TestVehicleCache_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	c := NewVehicleCache(client, time.Minute)

	if _, err := c.Get(context.Background(), 1); err == nil {
		t.Fatalf("expected error from unreachable redis")
	}
}
