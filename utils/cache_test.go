package utils

import (
	"context"
	"testing"
	"time"
)

func TestNilCacheIsANoOp(t *testing.T) {
	var c *Cache

	var out []string
	if c.Get(context.Background(), "key", &out) {
		t.Error("nil cache must report a miss")
	}
	// Must not panic.
	c.Set(context.Background(), "key", []string{"v"}, time.Minute)
	c.Invalidate(context.Background(), "key")
}
