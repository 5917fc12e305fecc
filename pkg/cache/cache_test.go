package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MiqayaMahmood/foodeez-0909/pkg/cache"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	_, found := c.Get(ctx, "place-cache:42")
	assert.False(t, found)

	c.Set(ctx, "place-cache:42", true, time.Minute)
	value, found := c.Get(ctx, "place-cache:42")
	assert.True(t, found)
	assert.True(t, value)

	c.Set(ctx, "place-cache:43", false, time.Minute)
	value, found = c.Get(ctx, "place-cache:43")
	assert.True(t, found)
	assert.False(t, value)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "place-cache:42", true, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get(ctx, "place-cache:42")
	assert.False(t, found)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "place-cache:42", true, time.Minute)
	c.Delete(ctx, "place-cache:42")

	_, found := c.Get(ctx, "place-cache:42")
	assert.False(t, found)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := cache.NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "place-cache:42", false, time.Minute)
	c.Set(ctx, "place-cache:42", true, time.Minute)

	value, found := c.Get(ctx, "place-cache:42")
	assert.True(t, found)
	assert.True(t, value)
}
