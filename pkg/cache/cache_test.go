package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client, time.Minute), mr
}

func TestCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got []entry
	assert.False(t, c.Get(ctx, "brands:all", &got))

	c.Set(ctx, "brands:all", []entry{{ID: 1, Name: "Acme"}})
	require.True(t, c.Get(ctx, "brands:all", &got))
	assert.Equal(t, []entry{{ID: 1, Name: "Acme"}}, got)

	mr.FastForward(2 * time.Minute)
	assert.False(t, c.Get(ctx, "brands:all", &got))
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, Key("categories", "flat"), []entry{{ID: 1}})
	c.Set(ctx, Key("categories", "tree"), []entry{{ID: 2}})
	c.Set(ctx, Key("brands", "all"), []entry{{ID: 3}})

	c.InvalidatePrefix(ctx, "categories")

	assert.False(t, mr.Exists(Key("categories", "flat")))
	assert.False(t, mr.Exists(Key("categories", "tree")))
	assert.True(t, mr.Exists(Key("brands", "all")))
}

func TestCache_Disabled(t *testing.T) {
	ctx := context.Background()

	disabled, err := New(Config{})
	require.NoError(t, err)

	for _, c := range []*Cache{nil, disabled} {
		assert.False(t, c.Enabled())
		c.Set(ctx, "k", 1)
		var v int
		assert.False(t, c.Get(ctx, "k", &v))
		c.InvalidatePrefix(ctx, "k")
		assert.NoError(t, c.Close())
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "brands", Key("brands"))
	assert.Equal(t, Key("brands", "true"), Key("brands", "true"))
	assert.NotEqual(t, Key("brands", "true"), Key("brands", "false"))
}
