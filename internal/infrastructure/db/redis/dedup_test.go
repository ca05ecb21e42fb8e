package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Requires a reachable server: STOREFRONT_TEST_REDIS_ADDR=localhost:6379.
func newTestDedup(t *testing.T) *OrderDedup {
	t.Helper()
	addr := os.Getenv("STOREFRONT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREFRONT_TEST_REDIS_ADDR not set")
	}
	client, err := Connect(context.Background(), Config{Addr: addr, DB: 15})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewOrderDedup(client, time.Minute)
}

func TestOrderDedup_ClaimOnce(t *testing.T) {
	d := newTestDedup(t)
	ctx := context.Background()
	key := fmt.Sprintf("k-%d", time.Now().UnixNano())

	ok, err := d.Claim(ctx, "ana", key)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = d.Claim(ctx, "ana", key)
	require.NoError(t, err)
	require.False(t, ok, "second claim must be rejected")

	ok, err = d.Claim(ctx, "luis", key)
	require.NoError(t, err)
	require.True(t, ok, "keys are scoped per user")
}

func TestOrderDedup_Release(t *testing.T) {
	d := newTestDedup(t)
	ctx := context.Background()
	key := fmt.Sprintf("k-%d", time.Now().UnixNano())

	_, err := d.Claim(ctx, "ana", key)
	require.NoError(t, err)
	require.NoError(t, d.Release(ctx, "ana", key))

	ok, err := d.Claim(ctx, "ana", key)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, d.Ping(ctx))
}

func TestOrderDedup_KeyFormat(t *testing.T) {
	d := NewOrderDedup(nil, 0)
	require.Equal(t, "order:dedup:ana:k1", d.key("ana", "k1"))
	require.Equal(t, defaultDedupTTL, d.ttl)
}
