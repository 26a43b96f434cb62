package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	cache := newInMemoryCache(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "학생 식당 ko-KO", "menu", time.Hour))
	require.NoError(t, cache.Set(ctx, "welcome ko-KO", "hello", 0))

	value, found, err := cache.Get(ctx, "학생 식당 ko-KO")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "menu", value)

	now = now.Add(time.Hour)

	_, found, err = cache.Get(ctx, "학생 식당 ko-KO")
	require.NoError(t, err)
	assert.False(t, found, "TTL이 지나면 조회되지 않아야 합니다")

	value, found, err = cache.Get(ctx, "welcome ko-KO")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", value)

	_, found, err = cache.Get(ctx, "없는 키")
	require.NoError(t, err)
	assert.False(t, found)
}
