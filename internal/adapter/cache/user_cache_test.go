package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "taskflow/internal/domain/user"
)

func setupCache(t *testing.T) (UserCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t)), mr
}

func testUser() *domain.User {
	return &domain.User{
		ID:        "user-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestRedisUserCache_SetAndGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	u := testUser()
	require.NoError(t, c.Set(ctx, u))

	got, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.Email, got.Email)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))
}

func TestRedisUserCache_GetMiss(t *testing.T) {
	c, _ := setupCache(t)

	got, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_SetNil(t *testing.T) {
	c, _ := setupCache(t)

	err := c.Set(context.Background(), nil)
	assert.Error(t, err)
}

func TestRedisUserCache_Delete(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	u := testUser()
	require.NoError(t, c.Set(ctx, u))
	require.NoError(t, c.Delete(ctx, u.ID))

	got, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_TTL(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	u := testUser()
	require.NoError(t, c.Set(ctx, u))

	mr.FastForward(6 * time.Minute)

	got, err := c.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
