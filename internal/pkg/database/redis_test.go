package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	defer client.Close()
	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, client.Delete(ctx, "k"))
	_, err = client.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("k", "v", time.Hour).SetErr(errors.New("redis down"))

	err := client.Set(context.Background(), "k", "v", time.Hour)
	assert.EqualError(t, err, "redis down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HashWithTTL(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.HSetWithTTL(ctx, "rides:location:1", map[string]interface{}{"lat": "1.5", "lng": "2.5"}, time.Minute)
	require.NoError(t, err)

	fields, err := client.HGetAll(ctx, "rides:location:1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lat": "1.5", "lng": "2.5"}, fields)
	assert.Equal(t, time.Minute, mr.TTL("rides:location:1"))
}

func TestRedisClient_ListWithTTL(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.RPushWithTTL(ctx, "rides:messages:1", time.Hour, "a", "b"))
	require.NoError(t, client.RPushWithTTL(ctx, "rides:messages:1", time.Hour, "c"))

	items, err := client.LRange(ctx, "rides:messages:1", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
	assert.Equal(t, time.Hour, mr.TTL("rides:messages:1"))
}

func TestRedisClient_Geo(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.GeoAdd(ctx, "drivers:geo", 106.8272, -6.1754, "near"))
	require.NoError(t, client.GeoAdd(ctx, "drivers:geo", 106.9000, -6.3000, "far"))

	locs, err := client.GeoRadius(ctx, "drivers:geo", 106.8270, -6.1750, 5, "km")
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "near", locs[0].Name)

	require.NoError(t, client.GeoRemove(ctx, "drivers:geo", "near"))
	locs, err = client.GeoRadius(ctx, "drivers:geo", 106.8270, -6.1750, 5, "km")
	require.NoError(t, err)
	assert.Empty(t, locs)
}
