package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewReferenceCodeCache_DisabledWithoutURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	cache, err := NewReferenceCodeCache(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.Nil(t, cache)
}

func TestNewReferenceCodeCache_RejectsBadURL(t *testing.T) {
	_, err := NewReferenceCodeCache(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{URL: "://nope"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
}

func TestReferenceCodeKey(t *testing.T) {
	assert.Equal(t, "contacts:refcode:ADDRESS_TYPE:HOME", referenceCodeKey(entity.GroupAddressType, "HOME"))
}

func TestReferenceCodeCache_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	cache := NewReferenceCodeCacheWithClient(client, time.Minute)

	_, err := cache.Get(context.Background(), entity.GroupPhoneType, "MOB")

	require.Error(t, err)
}
