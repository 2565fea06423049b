// Package cache holds the redis-backed reference code cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const referenceCodeKeyPrefix = "contacts:refcode:"

type cachedReferenceCode struct {
	ID           int64  `json:"id"`
	Group        string `json:"group"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// referenceCodeCache implements service.ReferenceCodeCache on redis.
type referenceCodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Params holds dependencies for the cache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewReferenceCodeCache connects to redis. It returns a nil cache when no URL is configured.
func NewReferenceCodeCache(params Params) (service.ReferenceCodeCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, reference codes are read from the database")

		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis URL")
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "redis ping failed")
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewReferenceCodeCacheWithClient(client, cfg.TTL), nil
}

// NewReferenceCodeCacheWithClient wraps an existing redis client.
func NewReferenceCodeCacheWithClient(client *redis.Client, ttl time.Duration) service.ReferenceCodeCache {
	return &referenceCodeCache{client: client, ttl: ttl}
}

func referenceCodeKey(group entity.ReferenceGroup, code string) string {
	return referenceCodeKeyPrefix + string(group) + ":" + code
}

// Get returns (nil, nil) on a miss.
func (c *referenceCodeCache) Get(ctx context.Context, group entity.ReferenceGroup, code string) (*entity.ReferenceCode, error) {
	data, err := c.client.Get(ctx, referenceCodeKey(group, code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read reference code from redis")
	}

	var cached cachedReferenceCode
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached reference code")
	}

	return &entity.ReferenceCode{
		ID:           cached.ID,
		Group:        entity.ReferenceGroup(cached.Group),
		Code:         cached.Code,
		Description:  cached.Description,
		DisplayOrder: cached.DisplayOrder,
		IsActive:     cached.IsActive,
	}, nil
}

func (c *referenceCodeCache) Set(ctx context.Context, referenceCode *entity.ReferenceCode) error {
	data, err := json.Marshal(cachedReferenceCode{
		ID:           referenceCode.ID,
		Group:        string(referenceCode.Group),
		Code:         referenceCode.Code,
		Description:  referenceCode.Description,
		DisplayOrder: referenceCode.DisplayOrder,
		IsActive:     referenceCode.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, referenceCodeKey(referenceCode.Group, referenceCode.Code), data, c.ttl).Err(),
		"failed to write reference code to redis")
}
