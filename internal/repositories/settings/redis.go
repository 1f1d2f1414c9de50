package settings

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/vttbr/compendium-i18n/internal/errors"
	redisclient "github.com/vttbr/compendium-i18n/internal/redis"
)

const (
	// Key pattern: setting:{key}
	settingKeyPrefix = "setting:"

	errSettingKeyReq = "setting key cannot be empty"
	errSettingAbsent = "setting not found"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for host settings
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get reads a setting value
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errSettingKeyReq)
	}

	value, err := r.client.Get(ctx, r.buildKey(input.Key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errSettingAbsent).WithMeta("setting_key", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get setting from Redis")
	}

	return &GetOutput{
		Value: value,
	}, nil
}

// Set writes a setting value
func (r *redisRepository) Set(ctx context.Context, input SetInput) error {
	if input.Key == "" {
		return errors.InvalidArgument(errSettingKeyReq)
	}

	if err := r.client.Set(ctx, r.buildKey(input.Key), input.Value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store setting in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a setting
func (r *redisRepository) buildKey(key string) string {
	return fmt.Sprintf("%s%s", settingKeyPrefix, key)
}
