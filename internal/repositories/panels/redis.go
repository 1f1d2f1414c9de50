package panels

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/pkg/clock"
	redisclient "github.com/vttbr/compendium-i18n/internal/redis"
)

const (
	// Key pattern: panel:{id}
	panelKeyPrefix = "panel:"

	errPanelNil    = "panel cannot be nil"
	errPanelIDReq  = "panel ID cannot be empty"
	errPanelAbsent = "panel not found"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for panel snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a panel snapshot by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPanelIDReq)
	}

	panelJSON, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errPanelAbsent).WithMeta("panel_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get panel from Redis")
	}

	var panel compendium.Panel
	if err := json.Unmarshal([]byte(panelJSON), &panel); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal panel")
	}

	return &GetOutput{
		Panel: &panel,
	}, nil
}

// Save stores a panel snapshot, replacing any existing one
func (r *redisRepository) Save(ctx context.Context, panel *compendium.Panel) error {
	if panel == nil {
		return errors.InvalidArgument(errPanelNil)
	}
	if panel.ID == "" {
		return errors.InvalidArgument(errPanelIDReq)
	}

	stored := panel.Clone()
	stored.UpdatedAt = r.clock.Now()

	panelJSON, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal panel")
	}

	if err := r.client.Set(ctx, r.buildKey(panel.ID), panelJSON, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store panel in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a panel snapshot
func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", panelKeyPrefix, id)
}
