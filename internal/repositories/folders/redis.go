package folders

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/vttbr/compendium-i18n/internal/entities/compendium"
	"github.com/vttbr/compendium-i18n/internal/errors"
	"github.com/vttbr/compendium-i18n/internal/pkg/clock"
	redisclient "github.com/vttbr/compendium-i18n/internal/redis"
)

const (
	// Key pattern: folder:{id}, kind index: folder_kind:{kind}
	folderKeyPrefix  = "folder:"
	kindIndexPrefix  = "folder_kind:"
	allFoldersSetKey = "folders:all"

	// Error messages
	errFolderNil    = "folder cannot be nil"
	errFolderIDReq  = "folder ID cannot be empty"
	errFolderKind   = "folder kind cannot be empty"
	errFolderName   = "folder name cannot be empty"
	errFolderAbsent = "folder not found"
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

// NewRedisRepository creates a new Redis repository for folder records
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

// Create stores a new folder record
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Folder == nil {
		return nil, errors.InvalidArgument(errFolderNil)
	}
	if input.Folder.ID == "" {
		return nil, errors.InvalidArgument(errFolderIDReq)
	}
	if input.Folder.Kind == "" {
		return nil, errors.InvalidArgument(errFolderKind)
	}
	if input.Folder.Name == "" {
		return nil, errors.InvalidArgument(errFolderName)
	}

	key := r.buildKey(input.Folder.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check folder existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("folder %s already exists", input.Folder.ID).
			WithMeta("folder_id", input.Folder.ID)
	}

	folder := input.Folder.Clone()
	now := r.clock.Now()
	folder.CreatedAt = now
	folder.UpdatedAt = now

	folderJSON, err := json.Marshal(folder)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal folder")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, folderJSON, 0)
	pipe.SAdd(ctx, allFoldersSetKey, folder.ID)
	pipe.SAdd(ctx, r.buildKindKey(folder.Kind), folder.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store folder in Redis")
	}

	return &CreateOutput{
		Folder: folder,
	}, nil
}

// Get retrieves a folder record by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errFolderIDReq)
	}

	folderJSON, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errFolderAbsent).WithMeta("folder_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get folder from Redis")
	}

	var folder compendium.Folder
	if err := json.Unmarshal([]byte(folderJSON), &folder); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal folder")
	}

	return &GetOutput{
		Folder: &folder,
	}, nil
}

// List retrieves folder records, optionally filtered by kind
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	setKey := allFoldersSetKey
	if input.Kind != "" {
		setKey = r.buildKindKey(input.Kind)
	}

	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list folder IDs")
	}

	// Set order is unspecified; keep the listing stable.
	sort.Strings(ids)

	result := make([]*compendium.Folder, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Index entry with no record; skip it.
				continue
			}
			return nil, errors.Wrapf(err, "failed to load folder %s", id)
		}
		result = append(result, out.Folder)
	}

	return &ListOutput{
		Folders: result,
	}, nil
}

// Update replaces an existing folder record
func (r *redisRepository) Update(ctx context.Context, folder *compendium.Folder) error {
	if folder == nil {
		return errors.InvalidArgument(errFolderNil)
	}
	if folder.ID == "" {
		return errors.InvalidArgument(errFolderIDReq)
	}

	key := r.buildKey(folder.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to check folder existence")
	}
	if exists == 0 {
		return errors.NotFound(errFolderAbsent).WithMeta("folder_id", folder.ID)
	}

	updated := folder.Clone()
	updated.UpdatedAt = r.clock.Now()

	folderJSON, err := json.Marshal(updated)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal folder")
	}

	if err := r.client.Set(ctx, key, folderJSON, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to update folder in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a folder record
func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", folderKeyPrefix, id)
}

// buildKindKey creates the Redis key for the per-kind index set
func (r *redisRepository) buildKindKey(kind string) string {
	return fmt.Sprintf("%s%s", kindIndexPrefix, kind)
}
