package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const fileKeyPrefix = "presign:file:"

// FileRegistry remembers image ids handed out by presign-image so a later
// cutout request can be checked against them.
type FileRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFileRegistry(client *redis.Client, ttl time.Duration) *FileRegistry {
	return &FileRegistry{client: client, ttl: ttl}
}

func (r *FileRegistry) Register(ctx context.Context, fileID string) error {
	if err := r.client.Set(ctx, fileKeyPrefix+fileID, time.Now().Unix(), r.ttl).Err(); err != nil {
		return fmt.Errorf("registering file %s: %w", fileID, err)
	}
	return nil
}

func (r *FileRegistry) Exists(ctx context.Context, fileID string) (bool, error) {
	n, err := r.client.Exists(ctx, fileKeyPrefix+fileID).Result()
	if err != nil {
		return false, fmt.Errorf("looking up file %s: %w", fileID, err)
	}
	return n > 0, nil
}
