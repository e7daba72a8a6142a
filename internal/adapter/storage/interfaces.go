package storage

import (
	"context"
	"time"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

type URLSigner interface {
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// BucketCORS reads and replaces the bucket's S3 API CORS configuration.
// GetCORSRules returns domain.ErrCORSNotConfigured when none exists; both
// methods wrap domain.ErrLegacyCORSRules when the provider refuses because
// native rules are present.
type BucketCORS interface {
	GetCORSRules(ctx context.Context) ([]entity.CORSRule, error)
	PutCORSRules(ctx context.Context, rules []entity.CORSRule) error
}

type FileRegistry interface {
	Register(ctx context.Context, fileID string) error
	Exists(ctx context.Context, fileID string) (bool, error)
}
