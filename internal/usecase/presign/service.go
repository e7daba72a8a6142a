package presign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain/entity"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
)

const (
	KindImage  = "image"
	KindCutout = "cutout"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type Config struct {
	Expiry time.Duration
	// RequireKnownFileID rejects cutout requests whose id was not issued by
	// PresignImage within the registry TTL. Needs a registry.
	RequireKnownFileID bool
}

type Service struct {
	signer   storage.URLSigner
	registry storage.FileRegistry
	cfg      Config
	logger   *zap.Logger
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewService wires the signer; registry and metrics may be nil.
func NewService(
	signer storage.URLSigner,
	registry storage.FileRegistry,
	cfg Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		signer:   signer,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

type ImageInput struct {
	Filename    string
	ContentType string
}

type ImageResult struct {
	entity.SignedURLPair
	FileID uuid.UUID
}

func (s *Service) PresignImage(ctx context.Context, input ImageInput) (*ImageResult, error) {
	ext, err := entity.FileExtension(input.Filename)
	if err != nil {
		s.metrics.ObservePresign(KindImage, outcomeRejected)
		return nil, err
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = entity.DefaultImageContentType
	}

	fileID := uuid.New()
	pair, err := s.sign(ctx, entity.ImageKey(fileID, ext), contentType)
	if err != nil {
		s.metrics.ObservePresign(KindImage, outcomeFailed)
		return nil, err
	}

	if s.registry != nil {
		if err := s.registry.Register(ctx, fileID.String()); err != nil {
			s.logger.Warn("file registry write failed", zap.String("file_id", fileID.String()), zap.Error(err))
		}
	}

	s.metrics.ObservePresign(KindImage, outcomeOK)
	return &ImageResult{SignedURLPair: *pair, FileID: fileID}, nil
}

func (s *Service) PresignCutout(ctx context.Context, fileID string) (*entity.SignedURLPair, error) {
	if err := entity.ValidateFileID(fileID); err != nil {
		s.metrics.ObservePresign(KindCutout, outcomeRejected)
		return nil, err
	}

	if s.cfg.RequireKnownFileID && s.registry != nil {
		known, err := s.registry.Exists(ctx, fileID)
		if err != nil {
			s.metrics.ObservePresign(KindCutout, outcomeFailed)
			return nil, fmt.Errorf("checking file registry: %w", err)
		}
		if !known {
			s.metrics.ObservePresign(KindCutout, outcomeRejected)
			return nil, domain.ErrFileNotFound
		}
	}

	pair, err := s.sign(ctx, entity.CutoutKey(fileID), entity.CutoutContentType)
	if err != nil {
		s.metrics.ObservePresign(KindCutout, outcomeFailed)
		return nil, err
	}

	s.metrics.ObservePresign(KindCutout, outcomeOK)
	return pair, nil
}

func (s *Service) sign(ctx context.Context, key, contentType string) (*entity.SignedURLPair, error) {
	issuedAt := s.now()

	uploadURL, err := s.signer.PresignPut(ctx, key, contentType, s.cfg.Expiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPresignFailed, err)
	}

	publicURL, err := s.signer.PresignGet(ctx, key, s.cfg.Expiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPresignFailed, err)
	}

	return &entity.SignedURLPair{
		UploadURL: uploadURL,
		PublicURL: publicURL,
		Key:       key,
		ExpiresAt: issuedAt.Add(s.cfg.Expiry).UTC(),
	}, nil
}
