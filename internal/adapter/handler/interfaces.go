package handler

import (
	"context"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain/entity"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/presign"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type PresignService interface {
	PresignImage(ctx context.Context, input presign.ImageInput) (*presign.ImageResult, error)
	PresignCutout(ctx context.Context, fileID string) (*entity.SignedURLPair, error)
}
