package response

import (
	"time"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain/entity"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/presign"
)

type PresignImageResponse struct {
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	Key       string    `json:"key"`
	FileID    string    `json:"fileId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PresignCutoutResponse struct {
	UploadURL string    `json:"uploadUrl"`
	PublicURL string    `json:"publicUrl"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func PresignImageFromResult(r *presign.ImageResult) PresignImageResponse {
	return PresignImageResponse{
		UploadURL: r.UploadURL,
		PublicURL: r.PublicURL,
		Key:       r.Key,
		FileID:    r.FileID.String(),
		ExpiresAt: r.ExpiresAt,
	}
}

func PresignCutoutFromPair(p *entity.SignedURLPair) PresignCutoutResponse {
	return PresignCutoutResponse{
		UploadURL: p.UploadURL,
		PublicURL: p.PublicURL,
		Key:       p.Key,
		ExpiresAt: p.ExpiresAt,
	}
}
