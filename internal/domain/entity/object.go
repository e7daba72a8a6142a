package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain"
)

const (
	ImagePrefix  = "images/"
	CutoutPrefix = "cutouts/"

	DefaultImageContentType = "image/jpeg"
	CutoutContentType       = "image/png"

	maxFileIDLength = 128
)

// SignedURLPair is a write URL and a read URL signed for the same object key.
type SignedURLPair struct {
	UploadURL string
	PublicURL string
	Key       string
	ExpiresAt time.Time
}

func ImageKey(fileID uuid.UUID, ext string) string {
	return fmt.Sprintf("%s%s.%s", ImagePrefix, fileID, ext)
}

func CutoutKey(fileID string) string {
	return fmt.Sprintf("%s%s_cutout.png", CutoutPrefix, fileID)
}

// FileExtension returns the part of filename after its last dot.
func FileExtension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", domain.ErrInvalidFilename
	}

	ext := filename[idx+1:]
	if strings.ContainsAny(ext, `/\`) {
		return "", domain.ErrInvalidFilename
	}

	return ext, nil
}

// ValidateFileID rejects ids that would escape the cutouts/ prefix.
func ValidateFileID(fileID string) error {
	if fileID == "" || len(fileID) > maxFileIDLength {
		return domain.ErrInvalidFileID
	}
	if strings.ContainsAny(fileID, `/\`) || strings.Contains(fileID, "..") {
		return domain.ErrInvalidFileID
	}
	return nil
}
