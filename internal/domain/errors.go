package domain

import "errors"

var (
	ErrInvalidFilename   = errors.New("invalid filename")
	ErrInvalidFileID     = errors.New("invalid file id")
	ErrFileNotFound      = errors.New("file not found")
	ErrPresignFailed     = errors.New("presign failed")
	ErrCORSNotConfigured = errors.New("bucket has no cors configuration")
	ErrLegacyCORSRules   = errors.New("bucket has provider-native cors rules")
)
