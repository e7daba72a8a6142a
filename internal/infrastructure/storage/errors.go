package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain"
)

const (
	codeNoSuchCORSConfiguration = "NoSuchCORSConfiguration"
	codeInvalidRequest          = "InvalidRequest"

	// Substring of the B2 error returned while a bucket still carries
	// rules created through the native API.
	legacyCORSMessage = "B2 Native CORS rules"
)

func classifyCORSError(op string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case apiErr.ErrorCode() == codeNoSuchCORSConfiguration:
		return domain.ErrCORSNotConfigured
	case apiErr.ErrorCode() == codeInvalidRequest && strings.Contains(apiErr.ErrorMessage(), legacyCORSMessage):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrLegacyCORSRules, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
