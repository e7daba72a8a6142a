package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/domain"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/usecase/presign"
)

type PresignHandler struct {
	presignSvc PresignService
}

func NewPresignHandler(presignSvc PresignService) *PresignHandler {
	return &PresignHandler{presignSvc: presignSvc}
}

// PresignImage godoc
//
//	@Summary		Sign an image upload
//	@Description	Issue a new file id and a pair of signed URLs (PUT and GET) for images/<fileId>.<ext>
//	@Tags			presign
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.PresignImageRequest	true	"Original filename and optional content type"
//	@Success		200		{object}	response.PresignImageResponse
//	@Failure		400		{object}	httputil.ErrorResponse	"Invalid body or filename without extension"
//	@Failure		429		{object}	httputil.ErrorResponse
//	@Failure		500		{object}	httputil.ErrorResponse	"Signing failed"
//	@Router			/api/presign-image [post]
func (h *PresignHandler) PresignImage(c *gin.Context) {
	var req request.PresignImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.presignSvc.PresignImage(c.Request.Context(), presign.ImageInput{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	httputil.OK(c, response.PresignImageFromResult(result))
}

// PresignCutout godoc
//
//	@Summary		Sign a cutout upload
//	@Description	Issue signed URLs for the PNG cutout of a previously presigned image
//	@Tags			presign
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.PresignCutoutRequest	true	"File id returned by presign-image"
//	@Success		200		{object}	response.PresignCutoutResponse
//	@Failure		400		{object}	httputil.ErrorResponse	"Invalid body or file id"
//	@Failure		404		{object}	httputil.ErrorResponse	"Unknown file id"
//	@Failure		429		{object}	httputil.ErrorResponse
//	@Failure		500		{object}	httputil.ErrorResponse	"Signing failed"
//	@Router			/api/presign-cutout [post]
func (h *PresignHandler) PresignCutout(c *gin.Context) {
	var req request.PresignCutoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	pair, err := h.presignSvc.PresignCutout(c.Request.Context(), req.FileID)
	if err != nil {
		h.fail(c, err)
		return
	}

	httputil.OK(c, response.PresignCutoutFromPair(pair))
}

// Health godoc
//
//	@Summary	Liveness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	response.HealthResponse
//	@Router		/health [get]
func Health(c *gin.Context) {
	httputil.OK(c, response.HealthResponse{Status: "ok"})
}

func (h *PresignHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	httputil.HandleError(c, toAppError(err))
}

func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrInvalidFilename):
		return apperror.BadRequest("INVALID_FILENAME", "filename must end with a file extension")
	case errors.Is(err, domain.ErrInvalidFileID):
		return apperror.BadRequest("INVALID_FILE_ID", "fileId must not contain path separators or '..'")
	case errors.Is(err, domain.ErrFileNotFound):
		return apperror.NotFound("FILE_NOT_FOUND", "file id was not issued by this service or has expired")
	case errors.Is(err, domain.ErrPresignFailed):
		return apperror.Upstream("PRESIGN_FAILED", err)
	default:
		return apperror.Internal(err)
	}
}
