package request

type PresignImageRequest struct {
	Filename    string `json:"filename" binding:"required,max=255" example:"holiday.jpg"`
	ContentType string `json:"contentType" binding:"omitempty,max=255" example:"image/jpeg"`
}

type PresignCutoutRequest struct {
	FileID string `json:"fileId" binding:"required,max=128" example:"3f1c5e2a-8d4b-4a8e-9b0c-1d2e3f4a5b6c"`
}
