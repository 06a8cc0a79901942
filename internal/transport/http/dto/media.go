package dto

import (
	"wedding_service/internal/domain/models"
)

// MediaUploadInput входные данные загрузки после разбора multipart-формы.
type MediaUploadInput struct {
	Slug             string
	Data             []byte
	OriginalFilename string
	MimeType         string
	UploaderName     string
	Category         models.MediaCategory
}

type ModerateMediaRequest struct {
	IsApproved *bool `json:"isApproved" validate:"required"`
}

// PublicMediaQuery флаг одобрения не принимается: публичная выдача всегда только одобренные.
type PublicMediaQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=all guest-upload official admin"`
}

type ListMediaQuery struct {
	Category   string `query:"category" validate:"omitempty,oneof=all guest-upload official admin"`
	IsApproved string `query:"isApproved" validate:"omitempty,oneof=true false"`
}

type MediaListResponse struct {
	Media []models.Media `json:"media"`
	Count int            `json:"count"`
}
