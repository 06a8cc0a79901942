package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaType string

type MediaCategory string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

const (
	CategoryGuestUpload MediaCategory = "guest-upload"
	CategoryOfficial    MediaCategory = "official"
	CategoryAdmin       MediaCategory = "admin"
)

// OfficialUploader имя загрузчика для официальных загрузок
const OfficialUploader = "Admin"

func (c MediaCategory) Valid() bool {
	switch c {
	case CategoryGuestUpload, CategoryOfficial, CategoryAdmin:
		return true
	}
	return false
}

// MediaTypeFor определяет вид медиа по MIME-типу.
func MediaTypeFor(mimeType string) MediaType {
	if strings.HasPrefix(mimeType, "image/") {
		return MediaTypeImage
	}
	return MediaTypeVideo
}

// Metadata производные данные файла. Duration для видео этим сервисом не вычисляется.
type Metadata struct {
	Width    *int     `json:"width,omitempty"`
	Height   *int     `json:"height,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
}

// Media представляет медиафайл свадьбы
type Media struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	WeddingSlug      string        `json:"weddingSlug" db:"wedding_slug"`
	UploaderName     string        `json:"uploaderName" db:"uploader_name"`
	Type             MediaType     `json:"type" db:"type"`
	URL              string        `json:"url" db:"url"`
	ThumbnailURL     *string       `json:"thumbnailUrl" db:"thumbnail_url"`
	Filename         string        `json:"filename" db:"filename"`
	OriginalFilename string        `json:"originalName" db:"original_name"`
	Size             int64         `json:"size" db:"size"`
	MimeType         string        `json:"mimeType" db:"mime_type"`
	Category         MediaCategory `json:"category" db:"category"`
	IsApproved       bool          `json:"isApproved" db:"is_approved"`
	UploadedAt       time.Time     `json:"uploadedAt" db:"uploaded_at"`
	Metadata         Metadata      `json:"metadata" db:"metadata"`
}

// MediaFilter фильтр выборки медиа тенанта. Category "" или "all" означает без фильтра,
// IsApproved nil означает все записи.
type MediaFilter struct {
	Category   string
	IsApproved *bool
}

// Value реализует интерфейс driver.Valuer для сериализации Metadata в JSONB
func (m Metadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan реализует интерфейс sql.Scanner для десериализации JSONB в Metadata
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}

	return fmt.Errorf("metadata: unsupported scan type %T", value)
}

// Validate проверяет корректность записи перед сохранением
func (m *Media) Validate() error {
	var validationErrors []string

	if m.WeddingSlug == "" {
		validationErrors = append(validationErrors, "wedding slug is required")
	}
	if strings.TrimSpace(m.UploaderName) == "" {
		validationErrors = append(validationErrors, "uploader name is required")
	}
	if m.URL == "" {
		validationErrors = append(validationErrors, "url is required")
	}
	if m.Filename == "" {
		validationErrors = append(validationErrors, "filename is required")
	}
	if m.OriginalFilename == "" {
		validationErrors = append(validationErrors, "original filename is required")
	}
	if len(m.OriginalFilename) > 255 {
		validationErrors = append(validationErrors, "original filename must be 255 characters or less")
	}
	if m.Size <= 0 {
		validationErrors = append(validationErrors, "file size must be positive")
	}
	if m.MimeType == "" {
		validationErrors = append(validationErrors, "mime type is required")
	}

	switch m.Type {
	case MediaTypeImage, MediaTypeVideo:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid media type '%s', must be one of: [image video]", m.Type))
	}

	if !m.Category.Valid() {
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid category '%s', must be one of: [guest-upload official admin]", m.Category))
	}

	if len(validationErrors) > 0 {
		return &MediaValidationError{
			Errors: validationErrors,
		}
	}

	return nil
}

// MediaValidationError кастомный тип ошибки для валидации
type MediaValidationError struct {
	Errors []string
}

func (e *MediaValidationError) Error() string {
	return fmt.Sprintf("media validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsMediaValidationError проверяет, является ли ошибка ошибкой валидации
func IsMediaValidationError(err error) bool {
	_, ok := err.(*MediaValidationError)
	return ok
}
