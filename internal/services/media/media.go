// Package media нормализует загружаемые изображения: уменьшает слишком широкие кадры,
// перекодирует в JPEG и строит квадратную миниатюру. Видео проходит без изменений.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/lib/apperr"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	MaxWidth         = 1920
	MainQuality      = 85
	ThumbnailSize    = 300
	ThumbnailQuality = 80

	// maxPixels защищает от decompression bomb: 10 MiB файла хватает на огромный PNG.
	maxPixels = 100_000_000
)

// Result итог преобразования. Thumbnail nil для не-изображений.
type Result struct {
	Main      []byte
	Thumbnail []byte
	Metadata  models.Metadata
}

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform обрабатывает буфер согласно объявленному MIME-типу.
// Metadata содержит исходные (до уменьшения) размеры.
func (t *Transformer) Transform(data []byte, mimeType string) (*Result, error) {
	const op = "media.Transformer.Transform"

	if !strings.HasPrefix(mimeType, "image/") {
		return &Result{Main: data}, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindTransform, "unsupported or corrupt image", err))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxPixels {
		return nil, fmt.Errorf("%s: %w", op,
			apperr.New(apperr.KindTransform, fmt.Sprintf("image dimensions %dx%d are not supported", cfg.Width, cfg.Height)))
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindTransform, "failed to decode image", err))
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	main := img
	if width > MaxWidth {
		main = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}

	mainBuf, err := encodeJPEG(main, MainQuality)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	thumb := imaging.Fill(img, ThumbnailSize, ThumbnailSize, imaging.Center, imaging.Lanczos)

	thumbBuf, err := encodeJPEG(thumb, ThumbnailQuality)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Result{
		Main:      mainBuf,
		Thumbnail: thumbBuf,
		Metadata: models.Metadata{
			Width:  &width,
			Height: &height,
		},
	}, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, apperr.Wrap(apperr.KindTransform, "failed to encode image", err)
	}

	return buf.Bytes(), nil
}
