package http

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"wedding_service/internal/domain/models"
	"wedding_service/internal/lib/apperr"
	services "wedding_service/internal/services/media_service"
	"wedding_service/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

const mediaFormField = "media"

// UploadGuestMedia godoc
// @Summary Загрузка медиа гостем
// @Description Принимает фото или видео от гостя свадьбы. Изображения сжимаются, создается миниатюра 300x300.
// @Tags Медиа
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param media formData file true "Файл (JPEG, PNG, WebP, HEIC, MP4, MOV, AVI; макс. 10MB)"
// @Param uploaderName formData string true "Имя гостя"
// @Param category formData string false "Категория" Enums(guest-upload)
// @Success 201 {object} response.Response{data=models.Media} "Загруженный файл"
// @Failure 400 {object} response.ErrorResponse "Некорректные входные данные"
// @Failure 404 {object} response.ErrorResponse "Свадьба не найдена или истекла"
// @Failure 413 {object} response.ErrorResponse "Превышен максимальный размер файла"
// @Failure 502 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /weddings/{slug}/upload-media [post]
func (r *Routers) UploadGuestMedia(c echo.Context) error {
	const op = "http.routers.UploadGuestMedia"

	category := models.MediaCategory(c.FormValue("category"))
	if category == "" {
		category = models.CategoryGuestUpload
	}
	if category != models.CategoryGuestUpload {
		return badRequest(c, "guests may only upload to the guest-upload category")
	}

	return r.upload(c, op, category, c.FormValue("uploaderName"))
}

// UploadOfficialMedia godoc
// @Summary Загрузка официальных медиа
// @Description Загрузка от имени пары или фотографа. Публикуется сразу, имя загрузчика "Admin".
// @Tags Медиа
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param media formData file true "Файл (макс. 10MB)"
// @Param category formData string false "Категория" Enums(official, admin)
// @Success 201 {object} response.Response{data=models.Media} "Загруженный файл"
// @Failure 400 {object} response.ErrorResponse "Некорректные входные данные"
// @Failure 401 {object} response.ErrorResponse "Неверный API-ключ"
// @Failure 403 {object} response.ErrorResponse "Ключ от другой свадьбы"
// @Failure 413 {object} response.ErrorResponse "Превышен максимальный размер файла"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/upload-official [post]
func (r *Routers) UploadOfficialMedia(c echo.Context) error {
	const op = "http.routers.UploadOfficialMedia"

	category := models.MediaCategory(c.FormValue("category"))
	if category == "" {
		category = models.CategoryOfficial
	}
	if category != models.CategoryOfficial && category != models.CategoryAdmin {
		return badRequest(c, "category must be one of: [official admin]")
	}

	return r.upload(c, op, category, models.OfficialUploader)
}

func (r *Routers) upload(c echo.Context, op string, category models.MediaCategory, uploader string) error {
	ac := access(c)

	log := r.log.With(
		slog.String("op", op),
		slog.String("slug", ac.Slug),
		slog.String("client_ip", c.RealIP()),
	)

	file, err := c.FormFile(mediaFormField)
	if err != nil {
		log.Warn("empty file in request", slog.String("error", err.Error()))
		return badRequest(c, "no file uploaded")
	}

	// размер проверяется до чтения файла, преобразования и выгрузки
	if file.Size > services.MaxUploadSize {
		return fail(c, log, apperr.New(apperr.KindPayloadTooLarge, "file too large, maximum size is 10MB"))
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, log, apperr.Wrap(apperr.KindBadRequest, "failed to read uploaded file", err))
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, services.MaxUploadSize+1))
	if err != nil {
		return fail(c, log, apperr.Wrap(apperr.KindBadRequest, "failed to read uploaded file", err))
	}

	mimeType := strings.ToLower(strings.TrimSpace(file.Header.Get(echo.HeaderContentType)))

	log.Debug("got file for upload",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
		slog.String("mime_type", mimeType),
	)

	media, err := r.MediaService.UploadMedia(c.Request().Context(), dto.MediaUploadInput{
		Slug:             ac.Slug,
		Data:             data,
		OriginalFilename: file.Filename,
		MimeType:         mimeType,
		UploaderName:     uploader,
		Category:         category,
	})
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusCreated, media)
}

// ListPublicMedia godoc
// @Summary Публичная галерея
// @Description Только одобренные файлы; параметр isApproved игнорируется.
// @Tags Медиа
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param category query string false "Категория" Enums(all, guest-upload, official, admin)
// @Success 200 {object} response.Response{data=dto.MediaListResponse}
// @Failure 404 {object} response.ErrorResponse "Свадьба не найдена или истекла"
// @Router /weddings/{slug}/media [get]
func (r *Routers) ListPublicMedia(c echo.Context) error {
	const op = "http.routers.ListPublicMedia"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var q dto.PublicMediaQuery
	if err := r.bindQuery(c, &q); err != nil {
		return fail(c, log, err)
	}

	list, err := r.MediaService.ListPublicMedia(c.Request().Context(), ac.Slug, q.Category)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, dto.MediaListResponse{Media: list, Count: len(list)})
}

// ListAllMedia godoc
// @Summary Все медиа, включая неодобренные
// @Tags Медиа
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param category query string false "Категория" Enums(all, guest-upload, official, admin)
// @Param isApproved query boolean false "Фильтр по одобрению"
// @Success 200 {object} response.Response{data=dto.MediaListResponse}
// @Failure 401 {object} response.ErrorResponse "Неверный API-ключ"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/media/all [get]
func (r *Routers) ListAllMedia(c echo.Context) error {
	const op = "http.routers.ListAllMedia"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	var q dto.ListMediaQuery
	if err := r.bindQuery(c, &q); err != nil {
		return fail(c, log, err)
	}

	filter := models.MediaFilter{Category: q.Category}
	if q.IsApproved != "" {
		approved := q.IsApproved == "true"
		filter.IsApproved = &approved
	}

	list, err := r.MediaService.ListAllMedia(c.Request().Context(), ac.Slug, filter)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, dto.MediaListResponse{Media: list, Count: len(list)})
}

// ModerateMedia godoc
// @Summary Модерация медиа
// @Description Одобряет или скрывает файл. Файл другой свадьбы дает 404.
// @Tags Медиа
// @Accept json
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param mediaId path string true "ID файла" format(uuid)
// @Param request body dto.ModerateMediaRequest true "Новое состояние"
// @Success 200 {object} response.Response{data=models.Media}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Файл не найден"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/media/{mediaId}/moderate [put]
func (r *Routers) ModerateMedia(c echo.Context) error {
	const op = "http.routers.ModerateMedia"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "mediaId")
	if err != nil {
		return fail(c, log, err)
	}

	var req dto.ModerateMediaRequest
	if err := bindValid(c, &req); err != nil {
		return fail(c, log, err)
	}

	media, err := r.MediaService.SetApproval(c.Request().Context(), ac.Slug, id, *req.IsApproved)
	if err != nil {
		return fail(c, log, err)
	}

	return success(c, http.StatusOK, media)
}

// DeleteMedia godoc
// @Summary Удаление медиа
// @Description Удаляет запись и файлы в хранилище (основной и миниатюру).
// @Tags Медиа
// @Produce json
// @Param slug path string true "Slug свадьбы"
// @Param mediaId path string true "ID файла" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse "Файл не найден"
// @Security ApiKeyAuth
// @Router /weddings/{slug}/media/{mediaId} [delete]
func (r *Routers) DeleteMedia(c echo.Context) error {
	const op = "http.routers.DeleteMedia"

	ac := access(c)
	log := r.log.With(slog.String("op", op), slog.String("slug", ac.Slug))

	id, err := pathUUID(c, "mediaId")
	if err != nil {
		return fail(c, log, err)
	}

	if err := r.MediaService.DeleteMedia(c.Request().Context(), ac.Slug, id); err != nil {
		return fail(c, log, err)
	}

	return message(c, "Media deleted successfully")
}

func (r *Routers) bindQuery(c echo.Context, q interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, q); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, "invalid query parameters", err)
	}
	if err := c.Validate(q); err != nil {
		return apperr.New(apperr.KindBadRequest, "validation failed: "+err.Error())
	}
	return nil
}
