package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
)

// LocalFileStorage хранилище медиа на локальном диске, для dev-окружения без CDN.
// Раскладка совпадает с CDN: <baseDir>/<slug>/<category>/<name>.
type LocalFileStorage struct {
	log     *slog.Logger
	baseDir string // Базовый каталог для хранения (например: "./uploads")
	baseURL string // Базовый URL для доступа к файлам (например: "http://localhost:8080/uploads")
}

func NewLocalFileStorage(log *slog.Logger, baseDir, baseURL string) (*LocalFileStorage, error) {
	// Создаем директорию, если она не существует
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, apperr.Wrap(apperr.KindStoreConfig, "failed to create storage directory", err)
	}

	return &LocalFileStorage{
		log:     log.With(slog.String("component", "local_file_storage")),
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put записывает буфер и возвращает публичный URL файла.
func (s *LocalFileStorage) Put(ctx context.Context, data []byte, name, slug, category string) (string, error) {
	const op = "storage.filestorage.Put"

	log := s.log.With(slog.String("op", op))

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindStoreTimeout, "upload cancelled", err))
	}

	rel, err := relativePath(slug, category, name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	filePath := filepath.Join(s.baseDir, rel)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		log.Error("failed to create directories", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindStore, "failed to create directories", err))
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		_ = os.Remove(filePath)
		log.Error("failed to write file", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindStore, "failed to write file", err))
	}

	log.Debug("file stored", slog.String("path", rel), slog.Int("size", len(data)))

	return s.baseURL + "/" + filepath.ToSlash(rel), nil
}

// Delete удаляет файл из хранилища
func (s *LocalFileStorage) Delete(ctx context.Context, name, slug, category string) bool {
	const op = "storage.filestorage.Delete"

	rel, err := relativePath(slug, category, name)
	if err != nil {
		return false
	}

	if err := os.Remove(filepath.Join(s.baseDir, rel)); err != nil {
		s.log.Warn("failed to delete file", slog.String("op", op), sl.Err(err))
		return false
	}

	return true
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, relativePath)
}

// BaseURL возвращает базовый URL для доступа к файлам
func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}

// relativePath не дает выйти за пределы baseDir через сегменты пути.
func relativePath(slug, category, name string) (string, error) {
	for _, part := range []string{slug, category, name} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", apperr.New(apperr.KindBadRequest, fmt.Sprintf("invalid path segment %q", part))
		}
	}

	return filepath.Join(slug, category, name), nil
}
