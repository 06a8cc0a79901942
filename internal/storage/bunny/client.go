// Package bunny HTTP-клиент к CDN-хранилищу в стиле Bunny Storage API.
// Объекты лежат по пути <storage_url>/<slug>/<category>/<name>, запросы
// подписываются статическим заголовком AccessKey, публичный URL строится от cdn_base_url.
package bunny

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wedding_service/internal/lib/apperr"
	"wedding_service/internal/lib/logger/sl"
)

// DefaultTimeout бюджет на один сетевой вызов к хранилищу
const DefaultTimeout = 30 * time.Second

const accessKeyHeader = "AccessKey"

type Config struct {
	StorageURL string
	AccessKey  string
	CDNBaseURL string
}

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	storageURL string
	accessKey  string
	cdnBaseURL string
}

type Option func(*Client)

// WithHTTPClient подменяет HTTP-клиент (используется в тестах).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(log *slog.Logger, cfg Config, opts ...Option) (*Client, error) {
	const op = "storage.bunny.New"

	if cfg.StorageURL == "" || cfg.AccessKey == "" || cfg.CDNBaseURL == "" {
		return nil, fmt.Errorf("%s: %w", op,
			apperr.New(apperr.KindStoreConfig, "missing blob store configuration: storage_url, access_key and cdn_base_url are required"))
	}

	c := &Client{
		log:        log.With(slog.String("component", "bunny_client")),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		storageURL: normalizeURL(cfg.StorageURL),
		accessKey:  cfg.AccessKey,
		cdnBaseURL: normalizeURL(cfg.CDNBaseURL),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Put загружает буфер под именем name в пространство slug/category и возвращает CDN URL.
func (c *Client) Put(ctx context.Context, data []byte, name, slug, category string) (string, error) {
	const op = "storage.bunny.Put"

	objectPath := objectPath(slug, category, name)

	log := c.log.With(
		slog.String("op", op),
		slog.String("path", objectPath),
		slog.Int("size", len(data)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.storageURL+"/"+objectPath, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, apperr.Wrap(apperr.KindStore, "failed to build upload request", err))
	}
	req.Header.Set(accessKeyHeader, c.accessKey)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = int64(len(data))

	log.Debug("uploading object")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("upload request failed", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, mapTransportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error("unexpected upload status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return "", fmt.Errorf("%s: %w", op, mapStatus(resp.StatusCode, string(body)))
	}

	cdnURL := c.cdnBaseURL + "/" + objectPath

	log.Info("object uploaded", slog.String("url", cdnURL))

	return cdnURL, nil
}

// Delete удаляет объект. Ошибки не пробрасываются: удаление из хранилища
// best-effort, результат сообщается флагом.
func (c *Client) Delete(ctx context.Context, name, slug, category string) bool {
	const op = "storage.bunny.Delete"

	objectPath := objectPath(slug, category, name)

	log := c.log.With(
		slog.String("op", op),
		slog.String("path", objectPath),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.storageURL+"/"+objectPath, nil)
	if err != nil {
		log.Error("failed to build delete request", sl.Err(err))
		return false
	}
	req.Header.Set(accessKeyHeader, c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("delete request failed", sl.Err(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("unexpected delete status", slog.Int("status", resp.StatusCode))
		return false
	}

	log.Info("object deleted")

	return true
}

func mapStatus(status int, body string) error {
	switch status {
	case http.StatusUnauthorized:
		return apperr.New(apperr.KindStoreAuth,
			"blob store authentication failed, check access key and storage zone permissions")
	case http.StatusNotFound:
		return apperr.New(apperr.KindStoreConfig,
			"blob store zone not found, check storage zone name")
	}

	msg := fmt.Sprintf("blob store upload failed: unexpected response status %d", status)
	if body = strings.TrimSpace(body); body != "" {
		msg += ": " + body
	}

	return apperr.New(apperr.KindStore, msg)
}

func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperr.Wrap(apperr.KindStoreTimeout,
			"blob store upload timeout, the file might be too large or network is slow", err)
	}

	return apperr.Wrap(apperr.KindStore, "blob store upload failed", err)
}

func objectPath(slug, category, name string) string {
	return url.PathEscape(slug) + "/" + url.PathEscape(category) + "/" + url.PathEscape(name)
}

// normalizeURL убирает trailing slash из URL.
func normalizeURL(rawURL string) string {
	return strings.TrimRight(rawURL, "/")
}
