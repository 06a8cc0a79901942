package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpapp "wedding_service/internal/app/http"
	"wedding_service/internal/config"
	"wedding_service/internal/events"
	"wedding_service/internal/lib/logger/sl"
	"wedding_service/internal/repository"
	"wedding_service/internal/services/auth"
	giftservice "wedding_service/internal/services/gift_service"
	guestservice "wedding_service/internal/services/guest_service"
	"wedding_service/internal/services/media"
	mediaservice "wedding_service/internal/services/media_service"
	timelineservice "wedding_service/internal/services/timeline_service"
	weddingservice "wedding_service/internal/services/wedding_service"
	"wedding_service/internal/storage/bunny"
	filestorage "wedding_service/internal/storage/filestorage"
	"wedding_service/internal/storage/postgresql"
	redisapp "wedding_service/internal/storage/redis"
	httprouters "wedding_service/internal/transport/http"
)

const startupTimeout = 15 * time.Second

type App struct {
	log        *slog.Logger
	HTTPServer *httpapp.Server
	storage    *postgresql.Storage
	redis      *redisapp.Client
}

// New собирает зависимости сервиса. Ошибка подключения к Postgres фатальна,
// недоступный Redis только отключает кэш тенантов.
func New(log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(store.Pool())
	recorder := events.NewLogRecorder(log)

	a := &App{log: log, storage: store}

	var tenantCache *repository.RedisTenantCache
	if cfg.Redis.RedisAddr != "" {
		client := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err := client.HealthCheck(ctx); err != nil {
			log.Warn("redis unavailable, tenant cache disabled", sl.Err(err))
			_ = client.Close()
		} else {
			a.redis = client
			tenantCache = repository.NewRedisTenantCache(client, cfg.Redis.TenantTTL)
		}
	}

	blobs, staticDir, err := newBlobStore(log, cfg.BlobStore)
	if err != nil {
		a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// интерфейсы получают nil без типа, если кэш выключен
	var authCache auth.TenantCache
	var weddingCache repository.TenantCache
	if tenantCache != nil {
		authCache = tenantCache
		weddingCache = tenantCache
	}

	authz := auth.New(log, repo.Wedding, authCache, cfg.AdminSecret, recorder)

	mediaService := mediaservice.NewMediaService(log, repo.Media, blobs, media.NewTransformer(), recorder)
	weddingService := weddingservice.NewWeddingService(log, weddingservice.Stores{
		Weddings: repo.Wedding,
		Guests:   repo.Guest,
		Timeline: repo.Timeline,
		Media:    repo.Media,
		Gifts:    repo.Gift,
	}, weddingCache, recorder, cfg.SiteDomain)
	guestService := guestservice.NewGuestService(log, repo.Guest)
	timelineService := timelineservice.NewTimelineService(log, repo.Timeline)
	giftService := giftservice.NewGiftService(log, repo.Gift)

	routers := httprouters.NewRouter(log, authz, mediaService, weddingService, guestService, timelineService, giftService)

	a.HTTPServer = httpapp.New(log, httpapp.Options{
		Host:         cfg.HTTP.Host,
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		StaticDir:    staticDir,
	}, routers)

	return a, nil
}

func newBlobStore(log *slog.Logger, cfg config.BlobStoreConfig) (mediaservice.BlobStore, string, error) {
	switch cfg.Driver {
	case config.BlobDriverLocal:
		fs, err := filestorage.NewLocalFileStorage(log, cfg.BaseDir, cfg.CDNBaseURL)
		if err != nil {
			return nil, "", err
		}
		return fs, cfg.BaseDir, nil
	default:
		client, err := bunny.New(log, bunny.Config{
			StorageURL: cfg.StorageURL,
			AccessKey:  cfg.AccessKey,
			CDNBaseURL: cfg.CDNBaseURL,
		})
		if err != nil {
			return nil, "", err
		}
		return client, "", nil
	}
}

// Stop освобождает соединения. HTTP-сервер останавливается отдельно.
func (a *App) Stop() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis", sl.Err(err))
		}
	}
	a.storage.Stop()
}
