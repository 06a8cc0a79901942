package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "wedding_service/internal/middleware"
	services "wedding_service/internal/services/media_service"
	httprouters "wedding_service/internal/transport/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// bodyLimit запас сверх MaxUploadSize на поля multipart-формы
const bodyLimit = "12M"

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

type Options struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// StaticDir если задан, отдается по /uploads (локальное хранилище медиа)
	StaticDir string
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = httprouters.NewValidator()
	e.HTTPErrorHandler = httprouters.HTTPErrorHandler(log)

	e.Server.ReadTimeout = opts.ReadTimeout
	e.Server.WriteTimeout = opts.WriteTimeout

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			httprouters.HeaderAPIKey,
			httprouters.HeaderAdminSecret,
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(appmw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)

			return nil
		},
	}))

	if opts.StaticDir != "" {
		e.Static("/uploads", opts.StaticDir)
	}

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    opts.Host,
		port:    opts.Port,
	}
}

// Echo нужен тестам и для подключения маршрутов.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info("starting http server", slog.String("op", op), slog.String("port", s.port))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.host, s.port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":        "ok",
			"maxUploadSize": services.MaxUploadSize,
			"time":          time.Now().UTC(),
		})
	})

	s.e.GET("/metrics", echoprometheus.NewHandler())

	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.routers.Register(s.e)
}
