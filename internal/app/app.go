package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"reminderTracker/internal/config"
	"reminderTracker/internal/handlers"
	"reminderTracker/internal/logger"
	"reminderTracker/internal/middleware"
	"reminderTracker/internal/repository/reminder/inmemory"
	"reminderTracker/internal/service"
	"reminderTracker/internal/tracing"

	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const serviceName = "reminders"

type App struct {
	config     *config.Config
	server     *http.Server
	handler    http.Handler
	repository service.ReminderRepository // интерфейс!
	service    handlers.Service
	tracer     *sdktrace.TracerProvider
	shutdowns  []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) (*App, error) {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return nil, fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	loc, err := a.config.Location()
	if err != nil {
		return nil, fmt.Errorf("часовой пояс: %w", err)
	}

	if a.config.Tracing.Enabled {
		a.tracer = tracing.NewProvider(serviceName, a.config.Tracing.SampleRatio)
		a.shutdowns = append(a.shutdowns, func() {
			ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
			defer cancel()
			if err := a.tracer.Shutdown(ctx); err != nil {
				logger.Error("Ошибка остановки трассировки", err)
			}
		})
	}

	a.repository = inmemory.NewReminderStorage(inmemory.WithUniqueIDs(a.config.Store.UniqueIDs))
	reminderService := service.NewReminderService(a.repository, service.WithLocation(loc))
	a.service = &reminderService

	a.handler = a.buildHandler(handlers.NewReminderHandler(a.service))

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.handler,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	logger.Info("Приложение инициализировано",
		zap.String("addr", a.server.Addr),
		zap.String("timezone", loc.String()),
		zap.Bool("unique_ids", a.config.Store.UniqueIDs),
		zap.Int("rate_limit_rpm", a.config.Server.RateLimit.RequestsPerMinute),
		zap.Bool("tracing", a.tracer != nil))

	return a, nil
}

func (a *App) buildHandler(h handlers.ReminderHandler) http.Handler {
	router := handlers.NewRouter(h,
		middleware.RequestID,
		middleware.Logging,
		middleware.Recover,
		cors.Handler(cors.Options{
			AllowedOrigins: a.config.Server.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "traceparent", "tracestate", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}),
		middleware.RateLimit(a.config.Server.RateLimit.RequestsPerMinute),
	)

	if a.tracer == nil {
		return router
	}
	return otelhttp.NewHandler(router, serviceName,
		otelhttp.WithTracerProvider(a.tracer),
		otelhttp.WithPropagators(tracing.Propagator()))
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Run работает до отмены ctx, затем плавно останавливает сервер
func (a *App) Run(ctx context.Context) error {
	if a.server == nil {
		return errors.New("приложение не инициализировано")
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http сервер: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Получен сигнал завершения")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("остановка http сервера: %w", err)
	}
	logger.Info("HTTP сервер остановлен")
	return nil
}

// хуки выполняются в обратном порядке
func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
