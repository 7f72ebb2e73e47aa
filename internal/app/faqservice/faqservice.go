package faqservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/answerhub/faq-service/internal/cache"
	"github.com/answerhub/faq-service/internal/config"
	"github.com/answerhub/faq-service/internal/lib/jwt"
	"github.com/answerhub/faq-service/internal/migrations"
	authservice "github.com/answerhub/faq-service/internal/services/auth"
	faqsvc "github.com/answerhub/faq-service/internal/services/faq"
	"github.com/answerhub/faq-service/internal/storage/repository"
	"github.com/answerhub/faq-service/internal/translator"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}
	// Кеш переводов очищается целиком один раз при старте процесса.
	if err := cacheRedis.FlushAll(ctx); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	translatorClient := translator.NewClient(cfg.APIURL, cfg.RequestTimeout)
	translatorService := translator.NewService(translatorClient, cacheRedis, logger, cfg.Translation.MaxRetries)

	authService := authservice.NewAuthService(db, jwtMaker)
	faqService := faqsvc.NewFaqService(db, translatorService, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, faqService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
