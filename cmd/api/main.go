package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/audit"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/auth"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/cache"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-vacaciones/internal/db"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/logger"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/metrics"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/routes"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New(logger.Config{Env: "production"})
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
	loc := timezone.SetDefault(cfg.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// ======================================================
	// STORE + AUDIT
	// ======================================================
	ring := audit.NewRing(500)
	sinks := []audit.Sink{audit.NewLogSink(log), ring}

	store, extraSink, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open table store")
	}
	if extraSink != nil {
		sinks = append(sinks, extraSink)
	}
	store = tablestore.WithObserver(store, m)

	dispatcher := audit.NewDispatcher(log, sinks...)

	// ======================================================
	// CACHE
	// ======================================================
	var c cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL, "vacaciones:")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer rc.Close()
		c = rc
	}

	// ======================================================
	// AUTH
	// ======================================================
	creds, err := auth.NewCredentials(cfg.AdminPassword, cfg.UserPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare credentials")
	}
	if !creds.AdminEnabled() {
		log.Warn().Msg("ADMIN_PASSWORD not set, admin login disabled")
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Store:   store,
		Cache:   c,
		Log:     log,
		Metrics: m,
		Audit:   dispatcher,
		Ring:    ring,
		Creds:   creds,
		Tokens:  auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("store", cfg.StoreDriver).
			Str("timezone", loc.String()).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	dispatcher.Close()
}

// openStore escolhe o backend pelo STORE_DRIVER. O Postgres também recebe a auditoria.
func openStore(cfg *config.Config, log zerolog.Logger) (tablestore.Store, audit.Sink, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return tablestore.NewGorm(db), audit.NewGormSink(db), nil

	case config.DriverS3:
		client := tablestore.NewS3Client(tablestore.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PathStyle: cfg.S3.PathStyle,
		})
		return tablestore.NewS3(client, cfg.S3.Bucket, cfg.S3.Prefix), nil, nil

	case config.DriverXLSX:
		return tablestore.NewXLSX(cfg.XLSXPath), nil, nil
	}

	log.Warn().Msg("using in-memory table store, data is lost on restart")
	return tablestore.NewMemory(), nil, nil
}
