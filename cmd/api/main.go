package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/api"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
	"github.com/PVL06/OC-P12-Epic/internal/infrastructure/audit"
	"github.com/PVL06/OC-P12-Epic/internal/infrastructure/config"
	mongodb "github.com/PVL06/OC-P12-Epic/internal/infrastructure/db/mongo"
	redisinfra "github.com/PVL06/OC-P12-Epic/internal/infrastructure/db/redis"
	"github.com/PVL06/OC-P12-Epic/internal/pkg/password"
	"github.com/PVL06/OC-P12-Epic/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index provisioning failed")
	}
	if err := bootstrapAdmin(ctx, mongodb.NewCollaboratorRepository(db), cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// The login limiter and its readiness check degrade gracefully when
	// redis is unreachable.
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		rdb = nil
	}

	trail := audit.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	trail.Start(ctx)

	e := api.NewRouter(db, rdb, cfg.JWTSecret, trail, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// bootstrapAdmin seeds the first management collaborator from the USER_*
// environment variables when the collection is empty; without it no one can
// log in to create the others.
func bootstrapAdmin(ctx context.Context, repo *mongodb.CollaboratorRepository, admin config.AdminConfig, log zerolog.Logger) error {
	existing, err := repo.List(ctx, ports.CollaboratorFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	if admin.Email == "" || admin.Password == "" {
		log.Warn().Msg("no collaborators exist and no USER_* bootstrap is configured")
		return nil
	}

	hash, err := password.Hash(admin.Password)
	if err != nil {
		return err
	}

	created, err := repo.Create(ctx, &domain.Collaborator{
		Name:         admin.Name,
		Email:        admin.Email,
		Phone:        admin.Phone,
		PasswordHash: hash,
		Role:         domain.RoleManagement,
	})
	if err != nil {
		return err
	}

	log.Info().Int64("id", created.ID).Str("email", created.Email).Msg("bootstrap management collaborator created")
	return nil
}
