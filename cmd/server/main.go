// Package main implements the entry point of the note service.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteful/internal/adapters/cache"
	adapterhttp "noteful/internal/adapters/http"
	"noteful/internal/adapters/postgres"
	"noteful/internal/adapters/services"
	"noteful/internal/app"
	"noteful/internal/config"
	"noteful/internal/db"
	"noteful/pkg/logger"
	"noteful/pkg/shutdown"
)

// Environment variables consulted before configuration is loaded.
const (
	EnvLoggerMode  = "NOTEFUL_LOGGER_MODE"
	EnvLoggerLevel = "NOTEFUL_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitCache            = "failed to initialize cache"
	ErrStartHTTP            = "failed to start HTTP server"
)

// Ignored sync errors on std streams.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "note service started"
	LogServiceShutdownDone = "note service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres, "migrations")
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		userRepo := repoFactory.UserRepository()
		noteRepo := repoFactory.NoteRepository()
		folderRepo := repoFactory.FolderRepository()
		tagRepo := repoFactory.TagRepository()

		log.Info(ctx, LogInitServices)
		passwordService := services.NewBcrypt(cfg.JWT.BCryptCost)
		tokenService := services.NewJWT(&cfg.JWT)

		noteCache, err := cache.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrInitCache, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitUseCases)
		userUseCase := app.NewUserUseCase(userRepo, passwordService)
		noteUseCase := app.NewNoteUseCase(noteRepo, folderRepo, tagRepo, noteCache)
		folderUseCase := app.NewFolderUseCase(folderRepo, noteCache)
		tagUseCase := app.NewTagUseCase(tagRepo, noteCache)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		adapterhttp.SetupRouter(fiberApp, userUseCase, noteUseCase, folderUseCase, tagUseCase, tokenService)

		go func() {
			log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTP, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			func(shutdownCtx context.Context) error {
				log.Info(shutdownCtx, LogStoppingHTTP)
				if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
					return fmt.Errorf("%s: %w", LogStoppingHTTP, err)
				}
				return nil
			},
			func(shutdownCtx context.Context) error {
				log.Info(shutdownCtx, LogClosingCache)
				if err := noteCache.Close(); err != nil {
					return fmt.Errorf("%s: %w", LogClosingCache, err)
				}
				return nil
			},
			func(shutdownCtx context.Context) error {
				log.Info(shutdownCtx, LogClosingDB)
				database.Close(shutdownCtx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
