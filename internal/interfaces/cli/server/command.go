package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ispdesk/internal/infrastructure/config"
	"ispdesk/internal/infrastructure/database"
	"ispdesk/internal/infrastructure/migration"
	httpRouter "ispdesk/internal/interfaces/http"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/goroutine"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the ispdesk API server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load("", configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"router_mode", cfg.Router.Mode,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	gormDB, err := database.Open(cmd.Context(), &cfg.Database, log.Named("database"))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := handleMigrations(cmd.Context(), gormDB, cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(gormDB, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	container.SetupRoutes()
	container.StartBackground()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.GetEngine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serveErr := goroutine.Go(log, "http-server", func() error {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case err := <-serveErr:
		if err != nil {
			log.Errorw("server failed", "error", err)
			_ = container.Shutdown()
			return fmt.Errorf("failed to start server: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Drain HTTP first so no request observes a stopped scheduler or a
	// closed store.
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	if err := container.Shutdown(); err != nil {
		log.Errorw("background shutdown incomplete", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, gormDB *gorm.DB, cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck && !autoMigrate {
		log.Infow("skipping migration check")
		return nil
	}

	manager, err := migration.NewManager(gormDB, cfg.Database.Driver, log)
	if err != nil {
		return err
	}

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		return manager.Up(ctx)
	}

	statuses, err := manager.Status(ctx)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}

	pending := 0
	for _, s := range statuses {
		if !s.Applied {
			pending++
		}
	}
	if pending > 0 {
		log.Warnw("database has pending migrations, run `ispdesk migrate up`", "pending", pending)
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
