package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/infrastructure/auth"
	"ispdesk/internal/infrastructure/config"
	"ispdesk/internal/infrastructure/ratelimit"
	"ispdesk/internal/infrastructure/router"
	"ispdesk/internal/infrastructure/scheduler"
	"ispdesk/internal/infrastructure/session"
	"ispdesk/internal/interfaces/http/middleware"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers of the API server, wires them together and releases them on
// Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Gate
	gateStore      gate.Store
	connector      gate.Connector
	jwtSvc         *auth.JWTService
	sealer         *auth.Sealer
	gateMiddleware *middleware.GateMiddleware
	connectLimiter ratelimit.RateLimiter

	// Background
	monitor          *router.Monitor
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every dependency of the API server. The database must
// already be open and migrated.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.gateStore = session.NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.Session.TTL())
		c.connectLimiter = ratelimit.NewRedisRateLimiter(client, cfg.Redis.KeyPrefix, ratelimit.PerMinute(cfg.Session.ConnectAttemptsPerMinute))
	} else {
		c.log.Warnw("redis disabled, gate sessions are kept in memory and lost on restart")
		c.gateStore = session.NewMemoryStore()
		c.connectLimiter = ratelimit.NewMemoryRateLimiter(ratelimit.PerMinute(cfg.Session.ConnectAttemptsPerMinute))
	}

	retrier := db.NewRetrier(cfg.Persistence.RetryAttempts, cfg.Persistence.RetryBase())
	c.repos = newRepositories(c.db, retrier, c.log)

	sealer, err := auth.NewSealer(cfg.Session.CredentialKey)
	if err != nil {
		return fmt.Errorf("failed to create credential sealer: %w", err)
	}
	c.sealer = sealer
	c.jwtSvc = auth.NewJWTService(cfg.Session.JWTSecret, cfg.Session.TTL())
	c.gateMiddleware = middleware.NewGateMiddleware(c.jwtSvc, c.gateStore, cfg.Session.Cookie.Name, c.log.Named("gate"))

	connector, err := router.NewConnector(cfg.Router, c.log.Named("router"))
	if err != nil {
		return fmt.Errorf("failed to create router connector: %w", err)
	}
	c.connector = connector

	c.monitor = router.NewMonitor(router.NewSampler(cfg.Router), c.log.Named("monitor"))
	schedulerManager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := schedulerManager.RegisterRouterMonitorJob(c.monitor, cfg.Router.MonitorInterval()); err != nil {
		return fmt.Errorf("failed to register router monitor job: %w", err)
	}
	c.schedulerManager = schedulerManager

	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}
