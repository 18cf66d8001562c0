package di

import (
	"context"

	"gorm.io/gorm"

	"taskboard/application/serviceimpl"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	natspkg "taskboard/infrastructure/nats"
	"taskboard/infrastructure/postgres"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/infrastructure/websocket"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
	"taskboard/pkg/scheduler"
)

type Container struct {
	Config *config.Config

	// Infrastructure. Redis and NATS are optional; nil when unconfigured.
	DB             *gorm.DB
	RedisClient    *redispkg.Client
	NATSClient     *natspkg.Client
	NATSSubscriber *natspkg.Subscriber
	Hub            *websocket.Hub
	Scheduler      *scheduler.Scheduler

	// Ports
	BoardCache     ports.BoardListCache
	EventPublisher ports.EventPublisher

	// Repositories
	UserRepository   repositories.UserRepository
	BoardRepository  repositories.BoardRepository
	ColumnRepository repositories.ColumnRepository
	TaskRepository   repositories.TaskRepository

	// Services
	BoardService  services.BoardService
	ColumnService services.ColumnService
	TaskService   services.TaskService
	UserService   services.UserService

	Sweeper *serviceimpl.OrphanSweeper
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initBroadcaster(); err != nil {
		return err
	}

	if err := c.initSweeper(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "db", c.Config.Database.DBName)

	// Redis is an optional read cache; run without it when unconfigured.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, board-list cache disabled", "error", err)
		} else {
			c.RedisClient = redisClient
			c.BoardCache = redispkg.NewBoardCache(redisClient)
		}
	}

	// NATS carries board events to websocket watchers; optional as well.
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS unavailable, board events disabled", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = natspkg.NewPublisher(natsClient)
		}
	}

	c.Hub = websocket.NewHub()

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.BoardRepository = postgres.NewBoardRepository(c.DB)
	c.ColumnRepository = postgres.NewColumnRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	owners := serviceimpl.NewOwnershipResolver(
		c.BoardRepository,
		c.ColumnRepository,
		c.TaskRepository,
	)

	c.BoardService = serviceimpl.NewBoardService(c.BoardRepository, c.BoardCache, c.EventPublisher)
	c.ColumnService = serviceimpl.NewColumnService(c.ColumnRepository, c.BoardRepository, owners, c.EventPublisher)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository, owners, c.EventPublisher)
	c.UserService = serviceimpl.NewUserService(c.UserRepository)

	logger.Info("Services initialized")
}

func (c *Container) initBroadcaster() error {
	if c.NATSClient == nil {
		return nil
	}

	c.NATSSubscriber = natspkg.NewSubscriber(c.NATSClient)
	return c.NATSSubscriber.Start(c.Hub.Broadcast)
}

func (c *Container) initSweeper() error {
	c.Sweeper = serviceimpl.NewOrphanSweeper(c.ColumnRepository, c.TaskRepository)

	if !c.Config.Sweeper.Enabled {
		return nil
	}

	c.Scheduler = scheduler.New()
	if err := c.Scheduler.AddCronJob("orphan-sweep", c.Config.Sweeper.Cron, func() {
		c.Sweeper.Sweep(context.Background())
	}); err != nil {
		return err
	}
	c.Scheduler.Start()

	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		BoardService:  c.BoardService,
		ColumnService: c.ColumnService,
		TaskService:   c.TaskService,
		UserService:   c.UserService,
	}
}

func (c *Container) Cleanup() error {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.NATSSubscriber != nil {
		c.NATSSubscriber.Stop()
	}
	if c.NATSClient != nil {
		c.NATSClient.Close()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
