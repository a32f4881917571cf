package di

import (
	"fmt"
	"time"

	"taskflow/cmd/api/infrastructure"
	"taskflow/internal/adapter/cache"
	"taskflow/internal/adapter/db/postgres"
	ginhandler "taskflow/internal/adapter/gin/handler"
	"taskflow/internal/adapter/repository/cached"
	"taskflow/internal/config"
	"taskflow/internal/usecase/chat"
	"taskflow/internal/usecase/task"
	"taskflow/internal/usecase/user"
	redisclient "taskflow/pkg/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	TaskUC      task.Usecase
	ChatUC      chat.Usecase
	UserHandler *ginhandler.UserHandler
	TaskHandler *ginhandler.TaskHandler
	ChatHandler *ginhandler.ChatHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userDBRepo := postgres.NewUserRepoPG(db, l)
	taskRepo := postgres.NewTaskRepoPG(db, l)

	// Redis is optional; when disabled the user repository is used directly
	var rdb *redisclient.Client
	userRepo := user.Repository(userDBRepo)
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		userRepo = cached.NewUserRepository(userDBRepo, userCache, l)
	}

	userUC := user.New(userRepo, l)
	taskUC := task.New(taskRepo, userRepo, l)
	chatUC := chat.New(userRepo, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		UserUC:      userUC,
		TaskUC:      taskUC,
		ChatUC:      chatUC,
		UserHandler: ginhandler.NewUserHandler(userUC, l),
		TaskHandler: ginhandler.NewTaskHandler(taskUC, l),
		ChatHandler: ginhandler.NewChatHandler(chatUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
