package main

import (
	"context"
	"fmt"
	"time"

	"zenflow/pkg/translator"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	dbadapter "zenflow/internal/adapter/db"
	httpadapter "zenflow/internal/adapter/http"
	"zenflow/internal/adapter/http/handlers"
	httpmiddleware "zenflow/internal/adapter/http/middleware"
	"zenflow/internal/adapter/postgres"
	"zenflow/internal/adapter/redisstore"
	"zenflow/internal/adapter/repository"
	"zenflow/internal/adapter/store"
	"zenflow/internal/adapter/token"
	appservice "zenflow/internal/app/service"
	"zenflow/internal/config"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
)

const startupTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	var limiter *redis.Client
	if cfg.RedisAddr != "" {
		limiter, err = redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("rate limiter disabled, redis unreachable", zap.Error(err))
			limiter = nil
		} else {
			defer func() {
				if err := limiter.Close(); err != nil {
					logger.Warn("failed to close redis client", zap.Error(err))
				}
			}()
		}
	}

	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, tokens are signed with the development secret",
			zap.String("driver", cfg.StoreDriver),
		)
	}

	userRepository := repository.NewUserRepository(kv)
	taskRepository := repository.NewTaskRepository(kv)
	identityService := appservice.NewIdentityService(
		userRepository,
		repository.NewSessionCache(kv),
		token.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL),
		cfg.BcryptCost,
	)

	if cfg.SeedUsers {
		if err := appservice.SeedUsers(ctx, identityService, seedUsers(cfg)); err != nil {
			logger.Fatal("failed to seed users", zap.Error(err))
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.Prometheus())
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(kv, cfg.StoreDriver),
		Auth:   handlers.NewAuthHandler(identityService),
		Tasks:  handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, userRepository)),
		Focus:  handlers.NewFocusHandler(appservice.NewFocusService(taskRepository)),
		Admin:  handlers.NewAdminHandler(appservice.NewAdminService(userRepository, taskRepository)),
	}, httpadapter.Options{
		Identity:         identityService,
		RateLimiter:      limiter,
		AuthRateLimit:    cfg.AuthRateLimit,
		AuthRateWindow:   cfg.AuthRateWindow,
		SimulatedLatency: cfg.SimulatedLatency,
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config) (ports.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return store.NewMemoryStore(), func() {}, nil

	case config.StoreDriverMySQL:
		db, err := dbadapter.ConnectDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := dbadapter.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return dbadapter.NewKVStore(db), func() {
			if err := db.Close(); err != nil {
				zap.L().Warn("failed to close mysql connection", zap.Error(err))
			}
		}, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewKVStore(pool), pool.Close, nil

	case config.StoreDriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewKVStore(client), func() {
			if err := client.Close(); err != nil {
				zap.L().Warn("failed to close redis store client", zap.Error(err))
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func seedUsers(cfg *config.Config) []appservice.SeedUser {
	return []appservice.SeedUser{
		{
			Input: domain.RegisterInput{Email: cfg.SeedAdminEmail, Username: cfg.SeedAdminUsername, Password: cfg.SeedAdminPassword},
			Role:  domain.RoleAdmin,
		},
		{
			Input: domain.RegisterInput{Email: cfg.SeedDemoEmail, Username: cfg.SeedDemoUsername, Password: cfg.SeedDemoPassword},
			Role:  domain.RoleUser,
		},
	}
}
