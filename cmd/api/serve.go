package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	dbadapter "teamboard/internal/adapter/db"
	httpadapter "teamboard/internal/adapter/http"
	"teamboard/internal/adapter/http/handlers"
	httpmiddleware "teamboard/internal/adapter/http/middleware"
	"teamboard/internal/app/seed"
	"teamboard/internal/app/service"
	"teamboard/internal/app/stats"
	"teamboard/internal/app/taskstore"
	"teamboard/internal/config"
	"teamboard/internal/core/domain"
	"teamboard/internal/core/ports"
	"teamboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const seedLookupTimeout = 5 * time.Second

func runServe(cfg *config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr, translator.LanguageVi},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	// SQLite is the local development driver; create its schema on start so
	// `serve` works without a separate `migrate`.
	if cfg.DbDriver == config.DriverSQLite {
		if err := dbadapter.Migrate(context.Background(), db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if err := dbadapter.SeedSampleData(context.Background(), db); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
	}

	userRepo := dbadapter.NewUserRepository(db)
	shopRepo := dbadapter.NewShopRepository(db)
	channelRepo := dbadapter.NewChannelRepository(db)
	store := taskstore.New()

	taskService := service.NewTaskService(store, userRepo, shopRepo, channelRepo)
	dashboardService := service.NewDashboardService(store, userRepo, shopRepo, channelRepo, stats.NewSimulatedQualityScorer(nil))

	if cfg.Seed.Enabled {
		stop := seed.Schedule(store, cfg.Seed.Delay, seedSource(cfg.Seed, userRepo, shopRepo, channelRepo))
		defer stop()
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger, "/api/health"),
		httpmiddleware.CORSMiddleware(),
	)
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, func() int {
			return len(store.Current())
		}),
		Tasks:     handlers.NewTaskHandler(taskService),
		Stream:    handlers.NewStreamHandler(taskService),
		Users:     handlers.NewUserHandler(service.NewUserService(userRepo)),
		Shops:     handlers.NewShopHandler(service.NewShopService(shopRepo)),
		Channels:  handlers.NewChannelHandler(service.NewChannelService(channelRepo)),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("driver", cfg.DbDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
	return nil
}

// seedSource reads the fixture file when one is configured and otherwise
// generates tasks across the users, shops and channels in the database.
func seedSource(conf config.SeedConfig, users ports.UserRepository, shops ports.ShopRepository, channels ports.ChannelRepository) seed.Source {
	if conf.File != "" {
		return func() ([]domain.Task, error) {
			return seed.LoadFile(conf.File)
		}
	}

	generator := seed.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
	return func() ([]domain.Task, error) {
		ctx, cancel := context.WithTimeout(context.Background(), seedLookupTimeout)
		defer cancel()

		userList, err := users.ListUsers(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		shopList, err := shops.ListShops(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("list shops: %w", err)
		}
		channelList, err := channels.ListChannels(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("list channels: %w", err)
		}
		return generator.Generate(conf.Count, userList, shopList, channelList)
	}
}
