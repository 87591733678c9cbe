package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/rtcc_dashboard/internal/broadcast"
	"github.com/shenikar/rtcc_dashboard/internal/config"
	"github.com/shenikar/rtcc_dashboard/internal/events"
	v1 "github.com/shenikar/rtcc_dashboard/internal/handler/http/v1"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/shenikar/rtcc_dashboard/internal/repository"
	"github.com/shenikar/rtcc_dashboard/internal/service"
	"github.com/shenikar/rtcc_dashboard/internal/simulator"
	"github.com/shenikar/rtcc_dashboard/internal/transit"
	"github.com/shenikar/rtcc_dashboard/internal/webhook"
	"github.com/shenikar/rtcc_dashboard/pkg/logger"
	"github.com/shenikar/rtcc_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/rtcc_dashboard/pkg/redis"

	_ "github.com/shenikar/rtcc_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// @title DC RTCC Dashboard API
// @version 1.0
// @description Real-time crime center backend: incidents, emergency units, assignments, traffic and a live WebSocket event channel.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set, state is kept in memory")
		return repository.NewMemoryStore(), func() {}, nil
	}

	log.Info("Running database migrations...")
	if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, nil, err
	}
	log.Info("Database migrations applied successfully")

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")
	return repository.NewPostgresStore(dbpool), dbpool.Close, nil
}

func newRouter(cfg *config.Config, handler *v1.Handler) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(cfg.CORSAllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handler.RegisterRoutes(router)
	return router
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст отменяется по SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	hub := broadcast.NewBroadcaster(broadcast.Config{
		WriteTimeout:      cfg.WSWriteTimeout,
		SendBuffer:        cfg.WSSendBuffer,
		KeepaliveInterval: cfg.KeepaliveInterval,
	}, clock, log)
	publishers := events.Publishers{hub}

	// Redis необязателен: без него нет кеша инцидентов и вебхуков
	var (
		cache  service.IncidentCache
		worker *webhook.Worker
	)
	if cfg.RedisAddr != "" {
		var redisClient *goredis.Client
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		cache = repository.NewIncidentCache(redisClient, cfg.IncidentCacheTTL)
		if cfg.WebhookURL != "" {
			publishers = append(publishers, webhook.NewEventForwarder(redisClient, clock, log))
			worker = webhook.NewWorker(redisClient, log, cfg, clock)
		}
	}

	svc := service.NewService(store, cache, publishers, clock, log)
	if cfg.SeedSampleData {
		if err := svc.SeedSampleData(ctx); err != nil {
			log.WithError(err).Warn("Failed to seed sample data")
		}
	}

	simCfg := simulator.Config{
		Interval:            cfg.SimulatorInterval,
		MovementJitter:      cfg.SimulatorJitter,
		IncidentProbability: cfg.SimulatorIncidentProbability,
		TrafficProbability:  cfg.SimulatorTrafficProbability,
		Reference:           models.Location{Lat: cfg.SimulatorReferenceLat, Lng: cfg.SimulatorReferenceLng},
		Spread:              cfg.SimulatorSpread,
	}
	if cfg.SimulatorSeed != 0 {
		simCfg.Rand = rand.New(rand.NewPCG(cfg.SimulatorSeed, cfg.SimulatorSeed))
	}
	sim := simulator.New(simCfg, svc, clock, log)

	feed := transit.NewClient(cfg.WMATABaseURL, cfg.WMATAAPIKey, simCfg.Reference, clock, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(svc, hub, feed, log, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           newRouter(cfg, handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error { return hub.RunKeepalive(gctx) })
	if cfg.SimulatorEnabled {
		g.Go(func() error { return sim.Run(gctx) })
	}
	if worker != nil {
		g.Go(func() error { return worker.Run(gctx) })
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}
