package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VijeshVS/LocalHire-sub001/internal/app"
	"github.com/VijeshVS/LocalHire-sub001/internal/config"
	"github.com/VijeshVS/LocalHire-sub001/internal/database"
	apphttp "github.com/VijeshVS/LocalHire-sub001/internal/http"
	"github.com/VijeshVS/LocalHire-sub001/internal/http/handlers"
	"github.com/VijeshVS/LocalHire-sub001/internal/http/metrics"
	httpmw "github.com/VijeshVS/LocalHire-sub001/internal/http/middleware"
	"github.com/VijeshVS/LocalHire-sub001/internal/http/response"
	"github.com/VijeshVS/LocalHire-sub001/internal/notify"
	"github.com/VijeshVS/LocalHire-sub001/internal/observability"
	"github.com/VijeshVS/LocalHire-sub001/internal/repository/postgres"
	"github.com/VijeshVS/LocalHire-sub001/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	httpmw.SetLogger(logger)
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	workerRepo := postgres.NewWorkerRepository(db)
	employerRepo := postgres.NewEmployerRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	notifier := notify.NewLogNotifier(logger)

	ratingService := app.NewRatingService(applicationRepo, workerRepo, employerRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, workerRepo, ratingService, notifier, logger)
	jobService := app.NewJobService(jobRepo, applicationRepo, workerRepo)
	matchingService := app.NewMatchingService(jobRepo, workerRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter)
	matchingHandler := handlers.NewMatchingHandler(matchingService, cfg.DefaultRadius)
	middleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         jobHandler,
		ApplicationHandler: applicationHandler,
		MatchingHandler:    matchingHandler,
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     middleware,
		Metrics:            collector,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
