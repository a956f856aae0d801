package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridehail-admin/internal/pkg/config"
	"github.com/piresc/ridehail-admin/internal/pkg/database"
	"github.com/piresc/ridehail-admin/internal/pkg/health"
	"github.com/piresc/ridehail-admin/internal/pkg/lock"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/middleware"
	nrpkg "github.com/piresc/ridehail-admin/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/ridehail-admin/internal/pkg/nsq"
	"github.com/piresc/ridehail-admin/internal/pkg/server"
	"github.com/piresc/ridehail-admin/internal/pkg/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	captainhandler "github.com/piresc/ridehail-admin/services/captain/handler"
	captainhttp "github.com/piresc/ridehail-admin/services/captain/handler/http"
	captainrepo "github.com/piresc/ridehail-admin/services/captain/repository"
	captainuc "github.com/piresc/ridehail-admin/services/captain/usecase"
	"github.com/piresc/ridehail-admin/services/consistency"
	customerhandler "github.com/piresc/ridehail-admin/services/customer/handler"
	customerhttp "github.com/piresc/ridehail-admin/services/customer/handler/http"
	customerrepo "github.com/piresc/ridehail-admin/services/customer/repository"
	customeruc "github.com/piresc/ridehail-admin/services/customer/usecase"
	paymenthandler "github.com/piresc/ridehail-admin/services/payment/handler"
	paymenthttp "github.com/piresc/ridehail-admin/services/payment/handler/http"
	paymentrepo "github.com/piresc/ridehail-admin/services/payment/repository"
	paymentuc "github.com/piresc/ridehail-admin/services/payment/usecase"
	ratinggw "github.com/piresc/ridehail-admin/services/rating/gateway"
	ratinghandler "github.com/piresc/ridehail-admin/services/rating/handler"
	ratinghttp "github.com/piresc/ridehail-admin/services/rating/handler/http"
	ratingnsq "github.com/piresc/ridehail-admin/services/rating/handler/nsq"
	ratingrepo "github.com/piresc/ridehail-admin/services/rating/repository"
	ratinguc "github.com/piresc/ridehail-admin/services/rating/usecase"
	triphandler "github.com/piresc/ridehail-admin/services/trip/handler"
	triphttp "github.com/piresc/ridehail-admin/services/trip/handler/http"
	triprepo "github.com/piresc/ridehail-admin/services/trip/repository"
	tripuc "github.com/piresc/ridehail-admin/services/trip/usecase"
)

func main() {
	configPath := "config/admin.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Entity store
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.ErrorField(err))
	}
	if configs.Database.RunMigrations {
		if err := database.EnsureSchema(context.Background(), postgresClient.GetDB()); err != nil {
			logger.Fatal("Failed to apply schema", logger.ErrorField(err))
		}
	}

	// Rating store
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", logger.ErrorField(err))
	}
	ratingCollection := mongoClient.Database().Collection(configs.Mongo.RatingCollection)
	if err := database.EnsureRatingIndexes(context.Background(), ratingCollection); err != nil {
		logger.Warn("Failed to ensure rating indexes", logger.ErrorField(err))
	}

	nrApp := nrpkg.InitNewRelic(configs)

	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("mongo", health.NewMongoHealthChecker(mongoClient))

	// Redis is optional: it backs the cross-replica recompute lock and the rate limiter
	var (
		redisClient *database.RedisClient
		locker      lock.Locker = lock.NewKeyedMutex()
	)
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
		}
		locker = lock.NewRedisLocker(redisClient.GetClient(), time.Duration(configs.Rating.LockTTLSeconds)*time.Second)
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}

	var (
		publisher ratinggw.Publisher
		producer  *nsqpkg.Producer
	)
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
		}
		publisher = producer
	} else {
		logger.Info("NSQ address not set, rating events disabled")
	}

	// Repositories
	captainRepo := captainrepo.NewCaptainRepository(configs, postgresClient.GetDB())
	customerRepo := customerrepo.NewCustomerRepository(configs, postgresClient.GetDB())
	tripRepo := triprepo.NewTripRepository(configs, postgresClient.GetDB())
	paymentRepo := paymentrepo.NewPaymentRepository(configs, postgresClient.GetDB())
	ratingRepo := ratingrepo.NewRatingRepository(configs, ratingCollection)

	guard := consistency.NewEntityGuard(captainRepo, customerRepo, tripRepo, paymentRepo)
	ratingGW := ratinggw.NewNSQGateway(publisher, configs.NSQ)

	// Usecases
	aggregator := ratinguc.NewCaptainAggregator(ratingRepo, captainRepo, ratingGW, locker, configs)
	captainUC := captainuc.NewCaptainUC(captainRepo, configs)
	customerUC := customeruc.NewCustomerUC(customerRepo, configs)
	tripUC := tripuc.NewTripUC(tripRepo, guard, configs)
	paymentUC := paymentuc.NewPaymentUC(paymentRepo, guard, configs)
	ratingUC := ratinguc.NewRatingUC(ratingRepo, guard, aggregator, ratingGW, configs)

	var recomputeHandler *ratingnsq.RecomputeHandler
	if configs.NSQ.Address != "" {
		recomputeHandler = ratingnsq.NewRecomputeHandler(aggregator)
		if err := recomputeHandler.InitNSQConsumer(configs.NSQ); err != nil {
			logger.Fatal("Failed to initialize NSQ consumer", logger.ErrorField(err))
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware())
	if redisClient != nil && configs.Server.RateLimit > 0 {
		period := time.Duration(configs.Server.RateLimitPeriodSeconds) * time.Second
		e.Use(middleware.IPRateLimiter(configs.Server.RateLimit, period, redisClient.GetClient()))
	}

	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	captainhandler.NewHandler(captainhttp.NewCaptainHandler(captainUC)).RegisterRoutes(api)
	customerhandler.NewHandler(customerhttp.NewCustomerHandler(customerUC)).RegisterRoutes(api)
	triphandler.NewHandler(triphttp.NewTripHandler(tripUC)).RegisterRoutes(api)
	paymenthandler.NewHandler(paymenthttp.NewPaymentHandler(paymentUC)).RegisterRoutes(api)
	ratinghandler.NewHandler(ratinghttp.NewRatingHandler(ratingUC)).RegisterRoutes(api)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Cleanups run in reverse registration order
	components := srv.Components()
	components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	if nrApp != nil {
		components.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}
	components.Register("mongo", func(context.Context) error { return mongoClient.Close() })
	if redisClient != nil {
		components.Register("redis", func(context.Context) error { return redisClient.Close() })
	}
	if producer != nil {
		components.Register("nsq-producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if recomputeHandler != nil {
		components.Register("nsq-consumer", func(context.Context) error {
			recomputeHandler.Stop()
			return nil
		})
	}

	logger.Info("Starting service", logger.String("service", appName), logger.Int("port", configs.Server.Port))
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.ErrorField(err))
	}
}
