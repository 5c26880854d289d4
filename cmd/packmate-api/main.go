package main

import (
	"context"

	"github.com/labstack/echo/v4"

	"packmate-api/internal/application/controller"
	"packmate-api/internal/application/middleware"
	"packmate-api/internal/application/processor"
	"packmate-api/internal/application/schedule"
	"packmate-api/internal/domain/gateway/api"
	"packmate-api/internal/domain/gateway/cache"
	"packmate-api/internal/domain/gateway/db"
	"packmate-api/internal/domain/gateway/queue"
	"packmate-api/internal/domain/usecase/forecast"
	"packmate-api/internal/domain/usecase/generation"
	"packmate-api/internal/domain/usecase/health"
	"packmate-api/internal/domain/usecase/template"
	"packmate-api/internal/domain/usecase/trip"
	"packmate-api/internal/infra/aws"
	gormdb "packmate-api/internal/infra/database/gorm"
	sqldb "packmate-api/internal/infra/database/sql"
	"packmate-api/pkg/http"
	"packmate-api/pkg/log"
	"packmate-api/pkg/msg"
	"packmate-api/pkg/redis"
	"packmate-api/pkg/resource"
	"packmate-api/pkg/sqs"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	middleware.SetupIdentity(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(forecast.CacheName, resource.GetDuration("app.redis.cache-ttl.forecast")))

	sqsClient := aws.NewSqsClient()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)
	queueName := resource.GetString("app.queue.trip-events")

	// Init Gateways
	forecastGateway := api.NewForecastGateway(
		resource.GetString("app.forecast.base-url"),
		resource.GetString("app.forecast.api-key"),
		http.ClientOptions{ReadTimeout: resource.GetDuration("app.forecast.timeout")})
	generationGateway := api.NewGenerationGateway(
		resource.GetString("app.generation.base-url"),
		resource.GetString("app.generation.api-key"),
		api.GenerationOptions{
			Model:       resource.GetString("app.generation.model"),
			MaxTokens:   resource.GetInt("app.generation.max-tokens"),
			Temperature: resource.GetFloat64("app.generation.temperature"),
		},
		http.ClientOptions{ReadTimeout: resource.GetDuration("app.generation.timeout")})

	tripGateway := db.NewGormTripGateway(gormdb.Db)
	templateGateway := db.NewSQLTemplateGateway(sqldb.Db)
	healthDBGateway := db.NewGormHealthDBGateway(gormdb.Db)
	queueHealthGateway := queue.NewQueueHealthGateway()
	cacheHealthGateway := cache.NewRedisHealthGateway(redisClient)

	// Init UseCases
	forecastUseCase := forecast.NewForecastUseCase(forecastGateway, redisClient)
	generationUseCase := generation.NewGenerationUseCase(queueName, forecastUseCase, generationGateway, tripGateway, queueSender)
	tripUseCase := trip.NewTripUseCase(tripGateway)
	templateUseCase := template.NewTemplateUseCase(templateGateway)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, queueHealthGateway, cacheHealthGateway)

	// Init Controllers
	generateController := controller.NewGenerateController(apiGroup, generationUseCase)
	tripController := controller.NewTripController(apiGroup, tripUseCase)
	templateController := controller.NewTemplateController(apiGroup, templateUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	generateController.InitGenerateRoutes()
	tripController.InitTripRoutes()
	templateController.InitTemplateRoutes()
	healthController.InitHealthRoutes()

	// Init Queue Worker
	tripEventProcessor := processor.NewTripEventProcessor(forecastUseCase)
	worker, err := sqs.NewWorker(context.Background(), sqsClient, queueName, tripEventProcessor, nil)
	if err != nil {
		log.Fatalf("Failed to create trip event worker: %v", err)
	}
	queueHealthGateway.RegisterWorker("trip-events", worker)
	go worker.Start(context.Background())

	// Init Schedule
	forecastCacheScheduler := schedule.NewForecastCacheScheduler(redisClient)
	forecastCacheScheduler.InitForecastCacheScheduleTasks()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
