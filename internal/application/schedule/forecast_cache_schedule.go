package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"packmate-api/internal/domain/usecase/forecast"
	"packmate-api/pkg/log"
	"packmate-api/pkg/msg"
	"packmate-api/pkg/redis"
	"packmate-api/pkg/resource"
)

type ForecastCacheScheduler struct {
	cron           *cron.Cron
	cache          *redis.Cache
	staleThreshold time.Duration
}

func NewForecastCacheScheduler(cacheClient *redis.Client) *ForecastCacheScheduler {
	cache := redis.NewCache(cacheClient, redis.NewCacheOptions().WithCacheName(forecast.CacheName))

	return &ForecastCacheScheduler{
		cron:           cron.New(),
		cache:          cache,
		staleThreshold: resource.GetDuration("app.forecast.cache.stale-threshold"),
	}
}

// InitForecastCacheScheduleTasks initializes forecast cache schedule tasks
func (scheduler *ForecastCacheScheduler) InitForecastCacheScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.forecast.cache.clear-cron"), scheduler.ClearStaleForecasts)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// ClearStaleForecasts removes forecast cache entries close to expiry so a
// burst of generation requests never races an expiring entry.
func (scheduler *ForecastCacheScheduler) ClearStaleForecasts() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("forecast.cron.start"), zap.String("request_id", requestID))

	removed, err := scheduler.cache.ClearStale(context.Background(), "*", scheduler.staleThreshold)
	if err != nil {
		log.Error(msg.GetMessage("forecast.error.clear-failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("forecast.cron.end", removed), zap.String("request_id", requestID))
}
