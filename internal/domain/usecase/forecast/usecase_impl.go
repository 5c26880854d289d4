package forecast

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/gateway/api"
	"packmate-api/internal/domain/model"
	"packmate-api/pkg/log"
	"packmate-api/pkg/redis"
)

// CacheName identifies the forecast cache for TTL configuration and for the
// stale entry sweep.
const CacheName = "forecast"

type forecastUseCase struct {
	apiGateway api.ForecastGateway
	cache      *redis.Cache
}

func NewForecastUseCase(apiGateway api.ForecastGateway, cacheClient *redis.Client) UseCase {
	var cache *redis.Cache
	if cacheClient != nil {
		cache = redis.NewCache(cacheClient, redis.NewCacheOptions().WithCacheName(CacheName))
	}

	return &forecastUseCase{
		apiGateway: apiGateway,
		cache:      cache,
	}
}

// GetForecast returns the aggregated forecast, serving from cache when a
// fresh entry exists for the same location and date range.
func (uc *forecastUseCase) GetForecast(location string, startDate string, endDate string) (*entity.ForecastContext, error) {
	cacheKey := buildCacheKey(location, startDate, endDate)

	if cached := uc.fromCache(cacheKey); cached != nil {
		return cached, nil
	}

	response, err := uc.apiGateway.GetForecast(location)
	if err != nil {
		return nil, &model.ForecastUnavailable{Location: location, Cause: err}
	}
	if len(response.List) == 0 {
		return nil, &model.ForecastUnavailable{Location: location, Cause: errors.New("provider returned no forecast slots")}
	}

	aggregated := Aggregate(response, startDate, endDate)
	uc.toCache(cacheKey, aggregated)

	return aggregated, nil
}

// WarmCache fetches the forecast so a later generation request hits the cache.
func (uc *forecastUseCase) WarmCache(location string, startDate string, endDate string) error {
	_, err := uc.GetForecast(location, startDate, endDate)
	return err
}

func (uc *forecastUseCase) fromCache(key string) *entity.ForecastContext {
	if uc.cache == nil {
		return nil
	}

	var cached entity.ForecastContext
	err := uc.cache.Get(context.Background(), key, &cached)
	if errors.Is(err, redis.ErrCacheMiss) {
		return nil
	}
	if err != nil {
		log.Warn("Failed to read forecast cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &cached
}

func (uc *forecastUseCase) toCache(key string, value *entity.ForecastContext) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(context.Background(), key, value); err != nil {
		log.Warn("Failed to write forecast cache", zap.String("key", key), zap.Error(err))
	}
}

func buildCacheKey(location string, startDate string, endDate string) string {
	return fmt.Sprintf("%s|%s|%s", location, startDate, endDate)
}
