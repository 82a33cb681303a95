package statsservice

import (
	"context"
	"math"
	"time"

	"assettag/models"
	"assettag/providers"
	"assettag/utils"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = 30 * time.Second
)

type StatsService interface {
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
}

type statsService struct {
	repo  StatsRepository
	cache providers.RedisProvider
}

func NewStatsService(repo StatsRepository, cache providers.RedisProvider) StatsService {
	return &statsService{repo: repo, cache: cache}
}

func (s *statsService) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	total, completed, err := s.repo.GetAssetTotals(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	nonAdminUsers, err := s.repo.CountNonAdminUsers(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	unitStats, err := s.repo.GetUnitBreakdown(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	for i := range unitStats {
		unitStats[i].Percentage = percentage(unitStats[i].Completed, unitStats[i].Total)
	}

	stats := models.DashboardStats{
		TotalAssets:          total,
		CompletedAssets:      completed,
		TotalNonAdminUsers:   nonAdminUsers,
		CompletionPercentage: percentage(completed, total),
		UnitStats:            unitStats,
	}

	s.toCache(ctx, stats)
	return stats, nil
}

// percentage rounds completed/total to whole percent, 0 on an empty set.
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func (s *statsService) fromCache(ctx context.Context) (models.DashboardStats, bool) {
	if s.cache == nil {
		return models.DashboardStats{}, false
	}
	raw, err := s.cache.Get(ctx, statsCacheKey)
	if err != nil {
		return models.DashboardStats{}, false
	}
	var stats models.DashboardStats
	if err := jsoniter.UnmarshalFromString(raw, &stats); err != nil {
		utils.Logger.Warn("failed to decode cached stats", zap.Error(err))
		return models.DashboardStats{}, false
	}
	return stats, true
}

func (s *statsService) toCache(ctx context.Context, stats models.DashboardStats) {
	if s.cache == nil {
		return
	}
	raw, err := jsoniter.MarshalToString(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL); err != nil {
		utils.Logger.Warn("failed to cache stats", zap.Error(err))
	}
}
