package repository

import (
	"context"
	"encoding/json"
	"time"

	"perform_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const analyticsCacheKeyPrefix = "analytics:"

// AnalyticsRepository is the DashboardAnalytics store: point lookup, range
// scan by company+cycle, and a single batched overwrite write. Point lookups
// are served read-through from redis; a recompute invalidates exactly the
// rows it rewrites.
type AnalyticsRepository struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewAnalyticsRepository(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db, Redis: rdb, CacheTTL: cacheTTL}
}

func cacheKey(companyPerformanceID, entityID string) string {
	return analyticsCacheKeyPrefix + companyPerformanceID + ":" + entityID
}

// FindByKey is the point lookup by (company-cycle id, entity id).
func (r *AnalyticsRepository) FindByKey(ctx context.Context, companyPerformanceID, entityID string) (*model.DashboardAnalytics, error) {
	if r.Redis != nil {
		val, err := r.Redis.Get(ctx, cacheKey(companyPerformanceID, entityID)).Result()
		if err == nil {
			var cached model.DashboardAnalytics
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			// cache trouble is not a read failure; fall through to the DB
		}
	}

	var row model.DashboardAnalytics
	err := r.DB.Where("company_performance_id = ? AND entity_id = ?", companyPerformanceID, entityID).
		First(&row).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if raw, jsonErr := json.Marshal(&row); jsonErr == nil {
			r.Redis.Set(ctx, cacheKey(companyPerformanceID, entityID), raw, r.CacheTTL)
		}
	}

	return &row, nil
}

// ListByCompanyPerformance range-scans every snapshot of one company+cycle.
func (r *AnalyticsRepository) ListByCompanyPerformance(companyPerformanceID string) ([]model.DashboardAnalytics, error) {
	var rows []model.DashboardAnalytics
	err := r.DB.Where("company_performance_id = ?", companyPerformanceID).
		Order("entity_id asc").
		Find(&rows).Error
	return rows, err
}

// SaveAll persists all snapshot rows in one batched write. Each row is a full
// overwrite of its previous content; nothing is merged.
func (r *AnalyticsRepository) SaveAll(rows []model.DashboardAnalytics) error {
	if len(rows) == 0 {
		return nil
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_performance_id"}, {Name: "entity_id"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return err
	}

	if r.Redis != nil {
		keys := make([]string, len(rows))
		for i, row := range rows {
			keys[i] = cacheKey(row.CompanyPerformanceID, row.EntityID)
		}
		r.Redis.Del(context.Background(), keys...)
	}

	return nil
}
