package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/potionstore/potionstore-go/internal/model"
)

// AnalyticsRepository runs read-only grouped queries over the potions table.
// It never mutates data.
type AnalyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// AverageScoreByVendor groups all potions by vendor and averages their score.
// Only vendors that appear on at least one potion are returned.
func (r *AnalyticsRepository) AverageScoreByVendor(ctx context.Context) ([]model.VendorScore, error) {
	query := `SELECT vendor_id, AVG(score) FROM potions GROUP BY vendor_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.VendorScore
	for rows.Next() {
		var s model.VendorScore
		if err := rows.Scan(&s.VendorID, &s.AverageScore); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// AverageScoreByCategory groups all potions by category and averages their score.
func (r *AnalyticsRepository) AverageScoreByCategory(ctx context.Context) ([]model.CategoryScore, error) {
	query := `SELECT category, AVG(score) FROM potions GROUP BY category`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.CategoryScore
	for rows.Next() {
		var s model.CategoryScore
		if err := rows.Scan(&s.Category, &s.AverageScore); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// StrengthFlavorRatios computes strength/flavor per potion in store order.
// NULLIF turns a zero flavor into a NULL ratio, so one bad denominator never
// aborts the report.
func (r *AnalyticsRepository) StrengthFlavorRatios(ctx context.Context) ([]model.PotionRatio, error) {
	query := `SELECT id, name, rating_strength / NULLIF(rating_flavor, 0) FROM potions`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratios []model.PotionRatio
	for rows.Next() {
		var pr model.PotionRatio
		var ratio sql.NullFloat64
		if err := rows.Scan(&pr.ID, &pr.Name, &ratio); err != nil {
			return nil, err
		}
		if ratio.Valid {
			pr.Ratio = &ratio.Float64
		}
		ratios = append(ratios, pr)
	}

	return ratios, rows.Err()
}

// VendorPriceStats groups all potions by vendor, averaging price and counting
// potions per group.
func (r *AnalyticsRepository) VendorPriceStats(ctx context.Context) ([]model.VendorPriceStat, error) {
	query := `SELECT vendor_id, AVG(price), COUNT(*) FROM potions GROUP BY vendor_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.VendorPriceStat
	for rows.Next() {
		var s model.VendorPriceStat
		if err := rows.Scan(&s.VendorID, &s.AveragePrice, &s.PotionCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GroupMetric runs a single grouping stage: partition potions by groupColumn
// and compute metricExpr within each group. Both arguments are SQL fragments
// and MUST come from the analytics service allow-lists, never from caller
// input.
func (r *AnalyticsRepository) GroupMetric(ctx context.Context, groupColumn, metricExpr string) ([]model.GroupMetric, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM potions GROUP BY %s`, groupColumn, metricExpr, groupColumn)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.GroupMetric
	for rows.Next() {
		var m model.GroupMetric
		if err := rows.Scan(&m.GroupKey, &m.Value); err != nil {
			return nil, err
		}
		results = append(results, m)
	}

	return results, rows.Err()
}
