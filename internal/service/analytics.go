package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/potionstore/potionstore-go/internal/model"
	"github.com/potionstore/potionstore-go/internal/repository"
)

var (
	ErrInvalidGroupBy = errors.New("groupBy must be one of: vendor_id, category")
	ErrInvalidMetric  = errors.New("metric must be one of: avg, sum, count")
	ErrInvalidField   = errors.New("field is not an aggregatable attribute")
)

// groupColumns maps external groupBy names to potion table columns. Anything
// outside this map is rejected before query construction.
var groupColumns = map[string]string{
	"vendor_id": "vendor_id",
	"category":  "category",
}

// fieldColumns maps external numeric attribute names to potion table columns.
var fieldColumns = map[string]string{
	"score":                "score",
	"price":                "price",
	"ratings.strength":     "rating_strength",
	"ratings.flavor":       "rating_flavor",
	"ratings.duration":     "rating_duration",
	"ratings.side_effects": "rating_side_effects",
}

// AnalyticsService is the aggregation engine: it validates report parameters
// and delegates grouped read-only queries to the repository.
type AnalyticsService struct {
	repo *repository.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// AverageScoreByVendor reports the mean score per observed vendor.
func (s *AnalyticsService) AverageScoreByVendor(ctx context.Context) ([]model.VendorScore, error) {
	stats, err := s.repo.AverageScoreByVendor(ctx)
	return orEmpty(stats), err
}

// AverageScoreByCategory reports the mean score per observed category.
func (s *AnalyticsService) AverageScoreByCategory(ctx context.Context) ([]model.CategoryScore, error) {
	stats, err := s.repo.AverageScoreByCategory(ctx)
	return orEmpty(stats), err
}

// StrengthFlavorRatios reports strength/flavor per potion; a zero flavor
// yields a null ratio for that potion only.
func (s *AnalyticsService) StrengthFlavorRatios(ctx context.Context) ([]model.PotionRatio, error) {
	ratios, err := s.repo.StrengthFlavorRatios(ctx)
	return orEmpty(ratios), err
}

// VendorPriceStats reports average price and potion count per vendor.
func (s *AnalyticsService) VendorPriceStats(ctx context.Context) ([]model.VendorPriceStat, error) {
	stats, err := s.repo.VendorPriceStats(ctx)
	return orEmpty(stats), err
}

// Search runs the generic parameterized report: group potions by groupBy and
// compute metric over field within each group. All three parameters pass
// through explicit allow-lists; caller input never reaches the query text.
func (s *AnalyticsService) Search(ctx context.Context, groupBy, metric, field string) ([]model.GroupMetric, error) {
	groupColumn, ok := groupColumns[groupBy]
	if !ok {
		return nil, ErrInvalidGroupBy
	}

	metricExpr, err := buildMetricExpr(metric, field)
	if err != nil {
		return nil, err
	}

	results, err := s.repo.GroupMetric(ctx, groupColumn, metricExpr)
	return orEmpty(results), err
}

// orEmpty keeps empty reports serializing as [] rather than null, matching
// the potion list endpoints.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// buildMetricExpr translates a metric/field pair into a SQL aggregate over a
// vetted column name. For count the field is ignored.
func buildMetricExpr(metric, field string) (string, error) {
	switch metric {
	case "count":
		return "COUNT(*)", nil
	case "avg", "sum":
		column, ok := fieldColumns[field]
		if !ok {
			return "", ErrInvalidField
		}
		if metric == "avg" {
			return fmt.Sprintf("AVG(%s)", column), nil
		}
		return fmt.Sprintf("SUM(%s)", column), nil
	default:
		return "", ErrInvalidMetric
	}
}
