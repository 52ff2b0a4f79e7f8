package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/potionstore/potionstore-go/internal/model"
	"github.com/potionstore/potionstore-go/internal/repository"
)

func newTestAnalyticsService() *AnalyticsService {
	return NewAnalyticsService(repository.NewAnalyticsRepository(nil))
}

func TestSearch_UnknownGroupBy(t *testing.T) {
	svc := newTestAnalyticsService()

	_, err := svc.Search(context.Background(), "owner", "avg", "price")
	if err != ErrInvalidGroupBy {
		t.Errorf("expected ErrInvalidGroupBy, got %v", err)
	}
}

func TestSearch_MissingGroupBy(t *testing.T) {
	svc := newTestAnalyticsService()

	_, err := svc.Search(context.Background(), "", "avg", "price")
	if err != ErrInvalidGroupBy {
		t.Errorf("expected ErrInvalidGroupBy, got %v", err)
	}
}

func TestSearch_UnknownMetric(t *testing.T) {
	svc := newTestAnalyticsService()

	_, err := svc.Search(context.Background(), "vendor_id", "median", "price")
	if err != ErrInvalidMetric {
		t.Errorf("expected ErrInvalidMetric, got %v", err)
	}
}

func TestSearch_UnknownField(t *testing.T) {
	svc := newTestAnalyticsService()

	_, err := svc.Search(context.Background(), "vendor_id", "avg", "secret_column")
	if err != ErrInvalidField {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}
}

func TestSearch_RejectsQueryFragments(t *testing.T) {
	// Caller input must never reach query text; anything outside the
	// allow-lists is rejected up front.
	svc := newTestAnalyticsService()

	_, err := svc.Search(context.Background(), "vendor_id", "avg", "price); DROP TABLE potions;--")
	if err != ErrInvalidField {
		t.Errorf("expected ErrInvalidField, got %v", err)
	}

	_, err = svc.Search(context.Background(), "vendor_id, password_hash", "avg", "price")
	if err != ErrInvalidGroupBy {
		t.Errorf("expected ErrInvalidGroupBy, got %v", err)
	}
}

func TestBuildMetricExpr(t *testing.T) {
	tests := []struct {
		metric, field string
		want          string
	}{
		{"avg", "price", "AVG(price)"},
		{"sum", "score", "SUM(score)"},
		{"avg", "ratings.strength", "AVG(rating_strength)"},
		{"avg", "ratings.side_effects", "AVG(rating_side_effects)"},
		{"count", "", "COUNT(*)"},
		{"count", "ignored-field", "COUNT(*)"},
	}

	for _, tt := range tests {
		got, err := buildMetricExpr(tt.metric, tt.field)
		if err != nil {
			t.Errorf("buildMetricExpr(%q, %q) unexpected error: %v", tt.metric, tt.field, err)
			continue
		}
		if got != tt.want {
			t.Errorf("buildMetricExpr(%q, %q) = %q, want %q", tt.metric, tt.field, got, tt.want)
		}
	}
}

func TestBuildMetricExpr_MissingMetric(t *testing.T) {
	if _, err := buildMetricExpr("", "price"); err != ErrInvalidMetric {
		t.Errorf("expected ErrInvalidMetric, got %v", err)
	}
}

func TestOrEmpty(t *testing.T) {
	empty := orEmpty[model.VendorScore](nil)
	if empty == nil {
		t.Fatal("expected non-nil slice for nil input")
	}
	if len(empty) != 0 {
		t.Errorf("expected 0 rows, got %d", len(empty))
	}

	// An empty report must serialize as [] like the potion list endpoints.
	data, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty report serialized as %s, want []", data)
	}

	rows := []model.GroupMetric{{GroupKey: "v1", Value: 15}}
	if got := orEmpty(rows); len(got) != 1 || got[0] != rows[0] {
		t.Errorf("expected rows passed through unchanged, got %v", got)
	}
}
