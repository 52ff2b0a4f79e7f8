package handler

import (
	"errors"
	"net/http"

	"github.com/potionstore/potionstore-go/internal/service"
)

// AnalyticsHandler handles HTTP requests for aggregation reports.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// HandleAverageScoreByVendor handles GET /api/v1/analytics/average_score_by_vendor.
func (h *AnalyticsHandler) HandleAverageScoreByVendor(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AverageScoreByVendor(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleAverageScoreByCategory handles GET /api/v1/analytics/average_score_by_category.
func (h *AnalyticsHandler) HandleAverageScoreByCategory(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AverageScoreByCategory(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleStrengthFlavorRatio handles GET /api/v1/analytics/strength_flavor_ratio.
func (h *AnalyticsHandler) HandleStrengthFlavorRatio(w http.ResponseWriter, r *http.Request) {
	ratios, err := h.service.StrengthFlavorRatios(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, ratios)
}

// HandleGroup handles GET /api/v1/analytics/group: per-vendor price stats.
func (h *AnalyticsHandler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.VendorPriceStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleSearch handles GET /api/v1/analytics/search?groupBy=&metric=&field=.
func (h *AnalyticsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	results, err := h.service.Search(r.Context(), q.Get("groupBy"), q.Get("metric"), q.Get("field"))
	if err != nil {
		if isParamError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func isParamError(err error) bool {
	return errors.Is(err, service.ErrInvalidGroupBy) ||
		errors.Is(err, service.ErrInvalidMetric) ||
		errors.Is(err, service.ErrInvalidField)
}
