package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/potionstore/potionstore-go/internal/model"
	"github.com/potionstore/potionstore-go/internal/service"
)

// PotionHandler handles HTTP requests for potion records.
type PotionHandler struct {
	service *service.PotionService
}

// NewPotionHandler creates a new PotionHandler.
func NewPotionHandler(svc *service.PotionService) *PotionHandler {
	return &PotionHandler{service: svc}
}

// HandleList handles GET /api/v1/potions requests.
func (h *PotionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	potions, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, potions)
}

// HandleGet handles GET /api/v1/potions/{id} requests.
func (h *PotionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := potionID(w, r)
	if !ok {
		return
	}

	potion, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPotionNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, potion)
}

// HandleCreate handles POST /api/v1/potions requests.
func (h *PotionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.PotionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	potion, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, potion)
}

// HandleUpdate handles PUT /api/v1/potions/{id} requests as a full overwrite.
func (h *PotionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := potionID(w, r)
	if !ok {
		return
	}

	var req model.PotionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	potion, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrPotionNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, potion)
}

// HandleDelete handles DELETE /api/v1/potions/{id} requests.
func (h *PotionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := potionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrPotionNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "potion deleted"})
}

// HandleListByVendor handles GET /api/v1/potions/vendor/{vendor_id} requests.
func (h *PotionHandler) HandleListByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendor_id")
	if vendorID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("vendor id is required"))
		return
	}

	potions, err := h.service.ListByVendor(r.Context(), vendorID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, potions)
}

// HandlePriceRange handles GET /api/v1/potions/price-range?min=&max= requests.
// Both bounds are required and must be numeric; an inverted range is executed
// as queried and returns an empty list.
func (h *PotionHandler) HandlePriceRange(w http.ResponseWriter, r *http.Request) {
	min, err := strconv.ParseFloat(r.URL.Query().Get("min"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("min must be a number"))
		return
	}

	max, err := strconv.ParseFloat(r.URL.Query().Get("max"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("max must be a number"))
		return
	}

	potions, err := h.service.ListByPriceRange(r.Context(), min, max)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, potions)
}

// HandleSearchByName handles GET /api/v1/potions/search?name= requests.
func (h *PotionHandler) HandleSearchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("name query parameter is required"))
		return
	}

	potions, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, potions)
}

func potionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid potion id"))
		return "", false
	}
	return id, true
}
