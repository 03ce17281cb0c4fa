package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/service"
)

// DishHandler handles recipe and cost-analysis HTTP requests
type DishHandler struct {
	service *service.RecipeService
	logger  *slog.Logger
}

// NewDishHandler creates a new dish handler
func NewDishHandler(service *service.RecipeService, logger *slog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger,
	}
}

// CompareRequest is the body of POST /api/dish/compare
type CompareRequest struct {
	DishIDs []string `json:"dishIds"`
}

// ListDishes handles GET /api/dish
func (h *DishHandler) ListDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.service.ListDishes(r.Context())
	if err != nil {
		h.logger.Error("failed to list dishes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

// GetDish handles GET /api/dish/{dishId}
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	dish, err := h.service.GetDish(r.Context(), dishID)
	if err != nil {
		if err == repository.ErrDishNotFound {
			h.logger.Info("dish not found", "dishId", dishID)
			writeError(w, http.StatusNotFound, "Dish not found")
			return
		}
		h.logger.Error("failed to get dish", "dishId", dishID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dish)
}

// AnalyzeCost handles GET /api/dish/{dishId}/analysis
func (h *DishHandler) AnalyzeCost(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	analysis, err := h.service.AnalyzeCost(r.Context(), dishID)
	if err != nil {
		if err == repository.ErrDishNotFound {
			writeError(w, http.StatusNotFound, "Dish not found")
			return
		}
		h.logger.Error("failed to analyze dish", "dishId", dishID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// BuildShoppingList handles GET /api/dish/{dishId}/shopping-list
func (h *DishHandler) BuildShoppingList(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	list, err := h.service.BuildShoppingList(r.Context(), dishID)
	if err != nil {
		if err == repository.ErrDishNotFound {
			writeError(w, http.StatusNotFound, "Dish not found")
			return
		}
		h.logger.Error("failed to build shopping list", "dishId", dishID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// RankPopular handles GET /api/dish/popular
func (h *DishHandler) RankPopular(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.service.RankPopularDishes(r.Context())
	if err != nil {
		h.logger.Error("failed to rank dishes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

// CompareDishes handles POST /api/dish/compare
func (h *DishHandler) CompareDishes(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.DishIDs) == 0 {
		writeError(w, http.StatusBadRequest, "dishIds is required")
		return
	}

	analyses, err := h.service.CompareDishes(r.Context(), req.DishIDs)
	if err != nil {
		h.logger.Error("failed to compare dishes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, analyses)
}
