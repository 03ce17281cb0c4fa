package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/userdata"
)

// UserDataHandler handles per-user cart, favorites and price alerts
type UserDataHandler struct {
	carts     *userdata.CartService
	favorites userdata.FavoritesRepository
	alerts    userdata.AlertRepository
	logger    *slog.Logger
}

// NewUserDataHandler creates a new user data handler
func NewUserDataHandler(
	carts *userdata.CartService,
	favorites userdata.FavoritesRepository,
	alerts userdata.AlertRepository,
	logger *slog.Logger,
) *UserDataHandler {
	return &UserDataHandler{
		carts:     carts,
		favorites: favorites,
		alerts:    alerts,
		logger:    logger,
	}
}

// FavoriteRequest is the body of POST /api/user/{userId}/favorites
type FavoriteRequest struct {
	ProductID string `json:"productId"`
}

// AlertRequest is the body of POST /api/user/{userId}/alerts
type AlertRequest struct {
	ProductID   string  `json:"productId"`
	TargetPrice float64 `json:"targetPrice"`
}

// GetCart handles GET /api/user/{userId}/cart
func (h *UserDataHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	writeJSON(w, http.StatusOK, h.carts.GetCart(r.Context(), userID))
}

// AddToCart handles POST /api/user/{userId}/cart
func (h *UserDataHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var item userdata.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := h.carts.AddItem(r.Context(), userID, item)
	if err != nil {
		switch err {
		case userdata.ErrInvalidQuantity:
			writeError(w, http.StatusBadRequest, "Quantity must be positive")
		case userdata.ErrInvalidProduct:
			writeError(w, http.StatusBadRequest, "Invalid product")
		default:
			h.logger.Error("failed to add cart item", "userId", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// ClearCart handles DELETE /api/user/{userId}/cart
func (h *UserDataHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	h.carts.ClearCart(r.Context(), userID)
	w.WriteHeader(http.StatusNoContent)
}

// GetFavorites handles GET /api/user/{userId}/favorites
func (h *UserDataHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	writeJSON(w, http.StatusOK, h.favorites.Get(userID))
}

// ToggleFavorite handles POST /api/user/{userId}/favorites
func (h *UserDataHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	ids, favorite := userdata.Toggle(h.favorites, userID, req.ProductID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": ids,
		"favorite":  favorite,
	})
}

// GetAlerts handles GET /api/user/{userId}/alerts
func (h *UserDataHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	writeJSON(w, http.StatusOK, h.alerts.Get(userID))
}

// CreateAlert handles POST /api/user/{userId}/alerts
func (h *UserDataHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req AlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	alert := userdata.Subscribe(h.alerts, userID, req.ProductID, req.TargetPrice)
	writeJSON(w, http.StatusCreated, alert)
}
