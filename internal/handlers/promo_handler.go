package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PromoValidator interface for promo code validation
type PromoValidator interface {
	IsValid(ctx context.Context, code string) bool
}

// PromoHandler handles promo code HTTP requests
type PromoHandler struct {
	validator PromoValidator
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(validator PromoValidator) *PromoHandler {
	return &PromoHandler{
		validator: validator,
	}
}

// ValidatePromo handles GET /api/promo/{promoCode}
func (h *PromoHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "promoCode")
	if code == "" {
		writeError(w, http.StatusBadRequest, "Promo code is required")
		return
	}

	valid := h.validator.IsValid(r.Context(), code)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"promoCode": code,
		"valid":     valid,
	})
}
