package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/service"
)

// ProductHandler handles catalog-related HTTP requests
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/product
// Supported query params: category, search, store, minPrice, maxPrice
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filters := service.ProductFilters{
		Search: q.Get("search"),
		Store:  q.Get("store"),
	}

	if v := q.Get("category"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			h.logger.Warn("invalid category filter", "category", v)
			writeError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		filters.CategoryID = id
	}
	if v := q.Get("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid minPrice")
			return
		}
		filters.MinPrice = p
	}
	if v := q.Get("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid maxPrice")
			return
		}
		filters.MaxPrice = p
	}

	entries := h.service.ListProducts(ctx, filters)
	writeJSON(w, http.StatusOK, entries)
}

// GetProduct handles GET /api/product/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if productID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	entry, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			h.logger.Info("product not found", "productId", productID)
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to get product", "productId", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// ListStores handles GET /api/store
func (h *ProductHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		h.logger.Error("failed to list stores", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, stores)
}

// ListCategories handles GET /api/category
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListCategories(r.Context()))
}
