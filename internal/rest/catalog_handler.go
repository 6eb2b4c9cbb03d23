package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/miamore/shopd/internal/catalog/app"
	"github.com/miamore/shopd/internal/catalog/domain"
)

type CatalogHandler struct {
	svc *catalogapp.Service
}

func NewCatalogHandler(svc *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type ProductDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Discount    int64  `json:"discount,omitempty"`
	Stock       int64  `json:"stock"`
	Limited     bool   `json:"limited,omitempty"`
}

type ProductListResponse struct {
	Products []ProductDTO `json:"products"`
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.svc.ListProducts(r.Context(), category)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductList(products))
}

func (h *CatalogHandler) ListLimited(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListLimited(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductList(products))
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid product id")
		return
	}

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductDTO(p))
}

func toProductList(products []domain.Product) ProductListResponse {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return ProductListResponse{Products: out}
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Discount:    p.Discount,
		Stock:       p.Stock,
		Limited:     p.Limited,
	}
}
