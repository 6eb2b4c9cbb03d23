package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	cartapp "github.com/miamore/shopd/internal/cart/app"
	cartdomain "github.com/miamore/shopd/internal/cart/domain"
)

type CartHandler struct {
	svc *cartapp.Service
}

func NewCartHandler(svc *cartapp.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type LineItemDTO struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	Discount       int64  `json:"discount,omitempty"`
	EffectivePrice int64  `json:"effective_price"`
	Quantity       int64  `json:"quantity"`
	LineTotal      int64  `json:"line_total"`
}

type CartResponse struct {
	Items      []LineItemDTO `json:"items"`
	TotalItems int64         `json:"total_items"`
	TotalPrice int64         `json:"total_price"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.GetCart(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.svc.AddItem(r.Context(), sessionFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCartResponse(cart))
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON body")
		return
	}

	cart, err := h.svc.SetItemQuantity(r.Context(), sessionFromContext(r.Context()), id, req.Quantity)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	cart, err := h.svc.IncrementItem(r.Context(), sessionFromContext(r.Context()), id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	cart, err := h.svc.DecrementItem(r.Context(), sessionFromContext(r.Context()), id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	cart, err := h.svc.RemoveItem(r.Context(), sessionFromContext(r.Context()), id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.ClearCart(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCartResponse(cart))
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid product id")
		return 0, false
	}
	return id, true
}

func toCartResponse(cart cartapp.Cart) CartResponse {
	items := make([]LineItemDTO, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, toLineItemDTO(it))
	}
	return CartResponse{
		Items:      items,
		TotalItems: cart.TotalItems,
		TotalPrice: cart.TotalPrice,
	}
}

func toLineItemDTO(it cartdomain.LineItem) LineItemDTO {
	return LineItemDTO{
		ProductID:      it.ProductID,
		Name:           it.Name,
		Price:          it.Price,
		Discount:       it.Discount,
		EffectivePrice: it.EffectivePrice(),
		Quantity:       it.Quantity,
		LineTotal:      it.LineTotal(),
	}
}
