package rest

import (
	"net/http"

	checkoutapp "github.com/miamore/shopd/internal/checkout/app"
	"github.com/miamore/shopd/internal/checkout/domain"
)

type CheckoutHandler struct {
	svc *checkoutapp.Service
}

func NewCheckoutHandler(svc *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type MoneyDTO struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type QuoteLineDTO struct {
	ProductID int64    `json:"product_id"`
	Name      string   `json:"name"`
	Quantity  int64    `json:"quantity"`
	UnitPrice MoneyDTO `json:"unit_price"`
	LineTotal MoneyDTO `json:"line_total"`
}

type ContactDTO struct {
	ShopName string `json:"shop_name"`
	Phone    string `json:"phone"`
	Hours    string `json:"hours"`
}

type QuoteResponse struct {
	Lines   []QuoteLineDTO `json:"lines"`
	Total   MoneyDTO       `json:"total"`
	Contact ContactDTO     `json:"contact"`
	Message string         `json:"message"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	quote, err := h.svc.Quote(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toQuoteResponse(quote))
}

func toQuoteResponse(q domain.Quote) QuoteResponse {
	lines := make([]QuoteLineDTO, 0, len(q.Lines))
	for _, line := range q.Lines {
		lines = append(lines, QuoteLineDTO{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: MoneyDTO{Currency: line.UnitPrice.Currency, Amount: line.UnitPrice.Amount},
			LineTotal: MoneyDTO{Currency: line.LineTotal.Currency, Amount: line.LineTotal.Amount},
		})
	}
	return QuoteResponse{
		Lines:   lines,
		Total:   MoneyDTO{Currency: q.Total.Currency, Amount: q.Total.Amount},
		Contact: ContactDTO{ShopName: q.Contact.ShopName, Phone: q.Contact.Phone, Hours: q.Contact.Hours},
		Message: q.Message,
	}
}
