// Package rest exposes the shop's operations over an HTTP JSON API. It is
// the only boundary between the in-memory services and the rendering client.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	checkoutdomain "github.com/miamore/shopd/internal/checkout/domain"
)

type Handlers struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Shop     checkoutdomain.Contact
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/shop", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, ContactDTO{
				ShopName: h.Shop.ShopName,
				Phone:    h.Shop.Phone,
				Hours:    h.Shop.Hours,
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Catalog.ListProducts)
			r.Get("/limited", h.Catalog.ListLimited)
			r.Get("/{id}", h.Catalog.GetProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Cart.GetCart)
				r.Delete("/", h.Cart.ClearCart)
				r.Post("/items", h.Cart.AddItem)
				r.Put("/items/{id}", h.Cart.SetQuantity)
				r.Post("/items/{id}/increment", h.Cart.Increment)
				r.Post("/items/{id}/decrement", h.Cart.Decrement)
				r.Delete("/items/{id}", h.Cart.RemoveItem)
			})

			r.Post("/checkout", h.Checkout.Checkout)
		})
	})

	return r
}
