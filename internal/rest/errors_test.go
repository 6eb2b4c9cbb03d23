package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cartapp "github.com/miamore/shopd/internal/cart/app"
	catalogapp "github.com/miamore/shopd/internal/catalog/app"
	checkoutapp "github.com/miamore/shopd/internal/checkout/app"
)

func TestStatusFromError(t *testing.T) {
	t.Run("invalid input -> 400", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(catalogapp.ErrInvalidInput)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("invalid session -> 400", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(cartapp.ErrInvalidSession)
		if gotStatus != http.StatusBadRequest || gotCode != "INVALID_ARGUMENT" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("wrapped not found -> 404", func(t *testing.T) {
		err := fmt.Errorf("product 99: %w", catalogapp.ErrNotFound)
		gotStatus, gotCode := statusFromError(err)
		if gotStatus != http.StatusNotFound || gotCode != "NOT_FOUND" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("empty cart -> 422", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(checkoutapp.ErrEmptyCart)
		if gotStatus != http.StatusUnprocessableEntity || gotCode != "EMPTY_CART" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		gotStatus, gotCode := statusFromError(errors.New("boom"))
		if gotStatus != http.StatusInternalServerError || gotCode != "INTERNAL" {
			t.Fatalf("got (%d,%s)", gotStatus, gotCode)
		}
	})
}
