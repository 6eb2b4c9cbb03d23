package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	cartapp "github.com/miamore/shopd/internal/cart/app"
	catalogapp "github.com/miamore/shopd/internal/catalog/app"
	checkoutapp "github.com/miamore/shopd/internal/checkout/app"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.Any("err", err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// statusFromError maps app-layer sentinels to HTTP status codes.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, cartapp.ErrInvalidSession):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusUnprocessableEntity, "EMPTY_CART"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func handleError(w http.ResponseWriter, err error) {
	status, code := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", slog.Any("err", err))
		msg = "internal server error"
	}
	respondError(w, status, code, msg)
}
