package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Lucas-Aron/Retail/internal/store"
)

const requestTimeout = 3 * time.Second

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

// statusFor maps store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrStoreClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, store.ErrConstraint):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides unexpected failures from the operator.
func messageFor(err error) string {
	switch {
	case errors.Is(err, store.ErrStoreClosed):
		return "Koneksi database sudah ditutup."
	case errors.Is(err, store.ErrDuplicateID):
		return "ID sudah dipakai, coba kirim ulang sebentar lagi: " + err.Error()
	case errors.Is(err, store.ErrConstraint):
		return "Data tidak valid: " + err.Error()
	default:
		log.Printf("unexpected store error: %v", err)
		return "Terjadi kesalahan sistem, silakan coba lagi."
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": messageFor(err)})
}
