package handlers

import (
	"net/http"

	"github.com/Lucas-Aron/Retail/internal/store"
)

type StatusHandler struct {
	store *store.Store
}

func NewStatusHandler(st *store.Store) *StatusHandler {
	return &StatusHandler{store: st}
}

func (h *StatusHandler) Health(w http.ResponseWriter) {
	if h.store.Closed() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "closed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
