package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Lucas-Aron/Retail/internal/dto"
	"github.com/Lucas-Aron/Retail/internal/service/access"
)

type AccessHandler struct {
	Service access.AccessService
}

// List returns the access log, most recent first.
func (h *AccessHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	list, err := h.Service.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AccessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LogAccessDto
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	entry, err := h.Service.Log(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
