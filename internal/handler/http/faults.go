package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-resource-client/internal/utils"
	"github.com/MKhiriev/go-resource-client/models"
)

const faultPathQueryParam = "path"

// faultRequest registers fault for the request path Path. A Path ending in
// "*" matches every path with that prefix.
type faultRequest struct {
	Path string `json:"path"`
	models.Fault
}

func (h *Handler) listFaults(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.FaultService.Faults(r.Context()), http.StatusOK)
}

func (h *Handler) setFault(w http.ResponseWriter, r *http.Request) {
	var req faultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.setFault", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	fault, err := h.services.FaultService.SetFault(r.Context(), req.Path, req.Fault)
	if err != nil {
		writeError(w, r, "*Handler.setFault", err)
		return
	}

	_, _ = utils.WriteJSON(w, faultRequest{Path: req.Path, Fault: fault}, http.StatusCreated)
}

// deleteFaults removes the fault named by the "path" query parameter, or
// every fault when the parameter is absent.
func (h *Handler) deleteFaults(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get(faultPathQueryParam)
	if path == "" {
		h.services.FaultService.Reset(r.Context())
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.FaultService.RemoveFault(r.Context(), path); err != nil {
		writeError(w, r, "*Handler.deleteFaults", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
