package http

import (
	"net/http"

	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/internal/utils"
	"github.com/MKhiriev/go-resource-client/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		writeError(w, r, "*Handler.getUser", store.ErrUserNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
