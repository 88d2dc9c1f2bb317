package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/internal/utils"
	"github.com/MKhiriev/go-resource-client/models"
)

const (
	limitQueryParam  = "_limit"
	userIDQueryParam = "userId"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := postFilterFromQuery(r)
	if err != nil {
		writeError(w, r, "*Handler.listPosts", err)
		return
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.listPosts", err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		writeError(w, r, "*Handler.getPost", store.ErrPostNotFound)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getPost", err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, r, "*Handler.createPost", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.PostService.CreatePost(r.Context(), post)
	if err != nil {
		writeError(w, r, "*Handler.createPost", err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// postFilterFromQuery reads the "_limit" and "userId" query parameters.
func postFilterFromQuery(r *http.Request) (models.PostFilter, error) {
	var filter models.PostFilter
	query := r.URL.Query()

	if raw := query.Get(limitQueryParam); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
		}
		filter.Limit = limit
	}

	if raw := query.Get(userIDQueryParam); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return models.PostFilter{}, fmt.Errorf("%w: %q", ErrInvalidUserIDQuery, raw)
		}
		filter.UserID = userID
	}

	return filter, nil
}

// idFromPath parses the {id} route parameter. Anything but a positive
// integer names no resource.
func idFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
