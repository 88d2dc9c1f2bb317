package http

import (
	"net/http"

	"github.com/MKhiriev/go-resource-client/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	_, _ = utils.WriteJSON(w, versionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
