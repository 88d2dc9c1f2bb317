package http

import (
	"net/http"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/utils"
)

// errorBody is the JSON document written for every failure except 404.
type errorBody struct {
	Error errorMessage `json:"error"`
}

type errorMessage struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// writeError logs err and answers with the status it maps to. A missing
// resource is answered with an empty object, as the public service does.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	if status == http.StatusNotFound {
		_, _ = utils.WriteJSON(w, struct{}{}, status)
		return
	}
	_, _ = utils.WriteJSON(w, errorBody{Error: errorMessage{Message: err.Error(), Status: status}}, status)
}
