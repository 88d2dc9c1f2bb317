package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-resource-client/internal/service"
	"github.com/MKhiriev/go-resource-client/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidLimit:       http.StatusBadRequest,
	ErrInvalidUserIDQuery: http.StatusBadRequest,
	ErrInvalidJSON:        http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrFaultPathIsEmpty:    http.StatusBadRequest,
	service.ErrFaultNotFound:       http.StatusNotFound,

	store.ErrPostNotFound:  http.StatusNotFound,
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrUnknownAuthor: http.StatusUnprocessableEntity,
	store.ErrAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
