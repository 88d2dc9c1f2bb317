package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/models"
)

const adminPathPrefix = "/__admin/"

const defaultFaultBody = `{"error":{"message":"injected fault","type":"server_error"}}`

// withFaults applies the fault registered for the request path, if any: it
// waits for the fault's delay, then drops the connection, answers with the
// fault's status or lets the request through. Admin routes are never
// faulted.
func (h *Handler) withFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, adminPathPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		fault, ok := h.services.FaultService.Match(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Info().
			Str("path", r.URL.Path).
			Int("status", fault.StatusCode).
			Int("delay_ms", fault.DelayMS).
			Bool("drop", fault.Drop).
			Msg("injecting fault")

		if delay := fault.Delay(); delay > 0 {
			t := time.NewTimer(delay)
			select {
			case <-r.Context().Done():
				t.Stop()
				return
			case <-t.C:
			}
		}

		switch {
		case fault.Drop:
			dropConnection(w)
		case fault.StatusCode != 0:
			writeFault(w, fault)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// dropConnection closes the client connection without writing a response.
func dropConnection(w http.ResponseWriter) {
	conn, _, err := http.NewResponseController(w).Hijack()
	if err != nil {
		// the server aborts the response and closes the connection
		panic(http.ErrAbortHandler)
	}
	_ = conn.Close()
}

func writeFault(w http.ResponseWriter, fault models.Fault) {
	body := fault.Body
	if body == "" {
		body = defaultFaultBody
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(fault.StatusCode)
	_, _ = w.Write([]byte(body))
}
