package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-resource-client/models"
)

func TestAdminFaults_Lifecycle(t *testing.T) {
	h := newSeededHandler(t)

	rec := serve(h, http.MethodPost, "/__admin/faults", `{"path":"/posts/1","status_code":503}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"path":"/posts/1","status_code":503,"rate":1}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/__admin/faults", "")
	require.Equal(t, http.StatusOK, rec.Code)
	faults := decodeBody[map[string]models.Fault](t, rec)
	assert.Equal(t, map[string]models.Fault{"/posts/1": {StatusCode: 503, Rate: 1}}, faults)

	rec = serve(h, http.MethodGet, "/posts/1", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, defaultFaultBody, rec.Body.String())

	// other paths are untouched
	rec = serve(h, http.MethodGet, "/posts/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodDelete, "/__admin/faults?path=/posts/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, http.MethodGet, "/posts/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodDelete, "/__admin/faults?path=/posts/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminFaults_Reset(t *testing.T) {
	h := newSeededHandler(t)
	ctx := context.Background()

	_, err := h.services.FaultService.SetFault(ctx, "/posts", models.Fault{StatusCode: 500})
	require.NoError(t, err)
	_, err = h.services.FaultService.SetFault(ctx, "/users/*", models.Fault{StatusCode: 500})
	require.NoError(t, err)

	rec := serve(h, http.MethodDelete, "/__admin/faults", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, h.services.FaultService.Faults(ctx))
}

func TestAdminFaults_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"path":`},
		{name: "empty path", body: `{"status_code":500}`},
		{name: "no effect", body: `{"path":"/posts"}`},
		{name: "bad status", body: `{"path":"/posts","status_code":99}`},
		{name: "bad rate", body: `{"path":"/posts","drop":true,"rate":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newSeededHandler(t)

			rec := serve(h, http.MethodPost, "/__admin/faults", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAdminRoutes_AreNeverFaulted(t *testing.T) {
	h := newSeededHandler(t)
	_, err := h.services.FaultService.SetFault(context.Background(), "/*", models.Fault{StatusCode: 500})
	require.NoError(t, err)

	rec := serve(h, http.MethodGet, "/__admin/faults", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWithFaults_CustomBody(t *testing.T) {
	h := newSeededHandler(t)
	_, err := h.services.FaultService.SetFault(context.Background(), "/users/1", models.Fault{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"message":"slow down"}`,
	})
	require.NoError(t, err)

	rec := serve(h, http.MethodGet, "/users/1", "")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"slow down"}`, rec.Body.String())
}

func TestWithFaults_DelayOnly(t *testing.T) {
	h := newSeededHandler(t)
	_, err := h.services.FaultService.SetFault(context.Background(), "/posts/1", models.Fault{DelayMS: 60})
	require.NoError(t, err)

	start := time.Now()
	rec := serve(h, http.MethodGet, "/posts/1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestWithFaults_DelayAbortedByCancelledRequest(t *testing.T) {
	h := newSeededHandler(t)
	_, err := h.services.FaultService.SetFault(context.Background(), "/posts/1", models.Fault{DelayMS: 5000})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/posts/1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	start := time.Now()
	h.Init().ServeHTTP(rec, req)

	assert.Less(t, time.Since(start), time.Second)
	assert.Empty(t, rec.Body.String())
}

func TestWithFaults_DropClosesConnection(t *testing.T) {
	h := newSeededHandler(t)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	_, err := h.services.FaultService.SetFault(context.Background(), "/posts/1", models.Fault{Drop: true})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/posts/1")
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.Error(t, err)
}
