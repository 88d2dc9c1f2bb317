package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-resource-client/internal/adapter"
	"github.com/MKhiriev/go-resource-client/internal/config"
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/models"
)

// newFixture starts the fixture server and a resource client aimed at it.
func newFixture(t *testing.T) (*Handler, adapter.ResourceClient) {
	t.Helper()

	h := newSeededHandler(t)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	client, err := adapter.NewHTTPResourceClient(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return h, client
}

func TestResourceClient_AgainstFixtureServer(t *testing.T) {
	_, client := newFixture(t)
	ctx := context.Background()

	posts, err := client.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	post, err := client.GetByID(ctx, 5)
	require.NoError(t, err)
	decoded, err := models.DecodePayload[models.Post](post)
	require.NoError(t, err)
	assert.Equal(t, int64(5), decoded.ID)

	user, err := client.GetUser(ctx, decoded.UserID)
	require.NoError(t, err)
	assert.Contains(t, user.String(), `"username"`)

	created, err := client.Create(ctx, json.RawMessage(`{"title":"foo","body":"bar","userId":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"foo","body":"bar","userId":1}`, created.String())
}

func TestResourceClient_NotFoundIsRemoteResponse(t *testing.T) {
	_, client := newFixture(t)

	_, err := client.GetByID(context.Background(), 999)

	var remote *adapter.RemoteResponseError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusNotFound, remote.StatusCode)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.JSONEq(t, `{}`, string(remote.Body))
}

func TestResourceClient_InjectedFaults(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		fault    models.Fault
		call     func(ctx context.Context, c adapter.ResourceClient) error
		wantKind adapter.ErrorKind
		wantErr  error
	}{
		{
			name:     "server error on list",
			path:     "/posts",
			fault:    models.Fault{StatusCode: http.StatusInternalServerError},
			call:     func(ctx context.Context, c adapter.ResourceClient) error { _, err := c.List(ctx, 0); return err },
			wantKind: adapter.KindRemoteResponse,
			wantErr:  adapter.ErrInternalServerError,
		},
		{
			name:     "bad gateway on every user",
			path:     "/users/*",
			fault:    models.Fault{StatusCode: http.StatusBadGateway},
			call:     func(ctx context.Context, c adapter.ResourceClient) error { _, err := c.GetUser(ctx, 1); return err },
			wantKind: adapter.KindRemoteResponse,
			wantErr:  adapter.ErrBadGateway,
		},
		{
			name:     "dropped connection on get",
			path:     "/posts/1",
			fault:    models.Fault{Drop: true},
			call:     func(ctx context.Context, c adapter.ResourceClient) error { _, err := c.GetByID(ctx, 1); return err },
			wantKind: adapter.KindNoResponse,
		},
		{
			name:  "dropped connection on create",
			path:  "/posts",
			fault: models.Fault{Drop: true},
			call: func(ctx context.Context, c adapter.ResourceClient) error {
				_, err := c.Create(ctx, models.Post{UserID: 1, Title: "t"})
				return err
			},
			wantKind: adapter.KindNoResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, client := newFixture(t)
			_, err := h.services.FaultService.SetFault(context.Background(), tt.path, tt.fault)
			require.NoError(t, err)

			err = tt.call(context.Background(), client)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, adapter.KindOf(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestResourceClient_DelayBeyondTimeoutIsNoResponse(t *testing.T) {
	h := newSeededHandler(t)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	_, err := h.services.FaultService.SetFault(context.Background(), "/posts/2", models.Fault{DelayMS: 500})
	require.NoError(t, err)

	client, err := adapter.NewHTTPResourceClient(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 50 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = client.GetByID(context.Background(), 2)

	var noResp *adapter.NoResponseError
	require.True(t, errors.As(err, &noResp))
	assert.True(t, noResp.Timeout())
}
