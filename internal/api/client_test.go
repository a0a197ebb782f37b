package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "roster-browser/internal/common/errors"
	"roster-browser/internal/common/logger"
	"roster-browser/internal/roster"
)

const validListBody = `{
	"players": [
		{"id": 1, "name": "Sidney Crosby", "position": "C", "jersey_number": 87,
		 "active_status": true, "goals": 592, "assists": 1004, "points": 1596,
		 "team": {"id": 5, "name": "Penguins", "city": "Pittsburgh"}}
	],
	"count": 1, "total": 1, "page": 1, "limit": 20, "total_pages": 1,
	"search_query": "crosby", "search_field": "name",
	"sort_by": "name", "sort_order": "asc", "filters": []
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, logger.NewNoOpLogger(), nil), srv
}

func TestSearchPlayersSendsQueryParams(t *testing.T) {
	var gotQuery map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validListBody))
	})

	q := roster.DefaultQuery(20)
	q.Search = "crosby"
	q.Field = roster.SearchFieldName
	q.Filters = []roster.Filter{{Field: "goals", Operator: roster.OpGreaterOrEqual, Value: "500"}}

	resp, err := client.SearchPlayers(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, "crosby", gotQuery["search"])
	assert.Equal(t, "name", gotQuery["field"])
	assert.Equal(t, "1", gotQuery["page"])
	assert.Equal(t, "20", gotQuery["limit"])
	assert.Equal(t, "name", gotQuery["sort_by"])
	assert.Equal(t, "asc", gotQuery["sort_order"])
	assert.JSONEq(t, `[{"field":"goals","operator":">=","value":500}]`, gotQuery["filters"])

	require.Len(t, resp.Players, 1)
	assert.Equal(t, "Sidney Crosby", resp.Players[0].Name)
	assert.Equal(t, "Pittsburgh", resp.Players[0].Team.City)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestSearchPlayersStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.SearchPlayers(context.Background(), roster.DefaultQuery(20))
	require.Error(t, err)

	be := commonerrors.AsBrowseError(err)
	assert.Equal(t, commonerrors.ErrCodeEndpointStatus, be.Code)
	assert.True(t, be.Retryable)
}

func TestSearchPlayersUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNoOpLogger(), nil)
	_, err := client.SearchPlayers(context.Background(), roster.DefaultQuery(20))
	require.Error(t, err)

	be := commonerrors.AsBrowseError(err)
	assert.Equal(t, commonerrors.ErrCodeEndpointUnreachable, be.Code)
	assert.True(t, be.Retryable)
}

func TestSearchPlayersSchemaInvalid(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// players must be an array; total_pages is missing
		w.Write([]byte(`{"players": "nope", "count": 0, "total": 0, "page": 1, "limit": 20}`))
	})

	_, err := client.SearchPlayers(context.Background(), roster.DefaultQuery(20))
	require.Error(t, err)

	be := commonerrors.AsBrowseError(err)
	assert.Equal(t, commonerrors.ErrCodeResponseSchemaInvalid, be.Code)
	assert.False(t, be.Retryable)
}

func TestSearchPlayersDecodeFailed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Passes the envelope schema but the player id type defeats decoding.
		w.Write([]byte(`{"players": [{"id": "eighty-seven"}], "count": 1, "total": 1,
			"page": 1, "limit": 20, "total_pages": 1}`))
	})

	_, err := client.SearchPlayers(context.Background(), roster.DefaultQuery(20))
	require.Error(t, err)

	be := commonerrors.AsBrowseError(err)
	assert.Equal(t, commonerrors.ErrCodeResponseDecodeFailed, be.Code)
	assert.True(t, be.Retryable)
}

func TestSearchPlayersMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	})

	_, err := client.SearchPlayers(context.Background(), roster.DefaultQuery(20))
	require.Error(t, err)
	assert.False(t, commonerrors.IsRetryable(err))
}

func TestColumnMetadata(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/column-metadata", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"columns": [
				{"key": "name", "label": "Name", "required": true,
				 "capabilities": ["sortable", "searchable"], "field_type": "string"}
			],
			"count": 1,
			"default_visible_columns": ["name"]
		}`))
	})

	resp, err := client.ColumnMetadata(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Columns, 1)
	assert.Equal(t, "Name", resp.Columns[0].Label)
	assert.True(t, resp.Columns[0].Required)
	assert.Equal(t, []string{"name"}, resp.DefaultVisibleColumns)
}
