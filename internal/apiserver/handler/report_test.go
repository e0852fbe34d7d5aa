package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReports_CreateAndGet(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/reports", map[string]string{"content": "weekly inventory check"})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "weekly inventory check", data["content"])

	w = ts.do(t, "GET", "/api/reports/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "weekly inventory check", got["content"])
	assert.NotEmpty(t, got["created_at"])
}

func TestReports_CreateMissingContent(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/reports", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Content is required", decode(t, w)["error"])
}

func TestReports_ListNewestFirst(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusCreated, ts.do(t, "POST", "/api/reports", map[string]string{"content": "first"}).Code)
	require.Equal(t, http.StatusCreated, ts.do(t, "POST", "/api/reports", map[string]string{"content": "second"}).Code)

	w := ts.do(t, "GET", "/api/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode(t, w)["data"].([]interface{})
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[0].(map[string]interface{})["content"])
}

func TestReports_GetAbsent(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "GET", "/api/reports/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Report not found", decode(t, w)["error"])
}

func TestReports_NoUpdateRoute(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusCreated, ts.do(t, "POST", "/api/reports", map[string]string{"content": "immutable"}).Code)

	// Reports are write-once: the router has no PUT or DELETE for them
	w := ts.do(t, "PUT", "/api/reports/1", map[string]string{"content": "rewritten"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, "DELETE", "/api/reports/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
