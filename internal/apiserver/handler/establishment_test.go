package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstablishments_CreateAndList(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/establishments", map[string]string{"name": "Lycée A"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Lycée A", data["name"])

	w = ts.do(t, "GET", "/api/establishments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Len(t, body["data"], 1)
}

func TestEstablishments_DuplicateName(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/establishments", map[string]string{"name": "Lycée A"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same name again hits the unique constraint, surfaced verbatim
	w = ts.do(t, "POST", "/api/establishments", map[string]string{"name": "Lycée A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["error"])

	// A different name is fine and shows up in the list
	w = ts.do(t, "POST", "/api/establishments", map[string]string{"name": "Lycée B"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = ts.do(t, "GET", "/api/establishments", nil)
	assert.Len(t, decode(t, w)["data"], 2)
}

func TestEstablishments_CreateMissingName(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/establishments", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name is required", decode(t, w)["error"])
}

func TestEstablishments_Update(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/establishments", map[string]string{"name": "Lycée A"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, "PUT", "/api/establishments/1", map[string]string{"name": "Lycée A bis"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["message"])
	assert.Equal(t, float64(1), body["changes"])

	// Updating a missing id still reports success, with zero changes
	w = ts.do(t, "PUT", "/api/establishments/999", map[string]string{"name": "Nobody"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["changes"])

	w = ts.do(t, "PUT", "/api/establishments/1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name is required", decode(t, w)["error"])
}

func TestEstablishments_DeleteReferenced(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusCreated, ts.do(t, "POST", "/api/establishments", map[string]string{"name": "Lycée A"}).Code)
	require.Equal(t, http.StatusCreated, ts.do(t, "POST", "/api/equipment", map[string]interface{}{
		"name": "Projector", "status": "new", "establishment_id": 1,
	}).Code)

	w := ts.do(t, "DELETE", "/api/establishments/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "FOREIGN KEY constraint failed")

	// Remove the referencing equipment, then the delete goes through
	require.Equal(t, http.StatusOK, ts.do(t, "DELETE", "/api/equipment/1", nil).Code)
	w = ts.do(t, "DELETE", "/api/establishments/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["changes"])

	w = ts.do(t, "GET", "/api/establishments", nil)
	assert.Len(t, decode(t, w)["data"], 0)
}
