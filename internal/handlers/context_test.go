package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireErrorResponse asserts the standard error envelope.
func requireErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, message, body["error"])
}

func TestWriteJSON(t *testing.T) {
	t.Run("encodes payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, http.StatusCreated, map[string]int{"count": 3})

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		require.JSONEq(t, `{"count":3}`, rr.Body.String())
	})

	t.Run("nil payload sends headers only", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeJSON(rr, http.StatusNoContent, nil)

		require.Equal(t, http.StatusNoContent, rr.Code)
		require.Zero(t, rr.Body.Len())
	})
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, "something is off")
	requireErrorResponse(t, rr, http.StatusBadRequest, "something is off")
}
