package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestDBHealth(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/db/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"db ok"}`, w.Body.String())
}

func TestAIHealthProxiesPayload(t *testing.T) {
	ts := newTestServer(t)
	ts.ai.payload = map[string]interface{}{"status": "ok", "model": "loaded"}

	w := ts.do(t, http.MethodGet, "/ai/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "loaded")
}

func TestAIHealthUnreachable(t *testing.T) {
	ts := newTestServer(t)
	ts.ai.err = errStubDown

	w := ts.do(t, http.MethodGet, "/ai/health", nil, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "ai service unreachable")
}
