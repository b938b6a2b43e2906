package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondDataEnvelope(t *testing.T) {
	resp := respondData(http.StatusOK, map[string]int{"n": 1}, "rid-1")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"n":1}}`, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "rid-1", resp.Headers["X-Request-ID"])
}

func TestRespondErrorEnvelope(t *testing.T) {
	resp := respondError(http.StatusNotFound, "todo not found", "rid-2")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"todo not found"}}`, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestRespondNoContent(t *testing.T) {
	resp := respondNoContent("rid-3")

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.NotContains(t, resp.Headers, "Content-Type")
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}

func TestInternalErrorResponseIsGeneric(t *testing.T) {
	resp := InternalErrorResponse()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"internal server error"}}`, resp.Body)
}
