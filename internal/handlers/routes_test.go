package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-serverless-api/internal/middleware"
)

func newTestEngine() (*gin.Engine, *fakeTodoRepo) {
	gin.SetMode(gin.TestMode)

	repo := newFakeTodoRepo()
	engine := gin.New()
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	SetupRoutes(engine, NewTodoHandler(repo, testLogger()))
	return engine, repo
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGinSurfaceScenario(t *testing.T) {
	engine, _ := newTestEngine()

	rec := doRequest(engine, http.MethodPost, "/todos", `{"text":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created todoEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Buy milk", created.Data.Text)
	assert.False(t, created.Data.Completed)

	rec = doRequest(engine, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed todosEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)

	rec = doRequest(engine, http.MethodPatch, "/todos/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled todoEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Data.Completed)

	rec = doRequest(engine, http.MethodDelete, "/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":1,"deleted":true}}`, rec.Body.String())

	rec = doRequest(engine, http.MethodDelete, "/todos/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGinSurfaceRejections(t *testing.T) {
	engine, _ := newTestEngine()

	rec := doRequest(engine, http.MethodGet, "/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"not found"}}`, rec.Body.String())

	rec = doRequest(engine, http.MethodPut, "/todos", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = doRequest(engine, http.MethodPatch, "/todos/abc", `{"completed":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(engine, http.MethodPost, "/todos", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(engine, http.MethodPost, "/todos", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"request body is required"}}`, rec.Body.String())
}

func TestGinSurfacePreflightAndCORS(t *testing.T) {
	engine, _ := newTestEngine()

	rec := doRequest(engine, http.MethodOptions, "/todos", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = doRequest(engine, http.MethodGet, "/unknown", "")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestGinSurfaceHealth(t *testing.T) {
	engine, repo := newTestEngine()

	rec := doRequest(engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"ok":true}}`, rec.Body.String())

	repo.failErr = assert.AnError
	rec = doRequest(engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"internal server error"}}`, rec.Body.String())
}
