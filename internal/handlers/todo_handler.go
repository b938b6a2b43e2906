package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/models"
	"todo-serverless-api/internal/repositories"
	"todo-serverless-api/pkg/lambda"
)

// TodoHandler executes todo operations against the repository and shapes
// every outcome into the uniform envelope. The same handler backs both the
// Lambda dispatch surface and the gin routes.
type TodoHandler struct {
	todos  repositories.TodoRepository
	logger *logrus.Logger
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todos repositories.TodoRepository, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{
		todos:  todos,
		logger: logger,
	}
}

type createRequest struct {
	Text *string `json:"text"`
}

type toggleRequest struct {
	Completed *bool `json:"completed"`
}

type deleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

type healthResult struct {
	OK bool `json:"ok"`
}

// decodeBody parses a UTF-8 JSON request body. Base64-encoded bodies are
// rejected outright: the deployment never sends binary payloads, so the
// flag can only mean a misconfigured delivery layer.
func decodeBody(req *lambda.Request, dst interface{}) *apiError {
	if req.IsBase64Encoded {
		return badRequest("base64-encoded request bodies are not supported")
	}
	if strings.TrimSpace(req.Body) == "" {
		return badRequest("request body is required")
	}
	if err := json.Unmarshal([]byte(req.Body), dst); err != nil {
		return decodeError(err)
	}
	return nil
}

// storageFailure logs the full cause and returns the generic 500 envelope.
func (h *TodoHandler) storageFailure(err error, op, requestID string, log *logrus.Entry) *lambda.Response {
	log.WithError(err).WithField("op", op).Error("Storage operation failed")
	return respondError(http.StatusInternalServerError, genericErrorMessage, requestID)
}

// HandleHealth confirms store connectivity with a minimal round trip.
func (h *TodoHandler) HandleHealth(ctx context.Context, requestID string, log *logrus.Entry) *lambda.Response {
	if err := h.todos.HealthCheck(ctx); err != nil {
		return h.storageFailure(err, "health_check", requestID, log)
	}
	return respondData(http.StatusOK, healthResult{OK: true}, requestID)
}

// HandleList returns all todos, oldest first.
func (h *TodoHandler) HandleList(ctx context.Context, requestID string, log *logrus.Entry) *lambda.Response {
	todos, err := h.todos.List(ctx)
	if err != nil {
		return h.storageFailure(err, "list", requestID, log)
	}
	return respondData(http.StatusOK, todos, requestID)
}

// HandleCreate validates the text contract and inserts a new todo.
func (h *TodoHandler) HandleCreate(ctx context.Context, req *lambda.Request, requestID string, log *logrus.Entry) *lambda.Response {
	var body createRequest
	if apiErr := decodeBody(req, &body); apiErr != nil {
		return respondError(apiErr.status, apiErr.message, requestID)
	}
	if body.Text == nil {
		return respondError(http.StatusBadRequest, "text is required", requestID)
	}

	text, err := models.NormalizeText(*body.Text)
	if err != nil {
		return respondError(http.StatusBadRequest, err.Error(), requestID)
	}

	todo, err := h.todos.Create(ctx, text)
	if err != nil {
		return h.storageFailure(err, "create", requestID, log)
	}

	return respondData(http.StatusCreated, todo, requestID)
}

// HandleSetCompleted updates the completion flag of an existing todo.
func (h *TodoHandler) HandleSetCompleted(ctx context.Context, req *lambda.Request, id int64, requestID string, log *logrus.Entry) *lambda.Response {
	var body toggleRequest
	if apiErr := decodeBody(req, &body); apiErr != nil {
		return respondError(apiErr.status, apiErr.message, requestID)
	}
	if body.Completed == nil {
		return respondError(http.StatusBadRequest, "completed is required", requestID)
	}

	todo, err := h.todos.SetCompleted(ctx, id, *body.Completed)
	if err != nil {
		if repositories.IsNotFound(err) {
			return respondError(http.StatusNotFound, "todo not found", requestID)
		}
		return h.storageFailure(err, "set_completed", requestID, log)
	}

	return respondData(http.StatusOK, todo, requestID)
}

// HandleDelete removes a todo; deleting twice yields a 404 the second time.
func (h *TodoHandler) HandleDelete(ctx context.Context, id int64, requestID string, log *logrus.Entry) *lambda.Response {
	deleted, err := h.todos.Delete(ctx, id)
	if err != nil {
		return h.storageFailure(err, "delete", requestID, log)
	}
	if !deleted {
		return respondError(http.StatusNotFound, "todo not found", requestID)
	}

	return respondData(http.StatusOK, deleteResult{ID: id, Deleted: true}, requestID)
}
