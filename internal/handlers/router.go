package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/repositories"
	"todo-serverless-api/pkg/lambda"
)

// Router maps one invocation event to exactly one operation: health, list,
// create, toggle, delete, preflight, or a rejection. It never touches
// storage itself.
type Router struct {
	todos  *TodoHandler
	logger *logrus.Logger
}

// NewRouter creates a router dispatching to the given repository.
func NewRouter(repo repositories.TodoRepository, logger *logrus.Logger) *Router {
	return &Router{
		todos:  NewTodoHandler(repo, logger),
		logger: logger,
	}
}

// Dispatch resolves and executes the operation for one invocation. It
// always produces a response; every failure is mapped to the error
// envelope, nothing propagates to the host as a handler error.
func (rt *Router) Dispatch(ctx context.Context, req *lambda.Request) *lambda.Response {
	requestID := requestIDFrom(req)
	path := normalizePath(req.Path)

	log := rt.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       path,
	})

	resp := rt.route(ctx, req, path, requestID, log)

	log.WithField("status", resp.StatusCode).Info("Request handled")
	return resp
}

func (rt *Router) route(ctx context.Context, req *lambda.Request, path, requestID string, log *logrus.Entry) *lambda.Response {
	if req.Method == http.MethodOptions {
		return respondNoContent(requestID)
	}

	switch {
	case path == "/health":
		if req.Method != http.MethodGet {
			apiErr := methodNotAllowed()
			return respondError(apiErr.status, apiErr.message, requestID)
		}
		return rt.todos.HandleHealth(ctx, requestID, log)

	case path == "/todos":
		switch req.Method {
		case http.MethodGet:
			return rt.todos.HandleList(ctx, requestID, log)
		case http.MethodPost:
			return rt.todos.HandleCreate(ctx, req, requestID, log)
		default:
			apiErr := methodNotAllowed()
			return respondError(apiErr.status, apiErr.message, requestID)
		}
	}

	// /todos/{id}: the route matches on shape first, so a malformed id is a
	// bad request rather than an unknown route.
	if segments := splitPath(path); len(segments) == 2 && segments[0] == "todos" {
		id, err := parseID(segments[1])
		if err != nil {
			return respondError(http.StatusBadRequest, "id must be a positive integer", requestID)
		}

		switch req.Method {
		case http.MethodPatch:
			return rt.todos.HandleSetCompleted(ctx, req, id, requestID, log)
		case http.MethodDelete:
			return rt.todos.HandleDelete(ctx, id, requestID, log)
		default:
			apiErr := methodNotAllowed()
			return respondError(apiErr.status, apiErr.message, requestID)
		}
	}

	return respondError(http.StatusNotFound, "not found", requestID)
}

// normalizePath ensures a leading slash and strips a single trailing slash,
// leaving the root path alone.
func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// parseID accepts positive base-10 integers only.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

// requestIDFrom reuses the caller's X-Request-ID when present so log lines
// correlate across hops, generating one otherwise.
func requestIDFrom(req *lambda.Request) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, "X-Request-ID") && v != "" {
			return v
		}
	}
	return uuid.New().String()
}
