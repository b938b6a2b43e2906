package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/models"
	"todo-serverless-api/internal/repositories"
)

// SetupRoutes configures the gin engine with the same routing table the
// Lambda dispatcher implements, for local development.
func SetupRoutes(router *gin.Engine, h *TodoHandler) {
	router.HandleMethodNotAllowed = true

	router.GET("/health", h.Health)

	todos := router.Group("/todos")
	{
		todos.GET("", h.ListTodos)
		todos.POST("", h.CreateTodo)
		todos.PATCH("/:id", h.ToggleTodo)
		todos.DELETE("/:id", h.DeleteTodo)
	}

	router.NoRoute(func(c *gin.Context) {
		ginError(c, notFoundError("not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		ginError(c, methodNotAllowed())
	})
}

func ginError(c *gin.Context, apiErr *apiError) {
	c.JSON(apiErr.status, errorEnvelope{Error: errorBody{Message: apiErr.message}})
}

func (h *TodoHandler) ginStorageFailure(c *gin.Context, err error, op string) {
	h.logger.WithError(err).WithFields(logrus.Fields{
		"op":   op,
		"path": c.Request.URL.Path,
	}).Error("Storage operation failed")
	c.JSON(http.StatusInternalServerError, errorEnvelope{Error: errorBody{Message: genericErrorMessage}})
}

func ginDecode(c *gin.Context, dst interface{}) *apiError {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return badRequest("request body is required")
	}
	return decodeError(err)
}

// Health handles GET /health.
func (h *TodoHandler) Health(c *gin.Context) {
	if err := h.todos.HealthCheck(c.Request.Context()); err != nil {
		h.ginStorageFailure(c, err, "health_check")
		return
	}
	c.JSON(http.StatusOK, dataEnvelope{Data: healthResult{OK: true}})
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.todos.List(c.Request.Context())
	if err != nil {
		h.ginStorageFailure(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, dataEnvelope{Data: todos})
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var body createRequest
	if apiErr := ginDecode(c, &body); apiErr != nil {
		ginError(c, apiErr)
		return
	}
	if body.Text == nil {
		ginError(c, badRequest("text is required"))
		return
	}

	text, err := models.NormalizeText(*body.Text)
	if err != nil {
		ginError(c, badRequest(err.Error()))
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), text)
	if err != nil {
		h.ginStorageFailure(c, err, "create")
		return
	}

	c.JSON(http.StatusCreated, dataEnvelope{Data: todo})
}

// ToggleTodo handles PATCH /todos/:id.
func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		ginError(c, badRequest("id must be a positive integer"))
		return
	}

	var body toggleRequest
	if apiErr := ginDecode(c, &body); apiErr != nil {
		ginError(c, apiErr)
		return
	}
	if body.Completed == nil {
		ginError(c, badRequest("completed is required"))
		return
	}

	todo, err := h.todos.SetCompleted(c.Request.Context(), id, *body.Completed)
	if err != nil {
		if repositories.IsNotFound(err) {
			ginError(c, notFoundError("todo not found"))
			return
		}
		h.ginStorageFailure(c, err, "set_completed")
		return
	}

	c.JSON(http.StatusOK, dataEnvelope{Data: todo})
}

// DeleteTodo handles DELETE /todos/:id.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		ginError(c, badRequest("id must be a positive integer"))
		return
	}

	deleted, err := h.todos.Delete(c.Request.Context(), id)
	if err != nil {
		h.ginStorageFailure(c, err, "delete")
		return
	}
	if !deleted {
		ginError(c, notFoundError("todo not found"))
		return
	}

	c.JSON(http.StatusOK, dataEnvelope{Data: deleteResult{ID: id, Deleted: true}})
}
