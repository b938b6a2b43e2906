package handlers

import (
	"encoding/json"
	"net/http"

	"todo-serverless-api/pkg/lambda"
)

// Cross-origin metadata attached to every response, success or error.
// Credentials stay disabled, so no Allow-Credentials header is emitted.
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type, Authorization, X-Request-ID"
	corsAllowMethods = "GET, POST, PATCH, DELETE, OPTIONS"
)

type dataEnvelope struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
}

func corsHeaders(requestID string) map[string]string {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  corsAllowOrigin,
		"Access-Control-Allow-Headers": corsAllowHeaders,
		"Access-Control-Allow-Methods": corsAllowMethods,
	}
	if requestID != "" {
		headers["X-Request-ID"] = requestID
	}
	return headers
}

func respondData(status int, payload interface{}, requestID string) *lambda.Response {
	body, err := json.Marshal(dataEnvelope{Data: payload})
	if err != nil {
		return respondError(http.StatusInternalServerError, genericErrorMessage, requestID)
	}

	headers := corsHeaders(requestID)
	headers["Content-Type"] = "application/json"

	return &lambda.Response{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

func respondError(status int, message string, requestID string) *lambda.Response {
	body, _ := json.Marshal(errorEnvelope{Error: errorBody{Message: message}})

	headers := corsHeaders(requestID)
	headers["Content-Type"] = "application/json"

	return &lambda.Response{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

// respondNoContent is the CORS preflight response: 204, empty body, CORS
// metadata only.
func respondNoContent(requestID string) *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusNoContent,
		Headers:    corsHeaders(requestID),
		Body:       "",
	}
}

// InternalErrorResponse is the generic 500 envelope, used by entrypoints
// when dependency initialization itself fails.
func InternalErrorResponse() *lambda.Response {
	return respondError(http.StatusInternalServerError, genericErrorMessage, "")
}
