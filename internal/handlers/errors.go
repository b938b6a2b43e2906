package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// genericErrorMessage is the only text an internal failure ever shows a
// caller. Diagnostic detail goes to the log, not across the trust boundary.
const genericErrorMessage = "internal server error"

// apiError is a caller-visible request failure: a status from the closed
// taxonomy plus a message safe to return verbatim.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func badRequest(message string) *apiError {
	return &apiError{status: http.StatusBadRequest, message: message}
}

func notFoundError(message string) *apiError {
	return &apiError{status: http.StatusNotFound, message: message}
}

func methodNotAllowed() *apiError {
	return &apiError{status: http.StatusMethodNotAllowed, message: "method not allowed"}
}

// decodeError maps a json.Unmarshal failure to the right bad-request
// message: a field of the wrong JSON type is a validation problem, anything
// else is malformed JSON.
func decodeError(err error) *apiError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return badRequest(fmt.Sprintf("%s must be a %s", typeErr.Field, jsonTypeName(typeErr.Type)))
	}
	return badRequest("request body is not valid JSON")
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}
