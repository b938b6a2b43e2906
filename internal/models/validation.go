package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxTextLength is the upper bound on todo text after trimming.
const MaxTextLength = 500

var validate = validator.New()

// ValidationError describes a field-level contract violation. The message is
// safe to return to callers verbatim.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NormalizeText trims the raw todo text and enforces the length contract,
// returning the form that gets persisted.
func NormalizeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	err := validate.Var(text, fmt.Sprintf("required,max=%d", MaxTextLength))
	if err == nil {
		return text, nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			switch fe.Tag() {
			case "required":
				return "", &ValidationError{Field: "text", Message: "text must not be empty"}
			case "max":
				return "", &ValidationError{
					Field:   "text",
					Message: fmt.Sprintf("text must not exceed %d characters", MaxTextLength),
				}
			}
		}
	}
	return "", &ValidationError{Field: "text", Message: "text is invalid"}
}
