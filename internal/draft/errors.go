package draft

import (
	"fmt"
	"strings"
)

// Error codes reported per field
const (
	CodeRequired      = "required"
	CodeNotANumber    = "not_a_number"
	CodeOutOfRange    = "out_of_range"
	CodeInvalidChoice = "invalid_choice"
	CodeInvalidDate   = "invalid_date"
)

// FieldError describes why a single draft field was rejected
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError is returned when a draft cannot be committed
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid draft: " + strings.Join(parts, "; ")
}

// Has reports whether field was rejected
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

type fieldErrors struct {
	list []FieldError
}

func (fe *fieldErrors) add(field, code, msg string) {
	for _, f := range fe.list {
		if f.Field == field {
			return
		}
	}
	fe.list = append(fe.list, FieldError{Field: field, Code: code, Message: msg})
}

func (fe *fieldErrors) err() error {
	if len(fe.list) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe.list}
}
