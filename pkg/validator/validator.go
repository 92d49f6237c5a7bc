package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrInvalidJSON is returned by DecodeJSON when the request body is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validator: %v", err))
	}
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Messages flattens validation errors into an ordered list of messages.
// Order follows struct field declaration order. A field listed in overrides
// uses that message instead of the generic per-tag text.
func Messages(err error, overrides map[string]string) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		if msg, ok := overrides[e.Field()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", e.Field(), formatFieldError(e)))
	}
	return out
}

func formatFieldError(e validator.FieldError) string {
	if e.Tag() == "notblank" {
		return "Must not be blank"
	}
	return fmt.Sprintf("Validation failed on '%s'", e.Tag())
}

// DecodeJSON decodes the JSON request body into T.
//
// An empty body decodes to the zero T so that field validation, not parsing,
// reports the missing fields. The body must hold exactly one JSON value:
// syntax errors and trailing content wrap ErrInvalidJSON. Body-limit errors
// (*http.MaxBytesError) are returned as-is for the caller to map to 413.
func DecodeJSON[T any](r *http.Request) (*T, error) {
	var req T
	if r.Body == nil {
		return &req, nil
	}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&req)
	switch {
	case errors.Is(err, io.EOF):
		return &req, nil
	case err != nil:
		return nil, decodeFailed(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, decodeFailed(err)
	}
	return &req, nil
}

func decodeFailed(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
