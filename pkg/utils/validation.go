package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every field of a request body that failed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Message: message}}}
}

var registerOnce sync.Once

// RegisterJSONFieldNames makes validator report wire names (itineraryId)
// instead of Go names (ItineraryID).
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// BindJSON decodes and validates the request body into obj. Any failure is
// returned as a *ValidationError.
//
// A type mismatch stops gin before validation, but the decoder still fills
// every other field, so the remaining fields are validated too and all
// failures are reported together.
func BindJSON(c *gin.Context, obj any) error {
	RegisterJSONFieldNames()
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	verr := ToValidationError(err)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if rest := binding.Validator.ValidateStruct(obj); rest != nil {
			verr.merge(ToValidationError(rest))
		}
	}
	return verr
}

// merge appends the failures of other whose field is not already reported.
func (e *ValidationError) merge(other *ValidationError) {
	for _, f := range other.Fields {
		if !e.covers(f.Field) {
			e.Fields = append(e.Fields, f)
		}
	}
}

// covers reports whether field, or a parent of it, already failed.
func (e *ValidationError) covers(field string) bool {
	for _, f := range e.Fields {
		if field == f.Field || strings.HasPrefix(field, f.Field+"[") || strings.HasPrefix(field, f.Field+".") {
			return true
		}
	}
	return false
}

// BindQuery is BindJSON for query strings.
func BindQuery(c *gin.Context, obj any) error {
	RegisterJSONFieldNames()
	if err := c.ShouldBindQuery(obj); err != nil {
		return ToValidationError(err)
	}
	return nil
}

func ToValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &verrs):
		out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Rule:    fe.Tag(),
				Message: describeRule(fe),
			})
		}
		return out
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if i := strings.IndexByte(field, '.'); i > 0 {
			field = field[:i]
		}
		if field == "" {
			field = "body"
		}
		return NewValidationError(field, "type", "must be "+describeType(typeErr.Type))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return NewValidationError("body", "json", "must be valid JSON")
	case errors.Is(err, io.EOF):
		return NewValidationError("body", "required", "request body is required")
	default:
		return NewValidationError("body", "invalid", err.Error())
	}
}

// fieldPath drops the struct name from a validator namespace:
// "CreateItineraryRequest.highlights[0]" -> "highlights[0]".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeRule(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uri", "url":
		return "must be a valid URL"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elem := describeType(t.Elem())
		elem = strings.TrimPrefix(strings.TrimPrefix(elem, "an "), "a ")
		return "an array of " + elem + "s"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Pointer:
		return describeType(t.Elem())
	default:
		return "a " + t.Kind().String()
	}
}
