package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"datewise/internal/models/response_models"
)

// FieldIssue points at one field that failed decoding or validation.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var validate = newValidator()

// wireName reports the json name of a field, or its form name for query
// structs, so that diagnostics match what the client or provider sent.
func wireName(fld reflect.StructField) string {
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
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)

	_ = v.RegisterValidation("placetag", func(fl validator.FieldLevel) bool {
		return response_models.Tag(fl.Field().String()).Valid()
	})

	return v
}

// ConfigureBindingValidator makes gin's request binding report wire names.
func ConfigureBindingValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

// ValidateStruct runs the `validate` tags of v and returns the failing
// fields, or nil when v is valid.
func ValidateStruct(v any) []FieldIssue {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	return FieldIssues(err)
}

// FieldIssues flattens validator and json decoding errors into FieldIssue
// values. Any other error becomes a single issue with an empty path.
func FieldIssues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]FieldIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, FieldIssue{
				Path:    trimRoot(fe.Namespace()),
				Message: describeTag(fe),
			})
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldIssue{{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []FieldIssue{{
			Message: fmt.Sprintf("malformed JSON at offset %d: %v", syntaxErr.Offset, syntaxErr),
		}}
	}

	return []FieldIssue{{Message: err.Error()}}
}

// DecodeAndValidate unmarshals raw into dst and validates the result.
func DecodeAndValidate(raw []byte, dst any) []FieldIssue {
	if err := json.Unmarshal(raw, dst); err != nil {
		return FieldIssues(err)
	}
	return ValidateStruct(dst)
}

func trimRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte", "min":
		return "must be >= " + fe.Param()
	case "lte", "max":
		return "must be <= " + fe.Param()
	case "placetag":
		return fmt.Sprintf("unknown tag %v", fe.Value())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed on %s=%s", fe.Tag(), fe.Param())
	}
	return "failed on " + fe.Tag()
}
