package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under the JSON field name the client actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the struct's validate tags and flattens failures into
// a field → message map suitable for a 422 response body. Returns nil when
// the struct is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		switch fe.Tag() {
		case "required", "required_if":
			out[field] = "The " + field + " field is required."
		case "email":
			out[field] = "The " + field + " must be a valid email address."
		case "max":
			out[field] = "The " + field + " may not be greater than " + fe.Param() + " characters."
		case "datetime":
			out[field] = "The " + field + " does not match the format " + fe.Param() + "."
		case "oneof":
			out[field] = "The selected " + field + " is invalid."
		default:
			out[field] = "The " + field + " field is invalid."
		}
	}
	return out
}
