package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationMessenger lets a request type override the generic per-tag messages.
// Returning ok=false falls back to the generic message.
type ValidationMessenger interface {
	ValidationMessage(field, tag, param string) (message string, ok bool)
}

func msgForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if param != "" {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return "Value is too short"
	case "max":
		if param != "" {
			return fmt.Sprintf("Must not exceed %s characters", param)
		}
		return "Value is too long"
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", param)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", param)
	case "url", "uri":
		return "Invalid URL format"
	default:
		return "Invalid value"
	}
}

func getJSONFieldName(structType reflect.Type, fieldName string) string {
	field, found := structType.FieldByName(fieldName)
	if !found {
		return fieldName
	}

	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return fieldName
	}

	return strings.Split(jsonTag, ",")[0]
}

// FormatValidationErrors converts binding errors into field-level messages.
// Syntax errors yield an empty, non-nil slice so callers can always render a list.
func FormatValidationErrors(err error, model interface{}) []ValidationErrorResponse {
	errorsList := []ValidationErrorResponse{}

	if err == nil {
		return errorsList
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// A body of the wrong shape (an array, a string) has no field to blame.
		if typeErr.Field == "" {
			return errorsList
		}
		return []ValidationErrorResponse{
			{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("Invalid type for field %s. Expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
			},
		}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errorsList
	}

	var structType reflect.Type
	if model != nil {
		structType = reflect.TypeOf(model)
		if structType.Kind() == reflect.Ptr {
			structType = structType.Elem()
		}
	}

	messenger, _ := model.(ValidationMessenger)

	for _, fieldError := range validationErrors {
		jsonField := fieldError.Field()
		if structType != nil {
			jsonField = getJSONFieldName(structType, fieldError.Field())
		}

		message := msgForTag(fieldError.Tag(), fieldError.Param())
		if messenger != nil {
			if custom, ok := messenger.ValidationMessage(jsonField, fieldError.Tag(), fieldError.Param()); ok {
				message = custom
			}
		}

		errorsList = append(errorsList, ValidationErrorResponse{
			Field:   jsonField,
			Message: message,
		})
	}

	return errorsList
}
