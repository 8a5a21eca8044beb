package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// RequestValidator checks decoded request bodies against their validate tags
type RequestValidator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	requestValid  *RequestValidator
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *RequestValidator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("sortmetric", validateSortMetric)
		_ = v.RegisterValidation("price", validatePrice)
		requestValid = &RequestValidator{validate: v}
	})
	return requestValid
}

// ValidateStruct validates a struct using tags
func (v *RequestValidator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// jsonFieldName reports fields under the name clients send
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// FormatValidationError maps each failing field, by JSON path such as prices[2].price, to a message.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[fieldPath(e)] = fieldMessage(e)
	}
	return errs
}

// fieldPath drops the root struct name from the namespace
func fieldPath(e validator.FieldError) string {
	if _, path, ok := strings.Cut(e.Namespace(), "."); ok {
		return path
	}
	return e.Field()
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "sortmetric":
		return ErrMsgInvalidSortMetricError
	case "price":
		return ErrMsgInvalidPriceError
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("At most %s entries", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("At least %s entries", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "excludesall":
		return "Contains invalid characters"
	default:
		return "Invalid value"
	}
}

// validateSortMetric accepts the ranking sort keys; empty is allowed
func validateSortMetric(fl validator.FieldLevel) bool {
	return domain.SortMetric(fl.Field().String()).IsValid()
}

func validatePrice(fl validator.FieldLevel) bool {
	return domain.ValidPrice(fl.Field().Int())
}
