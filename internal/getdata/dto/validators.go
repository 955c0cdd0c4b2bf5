package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var reportNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// NewValidator builds a validator with the service's custom rules and
// the ReportInput cross-field date rules registered.
func NewValidator() *validator.Validate {
	validate := validator.New()
	if err := RegisterCustomValidators(validate); err != nil {
		// Registration only fails on empty tag names, which would be a
		// programming error.
		panic(err)
	}
	validate.RegisterStructValidation(reportInputDateRules, ReportInput{})
	return validate
}

// RegisterCustomValidators registers the custom validation tags used by
// the request and response DTOs.
func RegisterCustomValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		return fmt.Errorf("failed to register notblank validator: %w", err)
	}
	if err := validate.RegisterValidation("notfuture", validateNotFuture); err != nil {
		return fmt.Errorf("failed to register notfuture validator: %w", err)
	}
	if err := validate.RegisterValidation("notempty", validateNotEmpty); err != nil {
		return fmt.Errorf("failed to register notempty validator: %w", err)
	}
	if err := validate.RegisterValidation("report_name", validateReportName); err != nil {
		return fmt.Errorf("failed to register report_name validator: %w", err)
	}
	if err := validate.RegisterValidation("locale", validateLocale); err != nil {
		return fmt.Errorf("failed to register locale validator: %w", err)
	}
	return nil
}

// validateNotBlank rejects empty and whitespace-only strings
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateNotFuture rejects timestamps after now; the zero value is
// vacuously valid, per the optional-unless-required convention
func validateNotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return !t.After(time.Now())
}

// validateNotEmpty rejects empty collections
func validateNotEmpty(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return fl.Field().Len() > 0
	default:
		return false
	}
}

// validateReportName restricts report names to the legacy character set
func validateReportName(fl validator.FieldLevel) bool {
	return reportNamePattern.MatchString(fl.Field().String())
}

// validateLocale accepts identifiers that resolve to a recognized locale
func validateLocale(fl validator.FieldLevel) bool {
	_, err := language.Parse(fl.Field().String())
	return err == nil
}

// reportInputDateRules enforces the cross-field date constraints:
// StartDate <= EndDate, span <= 365 days, neither more than one year out.
func reportInputDateRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(ReportInput)
	horizon := time.Now().AddDate(1, 0, 0)

	if in.StartDate != nil && in.EndDate != nil {
		if in.StartDate.After(*in.EndDate) {
			sl.ReportError(in.StartDate, "StartDate", "StartDate", "daterange", "")
		} else if in.EndDate.Sub(*in.StartDate) > 365*24*time.Hour {
			sl.ReportError(in.EndDate, "EndDate", "EndDate", "datespan", "")
		}
	}
	if in.StartDate != nil && in.StartDate.After(horizon) {
		sl.ReportError(in.StartDate, "StartDate", "StartDate", "datefuture", "")
	}
	if in.EndDate != nil && in.EndDate.After(horizon) {
		sl.ReportError(in.EndDate, "EndDate", "EndDate", "datefuture", "")
	}
}

// ValidationError aggregates every violated constraint on an object graph
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// ValidateStruct validates an object graph and returns all violations as
// human-readable messages. Evaluation is exhaustive; it never stops at
// the first failure.
func ValidateStruct(validate *validator.Validate, s interface{}) []string {
	var messages []string

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				messages = append(messages, formatValidationError(fe))
			}
		} else {
			messages = append(messages, err.Error())
		}
	}

	return messages
}

// ValidateAndError validates an object graph and returns a structured
// error carrying all violations, for use at API boundaries.
func ValidateAndError(validate *validator.Validate, s interface{}) error {
	if messages := ValidateStruct(validate, s); len(messages) > 0 {
		return &ValidationError{Errors: messages}
	}
	return nil
}

// formatValidationError formats a violation, prefixing errors inside
// nested collections with their index (e.g. "Items[0]: ...") so they are
// traceable to the offending element.
func formatValidationError(err validator.FieldError) string {
	message := fieldMessage(err)

	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if j := strings.LastIndex(ns, "."); j >= 0 {
		if prefix := ns[:j]; strings.Contains(prefix, "[") {
			return prefix + ": " + message
		}
	}
	return message
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", err.Field(), err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters long", err.Field(), err.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("%s must contain at most %s entries", err.Field(), err.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}
	case "gt":
		if err.Param() == "0" {
			return fmt.Sprintf("%s must be positive", err.Field())
		}
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", err.Field())
	case "locale":
		return fmt.Sprintf("%s must be a recognized locale identifier", err.Field())
	case "report_name":
		return fmt.Sprintf("%s may only contain letters, numbers, spaces, hyphens and underscores", err.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be empty or whitespace", err.Field())
	case "notfuture":
		return fmt.Sprintf("%s must not be in the future", err.Field())
	case "notempty":
		return fmt.Sprintf("%s must contain at least one item", err.Field())
	case "daterange":
		return "StartDate must be on or before EndDate"
	case "datespan":
		return "date range must not exceed 365 days"
	case "datefuture":
		return fmt.Sprintf("%s must not be more than one year in the future", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}
