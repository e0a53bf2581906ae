package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/errors"
)

var validate *validator.Validate

// macAddressPattern accepts six hex octets with optional ':' or '-' separators.
var macAddressPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]?){5}([0-9A-Fa-f]{2})$`)

// init initializes the validator
func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("macaddr", func(fl validator.FieldLevel) bool {
		return IsMACAddress(fl.Field().String())
	})
	_ = validate.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return notAfterToday(fl.Field())
	})
}

// IsMACAddress reports whether s is a 6-octet hex MAC address.
func IsMACAddress(s string) bool {
	return len(s) >= 12 && len(s) <= 17 && macAddressPattern.MatchString(s)
}

// notAfterToday accepts time.Time, *time.Time or YYYY-MM-DD string values no
// later than the end of the current business day.
func notAfterToday(field reflect.Value) bool {
	var t time.Time
	switch v := field.Interface().(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return true
		}
		t = *v
	case string:
		if v == "" {
			return true
		}
		parsed, err := ParseDate(v)
		if err != nil {
			return false
		}
		t = *parsed
	default:
		return false
	}
	return !t.After(biztime.EndOfDayUTC(biztime.NowUTC()))
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	// One message per field, in declaration order.
	msgs := make([]string, len(validationErrors))
	for i, fe := range validationErrors {
		msgs[i] = getFieldErrorMessage(fe)
	}
	return errors.NewValidationError("Validation failed", strings.Join(msgs, "; "))
}

// fieldMessages maps a validator tag to its message. %[1]s is the JSON field
// name and %[2]s the tag parameter.
var fieldMessages = map[string]string{
	"required":  "%[1]s is required",
	"email":     "%[1]s must be a valid email address",
	"gt":        "%[1]s must be greater than %[2]s",
	"gte":       "%[1]s must be greater than or equal to %[2]s",
	"lte":       "%[1]s must be less than or equal to %[2]s",
	"oneof":     "%[1]s must be one of [%[2]s]",
	"uuid":      "%[1]s must be a valid UUID",
	"ip":        "%[1]s must be a valid IP address",
	"ipv4":      "%[1]s must be a valid IP address",
	"macaddr":   "%[1]s must be a valid MAC address",
	"datetime":  "%[1]s must be a date in %[2]s format",
	"notfuture": "%[1]s cannot be in the future",
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	switch tag {
	case "min", "max":
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s %s characters long", field, bound, param)
		}
		return fmt.Sprintf("%s must be %s %s", field, bound, param)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, strings.Replace(param, " ", " is ", 1))
	case "excluded_unless":
		return fmt.Sprintf("%s must be empty unless %s", field, strings.Replace(param, " ", " is ", 1))
	}

	if msg, ok := fieldMessages[tag]; ok {
		return fmt.Sprintf(msg, field, param)
	}
	return fmt.Sprintf("%s failed validation for '%s'", field, tag)
}

// ValidateID validates that an ID string is a well-formed UUID
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("ID cannot be empty")
	}
	if err := validate.Var(id, "uuid"); err != nil {
		return errors.NewValidationError("ID must be a valid UUID", id)
	}
	return nil
}
