package rest

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/publisher-backend/internal/domain"
)

// dateLayouts are the accepted ISO-8601 forms, tried in order. Forms without
// an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("blank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) == ""
	})

	_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// parseDate accepts an RFC 3339 date-time (fractional seconds allowed), the
// same without an offset, or a calendar date. The result is in UTC, truncated
// to the microsecond precision PostgreSQL stores.
func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}
	return time.Time{}, err
}

// validateRequest runs struct validation and converts failures into a
// *domain.ValidationError.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	// "blank|http_url" reports the whole alternation as its tag.
	if strings.Contains(fe.Tag(), "http_url") {
		return "must be an absolute http(s) URL"
	}

	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be a positive integer"
	case "iso8601":
		return "must be an ISO-8601 date"
	default:
		return "invalid value (" + fe.Tag() + ")"
	}
}
