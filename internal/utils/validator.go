package utils

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func InitValidator() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// report fields by their form name so messages line up with the inputs
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	_ = Validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
}

// ParseDate accepts a date input value (YYYY-MM-DD) or a full RFC 3339
// timestamp and returns midnight UTC of the calendar date it names.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(value))
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FieldErrors converts validator errors into field -> message pairs. Fields
// without an entry in messages fall back to the validator's own text.
func FieldErrors(err error, messages map[string]string) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			out[fe.Field()] = msg
			continue
		}
		out[fe.Field()] = fe.Error()
	}
	return out
}
