package validation

import (
	"errors"
	"reflect"
	"strings"

	"bordero/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldError names a field that keeps a borderò from being exported.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// IsComplete reports whether r can be exported.
func IsComplete(r models.Record) bool {
	return len(Check(r)) == 0
}

// Check lists every field that is missing from r, in document order: the seven
// event fields, the common performer fields, then the identifier required by
// the performer mode. Band members are never checked.
func Check(r models.Record) []FieldError {
	var out []FieldError

	out = appendErrors(out, "event", validate.Struct(r.Event))
	out = appendErrors(out, "performer", validate.Struct(r.Performer))
	out = appendErrors(out, "performer", validate.Struct(r.Performer.Identity()))

	return out
}

func appendErrors(out []FieldError, section string, err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}

	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: section + "." + fe.Field(),
			Rule:  fe.Tag(),
		})
	}

	return out
}
