package conference

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// ValidationErrors maps field names to the constraint messages that failed.
type ValidationErrors map[Field]string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "conference: invalid form data"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[Field(field)])
	}
	return "conference: invalid form data: " + strings.Join(parts, "; ")
}

// Validate applies the constraints an HTML form would enforce before the
// submit event fires: required inputs must be filled and the deadline must
// be a date.
func (d FormData) Validate() error {
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("conference: validate: %w", err)
	}

	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = constraintMessage(field, fe.Tag())
	}
	return out
}

func constraintMessage(field Field, tag string) string {
	label := string(field)
	if meta, ok := Meta(field); ok {
		label = meta.Label
	}
	switch tag {
	case "required":
		return label + " is required"
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	default:
		return label + " is invalid"
	}
}
