package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingField        = errors.New("missing field")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Error is a classified validation failure naming the offending fields.
// errors.Is matches it against its Kind.
type Error struct {
	Kind   error
	Fields []string
	// After names the field a range check compared against.
	After string
}

func (e *Error) Error() string {
	fields := strings.Join(e.Fields, ", ")
	switch e.Kind {
	case ErrMissingField:
		return "missing required field(s): " + fields
	case ErrInvalidDateRange:
		return fmt.Sprintf("%s must be after %s", fields, e.After)
	default:
		return "invalid value for field(s): " + fields
	}
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Missing builds a MissingField error for checks that cannot be expressed
// as struct tags.
func Missing(fields ...string) error {
	return &Error{Kind: ErrMissingField, Fields: fields}
}

// Invalid builds a ConstraintViolation error.
func Invalid(fields ...string) error {
	return &Error{Kind: ErrConstraintViolation, Fields: fields}
}

// Validator applies the validate tags declared on entities.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// Report JSON names so messages match the wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate checks i against its schema. A reversed date range wins over
// every other failure, then missing fields, then constraint violations.
func (v *Validator) Validate(i interface{}) error {
	err := v.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var ranges, missing, invalid []string
	after := ""
	for _, fe := range verrs {
		field := fieldPath(fe)
		switch {
		case isRangeTag(fe.Tag()):
			ranges = append(ranges, field)
			after = lowerFirst(fe.Param())
		case strings.HasPrefix(fe.Tag(), "required"):
			missing = append(missing, field)
		default:
			invalid = append(invalid, field)
		}
	}

	switch {
	case len(ranges) > 0:
		return &Error{Kind: ErrInvalidDateRange, Fields: ranges, After: after}
	case len(missing) > 0:
		return &Error{Kind: ErrMissingField, Fields: missing}
	default:
		return &Error{Kind: ErrConstraintViolation, Fields: invalid}
	}
}

func isRangeTag(tag string) bool {
	switch tag {
	case "gtfield", "gtefield", "ltfield", "ltefield":
		return true
	}
	return false
}

// fieldPath drops the root struct name: "Invoice.items[0].description"
// becomes "items[0].description".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
