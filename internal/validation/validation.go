// Package validation enforces the field constraints on student payloads
// before anything reaches the storage layer.
//
// The rules themselves live as validate:"..." struct tags on the types
// in internal/types; this package owns the validator instance, the
// custom class_year rule, and the translation of raw validator errors
// into FieldErrors that carry enough detail (field, rule, offending
// value) for a client to correct its request.
//
// Handlers call the exported ValidateXxx functions explicitly — there
// is no framework magic between decoding a body and validating it.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meera-nair/student-records-api/internal/types"
)

// classYearPattern accepts "year " followed by one or more digits:
// "year 7", "year 11", but not "grade 11" or "year eleven".
var classYearPattern = regexp.MustCompile(`^year \d+$`)

// validate is shared by every request. A validator.Validate instance
// caches struct metadata internally and is safe for concurrent use, so
// building it once at package init is both correct and cheap.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the JSON field name ("class_year"), not the
	// Go field name ("ClassYear") — clients only ever see the former.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom rule backing the validate:"class_year" tag.
	if err := v.RegisterValidation("class_year", func(fl validator.FieldLevel) bool {
		return classYearPattern.MatchString(fl.Field().String())
	}); err != nil {
		// Registration only fails on a programming error (empty tag
		// name), never on user input.
		panic(fmt.Sprintf("validation: register class_year rule: %v", err))
	}

	return v
}

// FieldError describes a single constraint violation on one field.
type FieldError struct {
	// Field is the JSON name of the offending field, e.g. "class_year".
	Field string `json:"field"`
	// Rule is the constraint that failed, e.g. "min", "class_year".
	Rule string `json:"rule"`
	// Value is the value the client actually sent.
	Value any `json:"value"`
}

// Message renders a single violation as a human-readable sentence.
func (e FieldError) Message() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("field %s is required", e.Field)
	case "min":
		return fmt.Sprintf("field %s is too short", e.Field)
	case "max":
		return fmt.Sprintf("field %s is too long", e.Field)
	case "gte", "lte":
		return fmt.Sprintf("field %s must be between 1 and 99", e.Field)
	case "class_year":
		return fmt.Sprintf("field %s must look like \"year 11\"", e.Field)
	default:
		return fmt.Sprintf("field %s is invalid", e.Field)
	}
}

// FieldErrors is the error type every ValidateXxx function returns on
// failure. It implements error so handlers can pass it around like any
// other error and recover the per-field detail with errors.As.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message())
	}
	return strings.Join(msgs, ", ")
}

// ValidateCreate checks a full creation payload: all three fields must
// be present and within their constraints. Returns FieldErrors listing
// every violation, or nil if the payload is valid.
func ValidateCreate(req types.CreateStudentRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs := err.(validator.ValidationErrors)
	fieldErrs := make(FieldErrors, 0, len(verrs))
	for _, ve := range verrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field: ve.Field(),
			Rule:  ve.Tag(),
			Value: ve.Value(),
		})
	}
	return fieldErrs
}

// ValidateUpdate checks a partial payload: absent fields are skipped
// entirely, present fields are held to the same constraints as
// creation. An empty payload is valid (the update is a no-op).
func ValidateUpdate(req types.UpdateStudentRequest) error {
	var fieldErrs FieldErrors

	if req.Name.Set {
		if err := validate.Var(req.Name.Value, "min=2,max=50"); err != nil {
			fieldErrs = append(fieldErrs, varError("name", req.Name.Value, err))
		}
	}
	if req.Age.Set {
		if err := validate.Var(req.Age.Value, "gte=1,lte=99"); err != nil {
			fieldErrs = append(fieldErrs, varError("age", req.Age.Value, err))
		}
	}
	if req.ClassYear.Set {
		if err := validate.Var(req.ClassYear.Value, "class_year"); err != nil {
			fieldErrs = append(fieldErrs, varError("class_year", req.ClassYear.Value, err))
		}
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// ValidateSearchQuery checks the ?name= query parameter on the search
// endpoint. The query must be at least 2 characters — anything shorter
// would match on noise.
func ValidateSearchQuery(name string) error {
	if err := validate.Var(name, "required,min=2"); err != nil {
		return FieldErrors{varError("name", name, err)}
	}
	return nil
}

// varError converts the first violation from a validate.Var call into a
// FieldError. Var reports errors without a field name (it validates a
// bare value), so the caller supplies one.
func varError(field string, value any, err error) FieldError {
	verrs := err.(validator.ValidationErrors)
	return FieldError{
		Field: field,
		Rule:  verrs[0].Tag(),
		Value: value,
	}
}
