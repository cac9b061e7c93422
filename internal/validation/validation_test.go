package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera-nair/student-records-api/internal/types"
)

// validCreate is a baseline payload that individual tests mutate.
func validCreate() types.CreateStudentRequest {
	return types.CreateStudentRequest{
		Name:      "Alice Smith",
		Age:       16,
		ClassYear: "year 11",
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		require.NoError(t, ValidateCreate(validCreate()))
	})

	// Boundary values sit exactly on the edges of each constraint.
	t.Run("boundaries", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*types.CreateStudentRequest)
			wantErr bool
		}{
			{"age 1 accepted", func(r *types.CreateStudentRequest) { r.Age = 1 }, false},
			{"age 99 accepted", func(r *types.CreateStudentRequest) { r.Age = 99 }, false},
			{"age 0 rejected", func(r *types.CreateStudentRequest) { r.Age = 0 }, true},
			{"age 100 rejected", func(r *types.CreateStudentRequest) { r.Age = 100 }, true},
			{"name length 2 accepted", func(r *types.CreateStudentRequest) { r.Name = "Jo" }, false},
			{"name length 50 accepted", func(r *types.CreateStudentRequest) { r.Name = strings.Repeat("a", 50) }, false},
			{"name length 1 rejected", func(r *types.CreateStudentRequest) { r.Name = "J" }, true},
			{"name length 51 rejected", func(r *types.CreateStudentRequest) { r.Name = strings.Repeat("a", 51) }, true},
			{"class_year year 12 accepted", func(r *types.CreateStudentRequest) { r.ClassYear = "year 12" }, false},
			{"class_year year 7 accepted", func(r *types.CreateStudentRequest) { r.ClassYear = "year 7" }, false},
			{"class_year grade 12 rejected", func(r *types.CreateStudentRequest) { r.ClassYear = "grade 12" }, true},
			{"class_year bare year rejected", func(r *types.CreateStudentRequest) { r.ClassYear = "year " }, true},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validCreate()
				tc.mutate(&req)

				err := ValidateCreate(req)
				if tc.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("missing fields reported per field", func(t *testing.T) {
		err := ValidateCreate(types.CreateStudentRequest{})
		require.Error(t, err)

		fieldErrs, ok := err.(FieldErrors)
		require.True(t, ok)
		require.Len(t, fieldErrs, 3)

		// Errors use JSON field names, not Go field names.
		fields := []string{fieldErrs[0].Field, fieldErrs[1].Field, fieldErrs[2].Field}
		assert.ElementsMatch(t, []string{"name", "age", "class_year"}, fields)
		for _, fe := range fieldErrs {
			assert.Equal(t, "required", fe.Rule)
		}
	})

	t.Run("violation carries field, rule, and value", func(t *testing.T) {
		req := validCreate()
		req.Age = 130

		err := ValidateCreate(req)
		require.Error(t, err)

		fieldErrs := err.(FieldErrors)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "age", fieldErrs[0].Field)
		assert.Equal(t, "lte", fieldErrs[0].Rule)
		assert.Equal(t, 130, fieldErrs[0].Value)
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty payload is valid", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(types.UpdateStudentRequest{}))
	})

	t.Run("present fields use creation constraints", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(types.UpdateStudentRequest{
			Name: types.Some("Bob"),
		}))

		err := ValidateUpdate(types.UpdateStudentRequest{
			Name: types.Some("B"),
		})
		require.Error(t, err)

		fieldErrs := err.(FieldErrors)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "name", fieldErrs[0].Field)
		assert.Equal(t, "min", fieldErrs[0].Rule)
		assert.Equal(t, "B", fieldErrs[0].Value)
	})

	t.Run("absent fields are skipped", func(t *testing.T) {
		// Only age is present and valid; name/class_year zero values
		// would fail if they were checked.
		assert.NoError(t, ValidateUpdate(types.UpdateStudentRequest{
			Age: types.Some(42),
		}))
	})

	t.Run("multiple present violations all reported", func(t *testing.T) {
		err := ValidateUpdate(types.UpdateStudentRequest{
			Age:       types.Some(0),
			ClassYear: types.Some("grade 9"),
		})
		require.Error(t, err)
		assert.Len(t, err.(FieldErrors), 2)
	})
}

func TestValidateSearchQuery(t *testing.T) {
	assert.NoError(t, ValidateSearchQuery("Jo"))
	assert.Error(t, ValidateSearchQuery("J"))
	assert.Error(t, ValidateSearchQuery(""))
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{
		{Field: "age", Rule: "lte", Value: 130},
		{Field: "class_year", Rule: "class_year", Value: "grade 9"},
	}
	msg := errs.Error()
	assert.Contains(t, msg, "age")
	assert.Contains(t, msg, "class_year")
}
