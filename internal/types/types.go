// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and validation can all import types without
// depending on each other.
package types

// Student is a stored student record.
//
// ID is generated by the storage layer at creation time (a UUID string)
// and never changes afterwards; clients must not supply it.
//
// The json:"..." tags control how fields appear on the wire — lowercase
// snake_case names match the REST API conventions this service exposes.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	ClassYear string `json:"class_year"`
}

// CreateStudentRequest is the payload for POST /students.
//
// All three fields are required. The validate:"..." tags are the rules
// checked by go-playground/validator — internal/validation invokes them
// explicitly at the handler boundary:
//
//	name       — 2 to 50 characters
//	age        — 1 to 99 inclusive
//	class_year — must match "year " followed by digits ("year 11")
//
// "class_year" is a custom rule registered in internal/validation.
type CreateStudentRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=50"`
	Age       int    `json:"age"        validate:"required,gte=1,lte=99"`
	ClassYear string `json:"class_year" validate:"required,class_year"`
}

// UpdateStudentRequest is the payload for PATCH /students/{id}.
//
// Every field is wrapped in Optional so the handler can tell the
// difference between "the client did not send this field" (leave it
// alone) and "the client sent this field" (validate and overwrite).
// A plain pointer cannot make that distinction for an explicit null.
//
// Fields that are present are validated with the exact same rules as
// CreateStudentRequest.
type UpdateStudentRequest struct {
	Name      Optional[string] `json:"name"`
	Age       Optional[int]    `json:"age"`
	ClassYear Optional[string] `json:"class_year"`
}

// IsEmpty reports whether the payload carries no fields at all.
// An empty PATCH body is legal and leaves the record unchanged.
func (r UpdateStudentRequest) IsEmpty() bool {
	return !r.Name.Set && !r.Age.Set && !r.ClassYear.Set
}
