// Package storage defines the Storage interface — a contract that any
// record-store backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care where records live. By
// depending only on this interface:
//
//   - Swapping the in-memory store for a durable one later = implement
//     the interface, change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//
// The store is also never a package-level singleton: main constructs it
// at startup and threads it through the handler factories.
package storage

import (
	"errors"

	"github.com/meera-nair/student-records-api/internal/types"
)

// ErrStudentNotFound is the sentinel for every "no such record"
// condition: a missing id on get/update/delete, or a name search that
// matches nothing. Handlers map it to HTTP 404 with errors.Is.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the record-store contract.
// Any concrete type implementing all of these methods satisfies the
// interface implicitly — no "implements" keyword in Go.
type Storage interface {
	// CreateStudent validates nothing (that already happened at the
	// boundary), generates a fresh unique id, inserts, and returns the
	// stored record.
	CreateStudent(req types.CreateStudentRequest) (types.Student, error)

	// GetStudentByID fetches a single student by exact id.
	// Returns ErrStudentNotFound if the id is absent.
	GetStudentByID(id string) (types.Student, error)

	// GetStudents returns every student in insertion order.
	// Returns an empty slice (not nil) when the store is empty.
	GetStudents() ([]types.Student, error)

	// SearchStudentsByName returns every student whose name contains
	// the query as a case-insensitive substring, in insertion order.
	// Returns ErrStudentNotFound when nothing matches — zero matches is
	// an error condition on this API, not an empty success.
	SearchStudentsByName(name string) ([]types.Student, error)

	// UpdateStudentByID overwrites the fields present in req and leaves
	// the rest untouched. Returns the updated record, or
	// ErrStudentNotFound if the id is absent.
	UpdateStudentByID(id string, req types.UpdateStudentRequest) (types.Student, error)

	// DeleteStudentByID removes a record permanently.
	// Returns ErrStudentNotFound if the id is absent — deleting a
	// missing record is reported, never silently ignored.
	DeleteStudentByID(id string) error
}
