// Package memory provides the in-memory implementation of the
// storage.Storage interface.
//
// WHY IN MEMORY?
// ──────────────
// Records live only for the lifetime of the process — there is no
// durability requirement, so a plain map is the whole database. The map
// is the one piece of shared mutable state in the application, and
// handlers run concurrently, so every access goes through a
// sync.RWMutex: reads take the shared lock, mutations take the
// exclusive lock. The critical sections are map lookups and slice
// appends, so lock contention is not a concern at this scale.
package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/meera-nair/student-records-api/internal/storage"
	"github.com/meera-nair/student-records-api/internal/types"
)

// Memory is the concrete in-memory implementation of storage.Storage.
//
// students is keyed by the generated id. order remembers insertion
// order so that listing and searching are deterministic — map iteration
// order in Go is deliberately randomised.
type Memory struct {
	mu       sync.RWMutex
	students map[string]types.Student
	order    []string
}

// Compile-time proof that *Memory satisfies the interface.
var _ storage.Storage = (*Memory)(nil)

// New returns an empty, ready-to-use store.
func New() *Memory {
	return &Memory{
		students: make(map[string]types.Student),
	}
}

// CreateStudent generates a fresh id, inserts the record, and returns
// the stored copy.
func (m *Memory) CreateStudent(req types.CreateStudentRequest) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// UUIDv4 collisions are astronomically unlikely, but the id is the
	// map key — re-draw until it is provably unused so an existing
	// record can never be overwritten.
	id := uuid.NewString()
	for _, exists := m.students[id]; exists; _, exists = m.students[id] {
		id = uuid.NewString()
	}

	student := types.Student{
		ID:        id,
		Name:      req.Name,
		Age:       req.Age,
		ClassYear: req.ClassYear,
	}

	m.students[id] = student
	m.order = append(m.order, id)

	return student, nil
}

// GetStudentByID fetches a single record by exact key.
func (m *Memory) GetStudentByID(id string) (types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	student, ok := m.students[id]
	if !ok {
		return types.Student{}, storage.ErrStudentNotFound
	}
	return student, nil
}

// GetStudents returns every record in insertion order.
func (m *Memory) GetStudents() ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Pre-allocate a non-nil slice: an empty store serialises to []
	// rather than null, which is kinder to API consumers.
	students := make([]types.Student, 0, len(m.order))
	for _, id := range m.order {
		students = append(students, m.students[id])
	}
	return students, nil
}

// SearchStudentsByName returns every record whose name contains the
// query as a substring, in insertion order.
//
// Matching is case-insensitive: both sides are lowercased before the
// containment check, so "ali" finds "Alice Smith". Zero matches is
// reported as ErrStudentNotFound, mirroring the API's 404 contract.
func (m *Memory) SearchStudentsByName(name string) ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query := strings.ToLower(name)

	var matches []types.Student
	for _, id := range m.order {
		student := m.students[id]
		if strings.Contains(strings.ToLower(student.Name), query) {
			matches = append(matches, student)
		}
	}

	if len(matches) == 0 {
		return nil, storage.ErrStudentNotFound
	}
	return matches, nil
}

// UpdateStudentByID overlays the present fields of req onto the stored
// record. Absent fields keep their prior values; an all-absent payload
// is a no-op that still returns the (unchanged) record.
func (m *Memory) UpdateStudentByID(id string, req types.UpdateStudentRequest) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	student, ok := m.students[id]
	if !ok {
		return types.Student{}, storage.ErrStudentNotFound
	}

	if req.Name.Set {
		student.Name = req.Name.Value
	}
	if req.Age.Set {
		student.Age = req.Age.Value
	}
	if req.ClassYear.Set {
		student.ClassYear = req.ClassYear.Value
	}

	// student is a copy; write it back under the same key. The id is
	// never touched here — it is immutable after creation.
	m.students[id] = student

	return student, nil
}

// DeleteStudentByID removes a record and its insertion-order entry.
func (m *Memory) DeleteStudentByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[id]; !ok {
		return storage.ErrStudentNotFound
	}

	delete(m.students, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
