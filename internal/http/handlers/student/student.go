// Package student contains all HTTP handlers for the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like the record
// store. Each exported function here is a factory: it accepts the
// storage.Storage dependency once at route-registration time and
// returns a handler that closes over it. Example:
//
//	router.HandleFunc("POST /students", student.New(store))
//	//                                  ^^^^^^^^^^^^^^^^^^
//	//                 called ONCE at startup; the returned handler
//	//                 runs on EVERY request.
//
// Status-code contract:
//
//	404 — id absent, or a name search matched nothing
//	422 — a payload or query field violated its constraint
//	400 — the body was empty or not valid JSON at all
package student

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/meera-nair/student-records-api/internal/storage"
	"github.com/meera-nair/student-records-api/internal/types"
	"github.com/meera-nair/student-records-api/internal/utils/response"
	"github.com/meera-nair/student-records-api/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /students
// Creates a student from the JSON request body.
//
// Request body:
//
//	{ "name": "Alice Smith", "age": 16, "class_year": "year 11" }
//
// Success (201 Created) — the stored record, id generated server-side:
//
//	{ "id": "…uuid…", "name": "Alice Smith", "age": 16, "class_year": "year 11" }
//
// Errors: 400 empty/malformed body, 422 validation failure.
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var req types.CreateStudentRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validation happens here, explicitly, before the store is
		// touched. FieldErrors carries the per-field breakdown.
		if err := validation.ValidateCreate(req); err != nil {
			var fieldErrs validation.FieldErrors
			errors.As(err, &fieldErrs)
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(fieldErrs))
			return
		}

		created, err := store.CreateStudent(req)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /students
// Returns every student as a JSON array, in insertion order.
// An empty store yields [] (not null).
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.GetStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /students/{id}
// Fetches one student by its generated id.
//
// Errors: 404 if no record has that id.
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue extracts the {id} segment — Go 1.22+ ServeMux
		// supports named path parameters in the route pattern.
		// The id is opaque (a UUID string), so no parsing is needed.
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

		student, err := store.GetStudentByID(id)
		if err != nil {
			writeStorageError(w, id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// SearchByName handles GET /students/search/by-name?name=…
// Returns every student whose name contains the query as a
// case-insensitive substring.
//
// Errors: 422 if the query is missing or shorter than 2 characters,
// 404 if no student matches — zero matches is an error on this API,
// not an empty list.
// ─────────────────────────────────────────────────────────────────────────────
func SearchByName(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		slog.Info("searching students by name", slog.String("name", name))

		if err := validation.ValidateSearchQuery(name); err != nil {
			var fieldErrs validation.FieldErrors
			errors.As(err, &fieldErrs)
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(fieldErrs))
			return
		}

		students, err := store.SearchStudentsByName(name)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.GeneralError(
						fmt.Errorf("no students found with name %q", name)))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /students/{id}
// Partially updates a student: fields present in the body are validated
// and overwritten, fields absent keep their prior values. An empty
// object {} is a valid no-op.
//
// Errors: 404 unknown id, 422 a present field fails validation,
// 400 empty/malformed body.
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		var req types.UpdateStudentRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Same constraints as creation, applied only to present fields.
		if err := validation.ValidateUpdate(req); err != nil {
			var fieldErrs validation.FieldErrors
			errors.As(err, &fieldErrs)
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(fieldErrs))
			return
		}

		updated, err := store.UpdateStudentByID(id, req)
		if err != nil {
			writeStorageError(w, id, err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /students/{id}
// Permanently removes a student record.
//
// Success is 204 No Content with an empty body.
// Errors: 404 if no record has that id — deleting a missing record is
// reported, never treated as success.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		if err := store.DeleteStudentByID(id); err != nil {
			writeStorageError(w, id, err)
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeStorageError maps a storage failure for a specific id onto the
// HTTP surface: the not-found sentinel becomes a 404 with a message
// naming the id, anything else is a 500.
func writeStorageError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, storage.ErrStudentNotFound) {
		response.WriteJSON(w, http.StatusNotFound,
			response.GeneralError(fmt.Errorf("student with id %s not found", id)))
		return
	}

	slog.Error("storage error",
		slog.String("id", id),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError,
		response.GeneralError(err))
}
