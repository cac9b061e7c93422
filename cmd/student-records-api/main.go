// main is the entry point of the student records API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Construct the in-memory record store (optionally seeded)
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/student-records-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-records-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meera-nair/student-records-api/internal/config"
	"github.com/meera-nair/student-records-api/internal/http/handlers/health"
	"github.com/meera-nair/student-records-api/internal/http/handlers/student"
	"github.com/meera-nair/student-records-api/internal/storage"
	"github.com/meera-nair/student-records-api/internal/storage/memory"
	"github.com/meera-nair/student-records-api/internal/types"
)

const version = "1.0.0"

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config and fatals if anything is wrong.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog writes key=value pairs rather than plain strings, making
	// logs easy to filter in aggregators.
	log := setupLogger(cfg.Env)

	log.Info("starting student-records-api",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// The store lives exactly as long as the process: constructed here,
	// discarded on exit, never a package-level singleton. We hold it as
	// the storage.Storage INTERFACE, not *memory.Memory — swapping in a
	// durable backend later only requires changing this one line.
	var store storage.Storage = memory.New()

	if cfg.SeedDemoData {
		seedDemoData(store, log)
	}

	log.Info("storage initialised", slog.String("backend", "memory"))

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// The handler functions are FACTORIES — they receive the store and
	// return the actual handler (dependency injection via closure).
	//
	// Route table:
	//   GET    /                            → health payload
	//   GET    /students                    → list all students
	//   GET    /students/{id}               → get one student by id
	//   GET    /students/search/by-name     → substring search on name
	//   POST   /students                    → create a student
	//   PATCH  /students/{id}               → partial update
	//   DELETE /students/{id}               → delete a student
	//
	// "GET /{$}" matches the root path exactly; a bare "GET /" would be
	// a catch-all for every unregistered path.
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", health.New(version))
	router.HandleFunc("GET /students", student.GetList(store))
	router.HandleFunc("GET /students/{id}", student.GetByID(store))
	router.HandleFunc("GET /students/search/by-name", student.SearchByName(store))
	router.HandleFunc("POST /students", student.New(store))
	router.HandleFunc("PATCH /students/{id}", student.Update(store))
	router.HandleFunc("DELETE /students/{id}", student.Delete(store))

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Production hardening — timeouts prevent slow-client attacks.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks, so it runs in its own goroutine; the main
	// goroutine waits for the shutdown signal below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ErrServerClosed is the expected result of Shutdown(), not a
		// failure.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered so the signal is not missed if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// In-flight requests get 5 seconds to finish; the store needs no
	// teardown of its own (in-memory, no durability).
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// seedDemoData pre-populates the store with a couple of records so a
// fresh dev server has something to list and search immediately.
func seedDemoData(store storage.Storage, log *slog.Logger) {
	seeds := []types.CreateStudentRequest{
		{Name: "John", Age: 17, ClassYear: "year 12"},
		{Name: "Jane", Age: 16, ClassYear: "year 11"},
	}

	for _, seed := range seeds {
		created, err := store.CreateStudent(seed)
		if err != nil {
			log.Error("failed to seed demo student",
				slog.String("name", seed.Name),
				slog.String("error", err.Error()))
			continue
		}
		log.Debug("seeded demo student",
			slog.String("id", created.ID),
			slog.String("name", created.Name))
	}
}

// setupLogger returns a *slog.Logger configured for the given
// environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
