// Package handler implements the HTTP handlers for the agenda API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (schedule.go, calendar.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// ScheduleServicer defines the business operations the schedule handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type ScheduleServicer interface {
	Load(ctx context.Context, date time.Time) (domain.DaySchedule, error)
	Save(ctx context.Context, date time.Time, s domain.DaySchedule) error
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, from, to time.Time) ([]domain.ExportRow, error)
}

// Migrator defines the legacy-migration operations the admin handlers
// depend on. It is nil when no legacy store is configured.
type Migrator interface {
	Migrate(ctx context.Context) (domain.MigrationReport, error)
	Cleanup(ctx context.Context) (int, error)
}

// HolidayCalendar is the read surface of the holiday/grid engine.
type HolidayCalendar interface {
	Holidays(year int) []domain.Holiday
	MonthGrid(anchor time.Time) []domain.CalendarDay
}

// Server holds the dependencies of every API endpoint.
type Server struct {
	schedules ScheduleServicer
	export    ExportServicer
	calendar  HolidayCalendar
	migrator  Migrator
}

// NewServer constructs the Server with all its dependencies.
// migrator may be nil; the admin migration routes then return 404.
func NewServer(schedules ScheduleServicer, export ExportServicer, calendar HolidayCalendar, migrator Migrator) *Server {
	return &Server{schedules: schedules, export: export, calendar: calendar, migrator: migrator}
}

// Register mounts every API route on r. adminAuth wraps the admin subtree;
// pass an identity middleware when no token hash is configured.
func (s *Server) Register(r chi.Router, adminAuth func(http.Handler) http.Handler) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/holidays/{year}", s.GetHolidays)
		r.Get("/calendar/{year}/{month}", s.GetMonthGrid)
		r.Get("/schedule/{date}", s.GetSchedule)
		r.Put("/schedule/{date}", s.PutSchedule)
		r.Get("/export", s.GetExport)

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminAuth)
			r.Post("/migration", s.PostMigration)
			r.Post("/migration/cleanup", s.PostMigrationCleanup)
		})
	})
}
