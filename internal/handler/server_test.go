package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abarros/agenda-servicos/backend/internal/calendar"
	"github.com/abarros/agenda-servicos/backend/internal/domain"
	"github.com/abarros/agenda-servicos/backend/internal/handler"
)

// ---- mocks -----------------------------------------------------------------

// mockScheduleService is a hand-written test double for handler.ScheduleServicer.
type mockScheduleService struct {
	load func(ctx context.Context, date time.Time) (domain.DaySchedule, error)
	save func(ctx context.Context, date time.Time, s domain.DaySchedule) error
}

func (m *mockScheduleService) Load(ctx context.Context, date time.Time) (domain.DaySchedule, error) {
	return m.load(ctx, date)
}

func (m *mockScheduleService) Save(ctx context.Context, date time.Time, s domain.DaySchedule) error {
	return m.save(ctx, date, s)
}

type mockExportService struct {
	export func(ctx context.Context, from, to time.Time) ([]domain.ExportRow, error)
}

func (m *mockExportService) Export(ctx context.Context, from, to time.Time) ([]domain.ExportRow, error) {
	return m.export(ctx, from, to)
}

type mockMigrator struct {
	migrate func(ctx context.Context) (domain.MigrationReport, error)
	cleanup func(ctx context.Context) (int, error)
}

func (m *mockMigrator) Migrate(ctx context.Context) (domain.MigrationReport, error) {
	return m.migrate(ctx)
}

func (m *mockMigrator) Cleanup(ctx context.Context) (int, error) {
	return m.cleanup(ctx)
}

var (
	_ handler.ScheduleServicer = (*mockScheduleService)(nil)
	_ handler.ExportServicer   = (*mockExportService)(nil)
	_ handler.Migrator         = (*mockMigrator)(nil)
)

// ---- helpers ---------------------------------------------------------------

// passthroughAuth stands in for the admin auth middleware in tests.
func passthroughAuth(next http.Handler) http.Handler { return next }

// newTestRouter wires a Server with the given doubles into a chi router.
// Nil doubles are fine for routes the test never hits; the real holiday
// calendar is used because it is a pure function.
func newTestRouter(schedules handler.ScheduleServicer, export handler.ExportServicer, migrator handler.Migrator) http.Handler {
	srv := handler.NewServer(schedules, export, calendar.New(), migrator)
	r := chi.NewRouter()
	srv.Register(r, passthroughAuth)
	return r
}
