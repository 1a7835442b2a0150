// Package repo contains all database access logic for the agenda backend.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
// Begin on a pgx.Tx opens a savepoint, so Save keeps its transactional
// shape even under a test transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ScheduleRepo defines the persistence operations for day schedules.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ScheduleRepo interface {
	// GetByDate retrieves the schedule stored for one calendar date,
	// services partitioned by period in stored order.
	// Returns domain.ErrNotFound if no appointment exists for that date.
	GetByDate(ctx context.Context, date time.Time) (domain.DaySchedule, error)

	// Save synchronizes the stored schedule for date with s using
	// full-replace semantics: upsert the appointment row keyed by date,
	// delete every existing child service row, then bulk-insert the new
	// child set in list order. All three steps run in one transaction, so
	// the last completed save wins entirely — old and new service lists
	// never mix.
	Save(ctx context.Context, date time.Time, s domain.DaySchedule) error

	// ListRange returns every stored schedule with from <= date <= to,
	// ordered by date ascending.
	ListRange(ctx context.Context, from, to time.Time) ([]domain.DayEntry, error)
}

// pgScheduleRepo is the Postgres implementation of ScheduleRepo.
type pgScheduleRepo struct {
	db db
}

// NewScheduleRepo constructs a ScheduleRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewScheduleRepo(db db) ScheduleRepo {
	return &pgScheduleRepo{db: db}
}

// dayQuery joins an appointment with its services. Ordering by the serial
// service id recovers insertion order, which CopyFrom preserved on write.
const dayQuery = `
	SELECT a.date, a.morning_notes, a.afternoon_notes,
	       s.id, s.period, s.name, s.phone, s.cep, s.address, s.product, s.brand, s.defect
	FROM appointments a
	LEFT JOIN services s ON s.appointment_id = a.id`

func (r *pgScheduleRepo) GetByDate(ctx context.Context, date time.Time) (domain.DaySchedule, error) {
	const q = dayQuery + `
	WHERE a.date = @date
	ORDER BY s.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"date": domain.DateOnly(date)})
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("repo.ScheduleRepo.GetByDate: %w", err)
	}
	defer rows.Close()

	entries, err := collectDayRows(rows)
	if err != nil {
		return domain.DaySchedule{}, fmt.Errorf("repo.ScheduleRepo.GetByDate: %w", err)
	}
	if len(entries) == 0 {
		return domain.DaySchedule{}, fmt.Errorf("repo.ScheduleRepo.GetByDate: %w", domain.ErrNotFound)
	}
	return entries[0].Schedule, nil
}

func (r *pgScheduleRepo) Save(ctx context.Context, date time.Time, s domain.DaySchedule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Save: begin: %w", err)
	}
	// Rollback is a no-op after a successful Commit.
	defer tx.Rollback(ctx)

	// Step 1: upsert the appointment keyed by its unique date. The DO
	// UPDATE branch forces RETURNING to fire on conflict as well.
	const upsert = `
		INSERT INTO appointments (date, morning_notes, afternoon_notes)
		VALUES (@date, @morning_notes, @afternoon_notes)
		ON CONFLICT (date) DO UPDATE
		SET morning_notes   = EXCLUDED.morning_notes,
		    afternoon_notes = EXCLUDED.afternoon_notes,
		    updated_at      = now()
		RETURNING id`

	args := pgx.NamedArgs{
		"date":            domain.DateOnly(date),
		"morning_notes":   s.Morning.Notes,
		"afternoon_notes": s.Afternoon.Notes,
	}

	var id pgtype.UUID
	if err := tx.QueryRow(ctx, upsert, args).Scan(&id); err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Save: upsert appointment: %w", err)
	}

	// Step 2: full replace — drop the entire existing child set rather than
	// diffing. The editor submits the complete desired list every time, and
	// rows carry no stable identity across edits.
	const del = `DELETE FROM services WHERE appointment_id = @id`
	if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Save: delete services: %w", err)
	}

	// Step 3: bulk-insert the new child set, morning first, preserving list
	// order. An appointment with empty notes and zero services is a valid
	// terminal state, so an empty set skips the copy but still commits.
	var src [][]any
	for _, p := range []struct {
		period   domain.Period
		services []domain.ServiceRecord
	}{
		{domain.PeriodMorning, s.Morning.Services},
		{domain.PeriodAfternoon, s.Afternoon.Services},
	} {
		for _, svc := range p.services {
			src = append(src, []any{
				id, string(p.period),
				svc.Name, svc.Phone, svc.CEP, svc.Address, svc.Product, svc.Brand, svc.Defect,
			})
		}
	}
	if len(src) > 0 {
		cols := []string{"appointment_id", "period", "name", "phone", "cep", "address", "product", "brand", "defect"}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"services"}, cols, pgx.CopyFromRows(src)); err != nil {
			return fmt.Errorf("repo.ScheduleRepo.Save: insert services: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Save: commit: %w", err)
	}
	return nil
}

func (r *pgScheduleRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.DayEntry, error) {
	const q = dayQuery + `
	WHERE a.date BETWEEN @from AND @to
	ORDER BY a.date, s.id`

	args := pgx.NamedArgs{"from": domain.DateOnly(from), "to": domain.DateOnly(to)}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.ListRange: %w", err)
	}
	defer rows.Close()

	entries, err := collectDayRows(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.ListRange: %w", err)
	}
	return entries, nil
}

// collectDayRows assembles joined appointment/service rows into DayEntry
// values. Rows arrive ordered by date then service id; a NULL service id
// means the appointment has no services (LEFT JOIN miss).
func collectDayRows(rows pgx.Rows) ([]domain.DayEntry, error) {
	var entries []domain.DayEntry

	for rows.Next() {
		var (
			date                   pgtype.Date
			morning, afternoon     string
			svcID                  pgtype.Int8
			period                 pgtype.Text
			name, phone, cep       pgtype.Text
			address, product       pgtype.Text
			brand, defect          pgtype.Text
		)
		err := rows.Scan(&date, &morning, &afternoon,
			&svcID, &period, &name, &phone, &cep, &address, &product, &brand, &defect)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		day := domain.DateOnly(date.Time)
		if len(entries) == 0 || !domain.SameDay(entries[len(entries)-1].Date, day) {
			sched := domain.EmptyDaySchedule()
			sched.Morning.Notes = morning
			sched.Afternoon.Notes = afternoon
			entries = append(entries, domain.DayEntry{Date: day, Schedule: sched})
		}
		if !svcID.Valid {
			continue
		}

		svc := domain.ServiceRecord{
			ID:      strconv.FormatInt(svcID.Int64, 10),
			Name:    name.String,
			Phone:   phone.String,
			CEP:     cep.String,
			Address: address.String,
			Product: product.String,
			Brand:   brand.String,
			Defect:  defect.String,
		}

		entry := &entries[len(entries)-1]
		switch domain.Period(period.String) {
		case domain.PeriodMorning:
			entry.Schedule.Morning.Services = append(entry.Schedule.Morning.Services, svc)
		case domain.PeriodAfternoon:
			entry.Schedule.Afternoon.Services = append(entry.Schedule.Afternoon.Services, svc)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return entries, nil
}
