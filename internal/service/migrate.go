package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
	"github.com/abarros/agenda-servicos/backend/internal/legacy"
	"github.com/abarros/agenda-servicos/backend/internal/repo"
)

// MigrationService replays the legacy local store into the database. One
// pass normalizes every stored day blob and saves it through the usual
// full-replace protocol, so re-running a pass is idempotent per date.
type MigrationService struct {
	store legacy.Store
	repo  repo.ScheduleRepo
	log   *slog.Logger

	mu          sync.Mutex
	cleanupSafe bool
}

// NewMigrationService constructs a MigrationService over the given legacy
// store and schedule repo.
func NewMigrationService(store legacy.Store, r repo.ScheduleRepo, log *slog.Logger) *MigrationService {
	return &MigrationService{store: store, repo: r, log: log}
}

// Migrate runs one full migration pass. Per-date failures are counted and
// logged, never fatal — the batch always continues to the next date. The
// returned report marks cleanup as safe only when at least one schedule
// migrated and nothing failed.
func (s *MigrationService) Migrate(ctx context.Context) (domain.MigrationReport, error) {
	keys, err := s.store.Keys(ctx, legacy.KeyPrefix)
	if err != nil {
		return domain.MigrationReport{}, fmt.Errorf("service.MigrationService.Migrate: %w", err)
	}

	var report domain.MigrationReport
	for _, key := range keys {
		if err := s.migrateKey(ctx, key); err != nil {
			s.log.Error("legacy migration failed for key", "key", key, "error", err)
			report.Errors++
			continue
		}
		report.Migrated++
	}

	report.CleanupSafe = report.Migrated > 0 && report.Errors == 0

	s.mu.Lock()
	s.cleanupSafe = report.CleanupSafe
	s.mu.Unlock()

	s.log.Info("legacy migration finished",
		"migrated", report.Migrated, "errors", report.Errors)
	return report, nil
}

// migrateKey converts one legacy key into a saved schedule. The date is
// encoded in the key itself, after the prefix.
func (s *MigrationService) migrateKey(ctx context.Context, key string) error {
	date, err := time.Parse(time.DateOnly, strings.TrimPrefix(key, legacy.KeyPrefix))
	if err != nil {
		return fmt.Errorf("parse date from key: %w", err)
	}

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read legacy value: %w", err)
	}

	// Normalize is total: any malformed blob becomes the empty schedule
	// rather than an error, and saving that is still a valid terminal state.
	return s.repo.Save(ctx, date, legacy.Normalize(raw))
}

// Cleanup deletes the migrated legacy copies. It refuses to run unless the
// most recent Migrate pass in this process completed without errors —
// deletion is always a separate, explicitly requested step, never a side
// effect of migrating.
func (s *MigrationService) Cleanup(ctx context.Context) (int, error) {
	s.mu.Lock()
	safe := s.cleanupSafe
	s.mu.Unlock()
	if !safe {
		return 0, fmt.Errorf("%w: no error-free migration pass has completed; run the migration first", domain.ErrValidation)
	}

	n, err := s.store.DeletePrefix(ctx, legacy.KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("service.MigrationService.Cleanup: %w", err)
	}
	s.log.Info("legacy store cleaned up", "deleted", n)
	return n, nil
}
