// Package service contains the business logic for the agenda backend.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
	"github.com/abarros/agenda-servicos/backend/internal/repo"
)

// ScheduleService implements business logic for day-schedule operations.
type ScheduleService struct {
	repo repo.ScheduleRepo
}

// NewScheduleService constructs a ScheduleService backed by the provided repo.
func NewScheduleService(r repo.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: r}
}

// Load returns the schedule stored for date. A date that was never saved is
// not an error: every date implicitly holds the empty schedule, so absence
// maps to that default. Store failures propagate to the caller.
func (s *ScheduleService) Load(ctx context.Context, date time.Time) (domain.DaySchedule, error) {
	sched, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.EmptyDaySchedule(), nil
		}
		return domain.DaySchedule{}, fmt.Errorf("service.ScheduleService.Load: %w", err)
	}
	return sched, nil
}

// Save validates and persists the full schedule for date, replacing whatever
// was stored before. Saving an all-empty schedule is legal and leaves the
// date with an empty appointment row.
func (s *ScheduleService) Save(ctx context.Context, date time.Time, sched domain.DaySchedule) error {
	if err := validateSchedule(sched); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, date, sched); err != nil {
		return fmt.Errorf("service.ScheduleService.Save: %w", err)
	}
	return nil
}

// validateSchedule enforces the one hard rule of a service record: the
// client name must not be blank. Everything else is free text.
func validateSchedule(sched domain.DaySchedule) error {
	for _, p := range []domain.Period{domain.PeriodMorning, domain.PeriodAfternoon} {
		for i, svc := range sched.Period(p).Services {
			if strings.TrimSpace(svc.Name) == "" {
				return fmt.Errorf("%w: %s service %d: name is required", domain.ErrValidation, p, i+1)
			}
		}
	}
	return nil
}
