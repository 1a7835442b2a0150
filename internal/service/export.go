package service

import (
	"context"
	"fmt"
	"time"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
	"github.com/abarros/agenda-servicos/backend/internal/repo"
)

// ExportService assembles a flat export of every service call in a date range.
type ExportService struct {
	repo repo.ScheduleRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(r repo.ScheduleRepo) *ExportService {
	return &ExportService{repo: r}
}

// Export returns one row per service call with from <= date <= to, in date
// then list order. A period with notes but no services contributes one row
// with empty service fields, so notes-only days are not lost from the export.
func (s *ExportService) Export(ctx context.Context, from, to time.Time) ([]domain.ExportRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", domain.ErrValidation)
	}

	entries, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, e := range entries {
		for _, period := range []domain.Period{domain.PeriodMorning, domain.PeriodAfternoon} {
			p := e.Schedule.Period(period)
			if len(p.Services) == 0 {
				if p.Notes != "" {
					rows = append(rows, domain.ExportRow{Date: e.Date, Period: period, Notes: p.Notes})
				}
				continue
			}
			for _, svc := range p.Services {
				rows = append(rows, domain.ExportRow{
					Date:    e.Date,
					Period:  period,
					Notes:   p.Notes,
					Name:    svc.Name,
					Phone:   svc.Phone,
					CEP:     svc.CEP,
					Address: svc.Address,
					Product: svc.Product,
					Brand:   svc.Brand,
					Defect:  svc.Defect,
				})
			}
		}
	}
	return rows, nil
}
