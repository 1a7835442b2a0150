// Package domain contains the core data types for the agenda backend.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (calendar, legacy, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Period discriminates the two halves of a working day.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// Valid reports whether p is one of the two known periods.
func (p Period) Valid() bool {
	return p == PeriodMorning || p == PeriodAfternoon
}

// KnownProducts is the suggestion list for the product field.
// The field itself is free text; values outside this list are legal.
var KnownProducts = []string{
	"lavadora",
	"geladeira",
	"freezer",
	"secadora",
	"lava-e-seca",
	"lava-louça",
}

// ServiceRecord is one client service call within a period.
// ID is an opaque token whose only required property is uniqueness within
// the schedule; the store reassigns it on save, so it is not stable across
// saves. Every field except ID and Name may be empty; the empty string is
// the canonical "absent" value — never a nil pointer.
type ServiceRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	CEP     string `json:"cep"`
	Address string `json:"address"`
	Product string `json:"product"`
	Brand   string `json:"brand"`
	Defect  string `json:"defect"`
}

// NewServiceID returns a fresh opaque service-record ID.
func NewServiceID() string {
	return uuid.NewString()
}

// PeriodSchedule holds the free-text notes and the ordered service list for
// one half-day. Services keep insertion order; no other ordering is implied.
type PeriodSchedule struct {
	Notes    string          `json:"notes"`
	Services []ServiceRecord `json:"services"`
}

// DaySchedule is the full record for one calendar date. The date itself is
// the external key and is not stored on the value; exactly one DaySchedule
// exists per date in the backing store.
//
// The zero value (empty notes, no services) is the valid state of any date
// that was never saved.
type DaySchedule struct {
	Morning   PeriodSchedule `json:"morning"`
	Afternoon PeriodSchedule `json:"afternoon"`
}

// EmptyDaySchedule returns a DaySchedule with empty notes and non-nil,
// empty service slices, so callers can range and marshal without nil checks.
func EmptyDaySchedule() DaySchedule {
	return DaySchedule{
		Morning:   PeriodSchedule{Services: []ServiceRecord{}},
		Afternoon: PeriodSchedule{Services: []ServiceRecord{}},
	}
}

// IsEmpty reports whether the schedule carries no notes and no services.
func (d DaySchedule) IsEmpty() bool {
	return d.Morning.Notes == "" && d.Afternoon.Notes == "" &&
		len(d.Morning.Services) == 0 && len(d.Afternoon.Services) == 0
}

// DayEntry pairs a stored schedule with its date key. Range queries
// (export) return these; single-day loads return the bare DaySchedule
// because the caller already knows the date.
type DayEntry struct {
	Date     time.Time
	Schedule DaySchedule
}

// Period returns the schedule for the given period. Unknown periods return
// the zero PeriodSchedule.
func (d DaySchedule) Period(p Period) PeriodSchedule {
	switch p {
	case PeriodMorning:
		return d.Morning
	case PeriodAfternoon:
		return d.Afternoon
	}
	return PeriodSchedule{}
}

