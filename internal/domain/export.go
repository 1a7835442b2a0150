package domain

import "time"

// ExportRow is one line of the flat range export: a single service call, or
// a notes-only placeholder for a period that has notes but no services.
type ExportRow struct {
	Date   time.Time
	Period Period
	Notes  string

	Name    string
	Phone   string
	CEP     string
	Address string
	Product string
	Brand   string
	Defect  string
}
