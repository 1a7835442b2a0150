// Package legacy decodes day schedules written by earlier releases and the
// local store that held them. Three on-disk generations exist:
//
//	generation 1: {"morning": "text", "afternoon": "text"} — notes only
//	generation 2: current shape, but service entries missing newer fields
//	generation 3: current shape
//
// All three are read; only the current shape is ever written.
package legacy

import (
	"bytes"
	"encoding/json"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// rawDay defers period decoding so each period can be probed for its
// generation independently.
type rawDay struct {
	Morning   json.RawMessage `json:"morning"`
	Afternoon json.RawMessage `json:"afternoon"`
}

// rawPeriod is the generation-2/3 period payload. Fields absent from older
// generations decode to their zero value and are kept as empty strings.
type rawPeriod struct {
	Notes    string       `json:"notes"`
	Services []rawService `json:"services"`
}

type rawService struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	CEP     string `json:"cep"`
	Address string `json:"address"`
	Product string `json:"product"`
	Brand   string `json:"brand"`
	Defect  string `json:"defect"`
}

// Normalize decodes a persisted day blob of any generation into the current
// DaySchedule shape. It is total: malformed input degrades to the empty
// schedule, never an error. Normalizing an already-current schedule is the
// identity, so the function is idempotent.
func Normalize(raw []byte) domain.DaySchedule {
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.EmptyDaySchedule()
	}

	var day rawDay
	if err := json.Unmarshal(raw, &day); err != nil {
		return domain.EmptyDaySchedule()
	}

	return domain.DaySchedule{
		Morning:   normalizePeriod(day.Morning),
		Afternoon: normalizePeriod(day.Afternoon),
	}
}

// normalizePeriod probes one period payload: a JSON string is generation 1
// (bare notes), an object is generation 2/3. Anything else is treated as
// absent.
func normalizePeriod(raw json.RawMessage) domain.PeriodSchedule {
	empty := domain.PeriodSchedule{Services: []domain.ServiceRecord{}}
	if len(raw) == 0 {
		return empty
	}

	var notes string
	if err := json.Unmarshal(raw, &notes); err == nil {
		empty.Notes = notes
		return empty
	}

	var p rawPeriod
	if err := json.Unmarshal(raw, &p); err != nil {
		return empty
	}

	services := make([]domain.ServiceRecord, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, normalizeService(s))
	}
	return domain.PeriodSchedule{Notes: p.Notes, Services: services}
}

// normalizeService fills every missing field with the empty string and
// assigns a fresh ID when the entry has none, so the invariant "every record
// has a unique non-empty id" holds after normalization.
func normalizeService(s rawService) domain.ServiceRecord {
	id := s.ID
	if id == "" {
		id = domain.NewServiceID()
	}
	return domain.ServiceRecord{
		ID:      id,
		Name:    s.Name,
		Phone:   s.Phone,
		CEP:     s.CEP,
		Address: s.Address,
		Product: s.Product,
		Brand:   s.Brand,
		Defect:  s.Defect,
	}
}
