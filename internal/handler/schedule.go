package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// GetSchedule handles GET /api/schedule/{date}.
// A date that was never saved returns the empty schedule, not 404 — every
// calendar day implicitly exists.
func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	sched, err := s.schedules.Load(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

// PutSchedule handles PUT /api/schedule/{date}.
// The body is the complete desired schedule; the stored day is fully
// replaced by it.
func (s *Server) PutSchedule(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	var sched domain.DaySchedule
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sched); err != nil {
		requestError(w, "body must be a day schedule object")
		return
	}

	if err := s.schedules.Save(r.Context(), date, sched); err != nil {
		writeError(w, err)
		return
	}

	// Echo the saved schedule so clients can refresh from the response.
	writeJSON(w, http.StatusOK, sched)
}

// parseDate reads the {date} path parameter as a YYYY-MM-DD calendar date.
func parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		requestError(w, "date must be formatted YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
