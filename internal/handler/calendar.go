package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// HolidayResponse is one holiday on the wire; the date is day-granular.
type HolidayResponse struct {
	Name string             `json:"name"`
	Date openapi_types.Date `json:"date"`
}

// CalendarDayResponse is one cell of the month grid on the wire.
type CalendarDayResponse struct {
	Date           openapi_types.Date `json:"date"`
	IsCurrentMonth bool               `json:"is_current_month"`
	IsToday        bool               `json:"is_today"`
	IsHoliday      bool               `json:"is_holiday"`
	HolidayName    string             `json:"holiday_name,omitempty"`
}

// GetHolidays handles GET /api/holidays/{year}.
func (s *Server) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(w, r)
	if !ok {
		return
	}

	holidays := s.calendar.Holidays(year)
	out := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		out[i] = HolidayResponse{Name: h.Name, Date: openapi_types.Date{Time: h.Date}}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetMonthGrid handles GET /api/calendar/{year}/{month}.
// The response covers whole Sunday-to-Saturday weeks, so it includes the
// leading and trailing days of the adjacent months.
func (s *Server) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(w, r)
	if !ok {
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		requestError(w, "month must be a number from 1 to 12")
		return
	}

	anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	grid := s.calendar.MonthGrid(anchor)
	out := make([]CalendarDayResponse, len(grid))
	for i, c := range grid {
		out[i] = cellToResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

func cellToResponse(c domain.CalendarDay) CalendarDayResponse {
	return CalendarDayResponse{
		Date:           openapi_types.Date{Time: c.Date},
		IsCurrentMonth: c.IsCurrentMonth,
		IsToday:        c.IsToday,
		IsHoliday:      c.IsHoliday,
		HolidayName:    c.HolidayName,
	}
}

// parseYear reads the {year} path parameter, rejecting values outside the
// range the Gregorian Easter computation is meaningful for.
func parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1583 || year > 9999 {
		requestError(w, "year must be a number from 1583 to 9999")
		return 0, false
	}
	return year, true
}
