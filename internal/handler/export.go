package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/abarros/agenda-servicos/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"date", "period", "name", "phone", "cep", "address",
	"product", "brand", "defect", "notes",
}

// ExportRowResponse is one export line on the wire. Service fields are
// empty on the notes-only placeholder rows.
type ExportRowResponse struct {
	Date    openapi_types.Date `json:"date"`
	Period  string             `json:"period"`
	Notes   string             `json:"notes,omitempty"`
	Name    string             `json:"name,omitempty"`
	Phone   string             `json:"phone,omitempty"`
	CEP     string             `json:"cep,omitempty"`
	Address string             `json:"address,omitempty"`
	Product string             `json:"product,omitempty"`
	Brand   string             `json:"brand,omitempty"`
	Defect  string             `json:"defect,omitempty"`
}

// GetExport handles GET /api/export?from=&to=&format=.
// from/to default to the first and last day of the current month.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	defaultFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	defaultTo := defaultFrom.AddDate(0, 1, -1)

	from, ok := parseDateParam(w, r, "from", defaultFrom)
	if !ok {
		return
	}
	to, ok := parseDateParam(w, r, "to", defaultTo)
	if !ok {
		return
	}

	rows, err := s.export.Export(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]ExportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = rowToResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

func rowToResponse(r domain.ExportRow) ExportRowResponse {
	return ExportRowResponse{
		Date:    openapi_types.Date{Time: r.Date},
		Period:  string(r.Period),
		Notes:   r.Notes,
		Name:    r.Name,
		Phone:   r.Phone,
		CEP:     r.CEP,
		Address: r.Address,
		Product: r.Product,
		Brand:   r.Brand,
		Defect:  r.Defect,
	}
}

// writeCSV encodes rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	cw.Write(csvHeaders)
	for _, r := range rows {
		cw.Write([]string{
			r.Date.Format(time.DateOnly),
			string(r.Period),
			r.Name, r.Phone, r.CEP, r.Address, r.Product, r.Brand, r.Defect,
			r.Notes,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// parseDateParam reads an optional YYYY-MM-DD query parameter.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string, fallback time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		requestError(w, name+" must be formatted YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
