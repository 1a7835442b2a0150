package handler

import "net/http"

// PostMigration handles POST /api/admin/migration.
// It runs one legacy migration pass and reports the counts. Returns 404
// when no legacy store is configured.
func (s *Server) PostMigration(w http.ResponseWriter, r *http.Request) {
	if s.migrator == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{
			Code: "not_found", Message: "no legacy store configured",
		}})
		return
	}

	report, err := s.migrator.Migrate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// PostMigrationCleanup handles POST /api/admin/migration/cleanup.
// Deleting the legacy copies is deliberately a second, explicit call; the
// service refuses it unless the preceding pass was error-free.
func (s *Server) PostMigrationCleanup(w http.ResponseWriter, r *http.Request) {
	if s.migrator == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{
			Code: "not_found", Message: "no legacy store configured",
		}})
		return
	}

	deleted, err := s.migrator.Cleanup(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
