package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/matchllm/matchctl/internal/export"
	"github.com/matchllm/matchctl/internal/match"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Latest()
	if snap == nil {
		s.respondError(w, http.StatusNotFound, "no completed run")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"generation":  snap.Generation,
		"consulta":    snap.Consulta,
		"summary":     snap.Summary,
		"overview":    match.OverviewRows(snap.Response.Results),
		"email_sent":  snap.Response.EmailSent,
		"finished_at": snap.FinishedAt,
	})
}

// handleRows serves the flattened requirement rows of the latest run, with
// optional status, min_confidence and q query filters.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Latest()
	if snap == nil {
		s.respondError(w, http.StatusNotFound, "no completed run")
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var rows []match.Row
	for _, result := range snap.Response.Results {
		filtered := result
		filtered.Resultado = filter.Apply(result.Resultado)
		rows = append(rows, match.Rows(filtered)...)
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"generation": snap.Generation,
		"total":      len(rows),
		"rows":       rows,
	})
}

func filterFromQuery(r *http.Request) (match.Filter, error) {
	var f match.Filter
	q := r.URL.Query()
	if status := strings.TrimSpace(q.Get("status")); status != "" {
		switch cat := match.Category(status); cat {
		case match.Success, match.Warning, match.Danger, match.Neutral:
			f.Status = cat
		default:
			return f, fmt.Errorf("unknown status %q", status)
		}
	}
	if raw := q.Get("min_confidence"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("invalid min_confidence %q", raw)
		}
		f.MinConfidence = v
	}
	f.Text = q.Get("q")
	return f, nil
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.respondError(w, http.StatusNotImplemented, "history not enabled")
		return
	}
	offset := intQuery(r, "offset", 0)
	limit := intQuery(r, "limit", 20)
	runs, err := s.history.List(r.Context(), offset, limit)
	if err != nil {
		s.logger.Error("history list failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := s.history.Count(r.Context())
	if err != nil {
		s.logger.Error("history count failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"runs": runs, "total": total})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.respondError(w, http.StatusNotImplemented, "history not enabled")
		return
	}
	id := chi.URLParam(r, "id")
	run, err := s.history.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "run not found")
		return
	}
	s.respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.keyword == nil {
		s.respondError(w, http.StatusNotImplemented, "search not enabled")
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := intQuery(r, "limit", 50)
	results, err := s.keyword.Search(query, limit)
	if err != nil {
		s.logger.Error("keyword search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"query": query, "results": results})
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Latest()
	if snap == nil {
		s.respondError(w, http.StatusNotFound, "no completed run")
		return
	}
	rows := match.AllRows(snap.Response.Results)
	data := export.CSV(match.Records(rows), match.Columns)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resultado_match.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(data))
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Latest()
	if snap == nil {
		s.respondError(w, http.StatusNotFound, "no completed run")
		return
	}
	sheets := make([]export.Sheet, 0, len(snap.Response.Results))
	for _, result := range snap.Response.Results {
		sheets = append(sheets, export.Sheet{
			Name:    fmt.Sprintf("Edital %d", result.EditalID),
			Columns: match.Columns,
			Rows:    match.Records(match.Rows(result)),
		})
	}
	data, err := export.Workbook(sheets)
	if err != nil {
		s.logger.Error("workbook build failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="resultado_match.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func intQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
