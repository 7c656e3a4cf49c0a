package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/matchllm/matchctl/internal/config"
	"github.com/matchllm/matchctl/internal/history"
	"github.com/matchllm/matchctl/internal/keyword"
	"github.com/matchllm/matchctl/internal/match"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	hist, err := history.NewStore(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = hist.Close() })
	kw, err := keyword.NewIndex(filepath.Join(dir, "keyword.bleve"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = kw.Close() })
	return NewServer(NewRunState(), hist, kw, &config.ServerConfig{Host: "127.0.0.1", Port: 8090}, zap.NewNop())
}

func completeRun(t *testing.T, srv *Server, consulta string) {
	t.Helper()
	gen := srv.state.Begin()
	resp := match.MatchMultipleResponse{
		Consulta: consulta,
		Results: []match.EditalResult{{
			EditalID: 7,
			Resultado: match.ItemList{
				{Requisito: "24 portas poe", Status: "ATENDE", Confidence: match.FlexNumber(0.9), Evidence: match.FlexString("datasheet p.2")},
				{Requisito: "fonte redundante", Status: "NAO", Confidence: match.FlexNumber(0.8)},
				{Requisito: "empilhamento", Status: "DUVIDA", Confidence: match.FlexNumber(0.4)},
			},
		}},
	}
	if !srv.state.Complete(gen, consulta, resp) {
		t.Fatal("completion rejected")
	}
}

func TestHandleSummary_noRun(t *testing.T) {
	srv := newTestServer(t)
	r := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()
	srv.handleSummary(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandleSummary(t *testing.T) {
	srv := newTestServer(t)
	completeRun(t, srv, "switch 24p")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()
	srv.handleSummary(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var out struct {
		Consulta string                 `json:"consulta"`
		Summary  match.ExecutiveSummary `json:"summary"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Consulta != "switch 24p" {
		t.Errorf("consulta = %q", out.Consulta)
	}
	if out.Summary.Total != 3 || out.Summary.Atende != 1 || out.Summary.NaoAtende != 1 || out.Summary.Duvida != 1 {
		t.Errorf("summary = %+v", out.Summary)
	}
}

func TestHandleRows_filters(t *testing.T) {
	srv := newTestServer(t)
	completeRun(t, srv, "switch 24p")

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?status=danger", 1},
		{"?status=success", 1},
		{"?min_confidence=0.5", 2},
		{"?q=poe", 1},
		{"?status=danger&min_confidence=0.9", 0},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/rows"+tt.query, nil)
		w := httptest.NewRecorder()
		srv.handleRows(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("%q: status = %d", tt.query, w.Code)
		}
		var out struct {
			Total int         `json:"total"`
			Rows  []match.Row `json:"rows"`
		}
		if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
			t.Fatal(err)
		}
		if out.Total != tt.want {
			t.Errorf("%q: total = %d, want %d", tt.query, out.Total, tt.want)
		}
	}
}

func TestHandleRows_badFilter(t *testing.T) {
	srv := newTestServer(t)
	completeRun(t, srv, "x")

	for _, query := range []string{"?status=bogus", "?min_confidence=abc"} {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/rows"+query, nil)
		w := httptest.NewRecorder()
		srv.handleRows(w, r)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", query, w.Code)
		}
	}
}

func TestHandleRuns_listsArchivedRuns(t *testing.T) {
	srv := newTestServer(t)
	run := &history.Run{
		Consulta: "roteador wifi 6",
		Response: match.MatchMultipleResponse{
			Results: []match.EditalResult{{EditalID: 3, Resultado: match.ItemList{{Requisito: "wifi 6", Status: "ATENDE"}}}},
		},
	}
	if err := srv.history.Save(context.Background(), run); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	w := httptest.NewRecorder()
	srv.handleRuns(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Runs  []*history.Run `json:"runs"`
		Total int64          `json:"total"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Total != 1 || len(out.Runs) != 1 || out.Runs[0].Consulta != "roteador wifi 6" {
		t.Errorf("out = %+v", out)
	}
}

func TestHandleGetRun(t *testing.T) {
	srv := newTestServer(t)
	run := &history.Run{
		Consulta: "nobreak 3kva",
		Response: match.MatchMultipleResponse{
			Results: []match.EditalResult{{EditalID: 5}},
		},
	}
	if err := srv.history.Save(context.Background(), run); err != nil {
		t.Fatal(err)
	}

	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+run.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got history.Run
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.ID != run.ID || got.Consulta != "nobreak 3kva" {
		t.Errorf("run = %+v", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing run: status = %d, want 404", w.Code)
	}
}

func TestHandleSearch(t *testing.T) {
	srv := newTestServer(t)
	run := &history.Run{
		ID:       "run-1",
		Consulta: "switch",
		Response: match.MatchMultipleResponse{
			Results: []match.EditalResult{{
				EditalID:  9,
				Resultado: match.ItemList{{Requisito: "gerenciamento snmp", Status: "ATENDE"}},
			}},
		},
	}
	if err := srv.keyword.IndexRun(run); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=snmp", nil)
	w := httptest.NewRecorder()
	srv.handleSearch(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Results []*keyword.Result `json:"results"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 1 || out.Results[0].Entry.Requisito != "gerenciamento snmp" {
		t.Errorf("results = %+v", out.Results)
	}

	w = httptest.NewRecorder()
	srv.handleSearch(w, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", w.Code)
	}
}

func TestHandleSearch_disabled(t *testing.T) {
	srv := NewServer(NewRunState(), nil, nil, &config.ServerConfig{}, zap.NewNop())
	w := httptest.NewRecorder()
	srv.handleSearch(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=x", nil))
	if w.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", w.Code)
	}
}

func TestHandleExportCSV(t *testing.T) {
	srv := newTestServer(t)
	completeRun(t, srv, "switch 24p")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	w := httptest.NewRecorder()
	srv.handleExportCSV(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	lines := strings.Split(body, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header + 3 rows:\n%s", len(lines), body)
	}
	if lines[0] != strings.Join(match.Columns, ",") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(body, "24 portas poe") {
		t.Error("row content missing")
	}
}

func TestHandleExportXLSX(t *testing.T) {
	srv := newTestServer(t)
	completeRun(t, srv, "switch 24p")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/export/xlsx", nil)
	w := httptest.NewRecorder()
	srv.handleExportXLSX(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	w := httptest.NewRecorder()
	srv.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
