// Package cli renders command output in text and JSON formats.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matchllm/matchctl/internal/api"
	"github.com/matchllm/matchctl/internal/history"
	"github.com/matchllm/matchctl/internal/keyword"
	"github.com/matchllm/matchctl/internal/match"
	"github.com/matchllm/matchctl/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat validates a -output flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteMatchResult writes a full match run: per-tender overview, the
// executive summary, and any email outcome.
func WriteMatchResult(w io.Writer, resp *match.MatchMultipleResponse, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, resp)
	}
	summary := match.Summarize(resp.Results)
	overview := match.OverviewRows(resp.Results)

	fmt.Fprintf(w, "\nConsulta: %s\n\n", resp.Consulta)
	fmt.Fprintln(w, "--- Editais ---")
	for _, row := range overview {
		if row.Error != "" {
			fmt.Fprintf(w, "Edital %d: erro: %s\n", row.EditalID, row.Error)
			continue
		}
		fmt.Fprintf(w, "Edital %d [%s]: %d atende, %d não atende, %d dúvida (%d itens)\n",
			row.EditalID, row.Badge(), row.Atende, row.NaoAtende, row.Duvida, row.Total)
		if row.ResumoTecnico != "" {
			fmt.Fprintf(w, "  %s\n", utils.Truncate(row.ResumoTecnico, 200))
		}
	}
	fmt.Fprintln(w)
	writeSummaryText(w, summary)

	if resp.EmailSent {
		fmt.Fprintln(w, "\nEmail enviado.")
	}
	if resp.EmailError != "" {
		fmt.Fprintf(w, "\nFalha no envio de email: %s\n", resp.EmailError)
	}
	return nil
}

func writeSummaryText(w io.Writer, s match.ExecutiveSummary) {
	fmt.Fprintln(w, "--- Resumo executivo ---")
	fmt.Fprintf(w, "Total: %d | Atende: %d | Não atende: %d | Dúvida: %d | Score: %.0f%%\n",
		s.Total, s.Atende, s.NaoAtende, s.Duvida, s.Score*100)
	if len(s.TopGaps) > 0 {
		fmt.Fprintln(w, "\nPrincipais lacunas:")
		for i, gap := range s.TopGaps {
			fmt.Fprintf(w, "%2d. [edital %d] %s — %s (%s)\n",
				i+1, gap.EditalID, gap.Status, utils.Truncate(gap.Requisito, 120),
				match.ConfidencePercent(gap.Confidence))
		}
	}
	fmt.Fprintf(w, "\n%s\n", s.Recomendacao)
}

// WriteRuns writes the archived run list.
func WriteRuns(w io.Writer, runs []*history.Run, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "Nenhum run arquivado.")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(w, "%s  %s  %s  (total %d, atende %d, não atende %d)\n",
			run.ID, run.CreatedAt.Format("2006-01-02 15:04"),
			utils.Truncate(run.Consulta, 60),
			run.Summary.Total, run.Summary.Atende, run.Summary.NaoAtende)
	}
	return nil
}

// WriteSearchResults writes keyword search hits over the run archive.
func WriteSearchResults(w io.Writer, results []*keyword.Result, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, results)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "Nenhum resultado.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Run: %s | Edital: %d | Score: %.4f\n", r.Entry.RunID, r.Entry.EditalID, r.Score)
		fmt.Fprintf(w, "%s [%s]\n", r.Entry.Requisito, r.Entry.Status)
		if r.Entry.Evidence != "" {
			fmt.Fprintf(w, "  %s\n", utils.Truncate(r.Entry.Evidence, 200))
		}
	}
	return nil
}

// WriteProdutos writes the saved product list.
func WriteProdutos(w io.Writer, produtos []api.ProdutoRow, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, produtos)
	}
	if len(produtos) == 0 {
		fmt.Fprintln(w, "Nenhum produto cadastrado.")
		return nil
	}
	for _, p := range produtos {
		attrs := strings.TrimSpace(string(p.AtributosJSON))
		fmt.Fprintf(w, "%4d  %s\n", p.ID, p.Nome)
		if attrs != "" && attrs != "null" {
			fmt.Fprintf(w, "      %s\n", utils.Truncate(attrs, 160))
		}
	}
	return nil
}
