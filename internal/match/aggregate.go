package match

import (
	"math"
	"sort"
)

// Recommendation messages, selected by Summarize.
const (
	RecSemDados = "Sem dados suficientes para recomendação."
	RecAvancar  = "Recomendação: avançar (produto atende aos requisitos analisados)."
	RecAtencao  = "Recomendação: atenção (há requisitos não atendidos; avaliar alternativas ou adequações)."
	RecRevisar  = "Recomendação: revisar (há pontos em dúvida; coletar evidências/dados técnicos)."
)

// maxTopGaps caps the prioritized gap list in the executive summary.
const maxTopGaps = 8

// Gap is a requirement classified Danger or Warning.
type Gap struct {
	EditalID   int64   `json:"edital_id"`
	Requisito  string  `json:"requisito"`
	Status     string  `json:"status"`
	Confidence float64 `json:"confidence"`
}

// ExecutiveSummary is the aggregated view over a full match run. It is derived
// state, recomputed from the response and never persisted.
type ExecutiveSummary struct {
	Total        int     `json:"total"`
	Atende       int     `json:"atende"`
	NaoAtende    int     `json:"nao_atende"`
	Duvida       int     `json:"duvida"`
	Score        float64 `json:"score"`
	TopGaps      []Gap   `json:"top_gaps"`
	Recomendacao string  `json:"recomendacao"`
}

// Summarize folds every item of every tender into counters, a prioritized gap
// list, and a recommendation. Errored tenders contribute zero items. The input
// is only read, never mutated.
func Summarize(results []EditalResult) ExecutiveSummary {
	var total, atende, naoAtende, duvida int
	var gaps []Gap

	for _, r := range results {
		for _, it := range r.Resultado {
			total++
			conf := it.Confidence.Float()
			if math.IsNaN(conf) || math.IsInf(conf, 0) {
				conf = 0
			}
			switch Classify(it.Status) {
			case Success:
				atende++
			case Danger:
				naoAtende++
				gaps = append(gaps, newGap(r.EditalID, it, conf))
			case Warning:
				duvida++
				gaps = append(gaps, newGap(r.EditalID, it, conf))
			}
		}
	}

	// Danger before Warning, then higher confidence first. Stable so that
	// exact confidence ties keep response order.
	sort.SliceStable(gaps, func(i, j int) bool {
		gi, gj := gapRank(gaps[i]), gapRank(gaps[j])
		if gi != gj {
			return gi < gj
		}
		return gaps[i].Confidence > gaps[j].Confidence
	})
	if len(gaps) > maxTopGaps {
		gaps = gaps[:maxTopGaps]
	}

	score := 0.0
	if total > 0 {
		score = float64(atende) / float64(total)
	}

	rec := RecSemDados
	if total > 0 {
		switch {
		case naoAtende == 0 && duvida == 0:
			rec = RecAvancar
		case naoAtende > 0:
			rec = RecAtencao
		default:
			rec = RecRevisar
		}
	}

	return ExecutiveSummary{
		Total:        total,
		Atende:       atende,
		NaoAtende:    naoAtende,
		Duvida:       duvida,
		Score:        score,
		TopGaps:      gaps,
		Recomendacao: rec,
	}
}

func newGap(editalID int64, it MatchItem, conf float64) Gap {
	req := it.Requisito
	if req == "" {
		req = Placeholder
	}
	return Gap{
		EditalID:   editalID,
		Requisito:  req,
		Status:     StatusLabel(it.Status),
		Confidence: conf,
	}
}

func gapRank(g Gap) int {
	if Classify(g.Status) == Danger {
		return 0
	}
	return 1
}

// OverviewRow is the per-tender line of the overview table.
type OverviewRow struct {
	EditalID      int64  `json:"edital_id"`
	ResumoTecnico string `json:"resumo_tecnico,omitempty"`
	Error         string `json:"error,omitempty"`
	Total         int    `json:"total"`
	Atende        int    `json:"atende"`
	NaoAtende     int    `json:"nao_atende"`
	Duvida        int    `json:"duvida"`
}

// Badge returns the display category for the row: Danger for an errored
// tender, Warning when anything failed, Success when something passed,
// Neutral otherwise.
func (r OverviewRow) Badge() Category {
	switch {
	case r.Error != "":
		return Danger
	case r.NaoAtende > 0:
		return Warning
	case r.Atende > 0:
		return Success
	default:
		return Neutral
	}
}

// OverviewRows computes one OverviewRow per tender, preserving response order.
func OverviewRows(results []EditalResult) []OverviewRow {
	rows := make([]OverviewRow, 0, len(results))
	for _, r := range results {
		row := OverviewRow{
			EditalID:      r.EditalID,
			ResumoTecnico: r.ResumoTecnico,
			Error:         r.Error,
			Total:         len(r.Resultado),
		}
		for _, it := range r.Resultado {
			switch Classify(it.Status) {
			case Success:
				row.Atende++
			case Danger:
				row.NaoAtende++
			case Warning:
				row.Duvida++
			}
		}
		rows = append(rows, row)
	}
	return rows
}
