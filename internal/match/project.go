package match

import (
	"strconv"
	"strings"
)

// Columns is the fixed export column order.
var Columns = []string{
	"edital_id",
	"requisito",
	"status",
	"confidence",
	"matched_attribute",
	"valor_produto",
	"evidence",
	"missing_fields",
	"suggested_fix",
}

// Row is one evaluated requirement flattened for tabular export. All values
// are display-ready strings.
type Row struct {
	EditalID         int64  `json:"edital_id"`
	Requisito        string `json:"requisito"`
	Status           string `json:"status"`
	Confidence       string `json:"confidence"`
	MatchedAttribute string `json:"matched_attribute"`
	ValorProduto     string `json:"valor_produto"`
	Evidence         string `json:"evidence"`
	MissingFields    string `json:"missing_fields"`
	SuggestedFix     string `json:"suggested_fix"`
}

// Record returns the row keyed by export column name.
func (r Row) Record() map[string]string {
	return map[string]string{
		"edital_id":         strconv.FormatInt(r.EditalID, 10),
		"requisito":         r.Requisito,
		"status":            r.Status,
		"confidence":        r.Confidence,
		"matched_attribute": r.MatchedAttribute,
		"valor_produto":     r.ValorProduto,
		"evidence":          r.Evidence,
		"missing_fields":    r.MissingFields,
		"suggested_fix":     r.SuggestedFix,
	}
}

// Rows flattens one tender's items into export rows. Multi-valued evidence is
// joined with " | ", missing fields with ", "; every scalar is coerced
// defensively so malformed items still yield a row.
func Rows(result EditalResult) []Row {
	rows := make([]Row, 0, len(result.Resultado))
	for _, it := range result.Resultado {
		rows = append(rows, Row{
			EditalID:         result.EditalID,
			Requisito:        it.Requisito,
			Status:           StatusLabel(it.Status),
			Confidence:       ConfidencePercent(it.Confidence.Float()),
			MatchedAttribute: it.MatchedAttribute,
			ValorProduto:     it.ValorProduto.String(),
			Evidence:         strings.Join(it.Evidence.Values(), " | "),
			MissingFields:    strings.Join(it.MissingFields.Values(), ", "),
			SuggestedFix:     it.SuggestedFix,
		})
	}
	return rows
}

// AllRows concatenates every tender's rows in response order. Errored tenders
// contribute no rows.
func AllRows(results []EditalResult) []Row {
	var rows []Row
	for _, r := range results {
		rows = append(rows, Rows(r)...)
	}
	return rows
}

// Records converts rows into column-keyed maps for the export serializers.
func Records(rows []Row) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, r := range rows {
		out[i] = r.Record()
	}
	return out
}
