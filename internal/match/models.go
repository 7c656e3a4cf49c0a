// Package match defines the MatchLLM payload types and the result-shaping
// pipeline: status normalization, executive-summary aggregation, and flat row
// projection for export.
package match

import "encoding/json"

// Produto is the product description sent with a match request.
type Produto struct {
	Nome      string                 `json:"nome"`
	Atributos map[string]interface{} `json:"atributos"`
}

// MatchMultipleRequest is the body of POST /editais/match_multiple.
type MatchMultipleRequest struct {
	Produto       Produto `json:"produto"`
	EditalIDs     []int64 `json:"edital_ids"`
	Consulta      string  `json:"consulta"`
	Model         string  `json:"model,omitempty"`
	UseRequisitos bool    `json:"use_requisitos"`
	Email         string  `json:"email,omitempty"`
}

// MatchItem is one evaluated requirement. Fields other than requisito and
// status have no guaranteed shape.
type MatchItem struct {
	Requisito        string `json:"requisito"`
	Status           string `json:"status"`
	Confidence       Flex   `json:"confidence"`
	MatchedAttribute string `json:"matched_attribute"`
	ValorProduto     Flex   `json:"valor_produto"`
	Justificativa    string `json:"justificativa,omitempty"`
	Evidence         Flex   `json:"evidence"`
	MissingFields    Flex   `json:"missing_fields"`
	SuggestedFix     string `json:"suggested_fix"`
}

// ItemList decodes the resultado field, which is a list of MatchItem on
// success but may be any other shape on partial failures. Non-list payloads
// decode to nil rather than failing the whole response.
type ItemList []MatchItem

// UnmarshalJSON decodes a JSON array of items; any other shape yields nil.
func (l *ItemList) UnmarshalJSON(data []byte) error {
	var items []MatchItem
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// EditalResult is one tender's outcome within a match run. Error and Resultado
// are mutually exclusive in practice: an errored tender carries no items.
type EditalResult struct {
	EditalID      int64    `json:"edital_id"`
	ResumoTecnico string   `json:"resumo_tecnico,omitempty"`
	Resultado     ItemList `json:"resultado,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// MatchMultipleResponse is the root aggregate for one match run. A new run
// fully replaces the previous one.
type MatchMultipleResponse struct {
	Consulta   string          `json:"consulta,omitempty"`
	Produto    json.RawMessage `json:"produto,omitempty"`
	Results    []EditalResult  `json:"results,omitempty"`
	EmailSent  bool            `json:"email_sent,omitempty"`
	EmailError string          `json:"email_error,omitempty"`
}
