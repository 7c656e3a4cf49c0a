// Package keyword provides a Bleve full-text index over archived requirement
// rows, powering search across past match runs.
package keyword

import (
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/matchllm/matchctl/internal/history"
	"github.com/matchllm/matchctl/internal/match"
)

// Entry is one indexed requirement row.
type Entry struct {
	RunID     string `json:"run_id"`
	EditalID  int64  `json:"edital_id"`
	Requisito string `json:"requisito"`
	Status    string `json:"status"`
	Evidence  string `json:"evidence"`
}

// Result is one search hit.
type Result struct {
	Entry Entry
	Score float64
}

// Index wraps a Bleve index of Entry documents.
type Index struct {
	index bleve.Index
}

// NewIndex creates or opens the index at path. An existing index is reused so
// that archived runs are not re-indexed on every start; remove the directory
// to force a rebuild after a mapping change.
func NewIndex(path string) (*Index, error) {
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open keyword index: %w", openErr)
		}
		return &Index{index: index}, nil
	}

	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	// Standard analyzer: lowercase + tokenize, no stemming, so Portuguese
	// requirement text matches the literal words users type.
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("requisito", textFieldMapping)
	docMapping.AddFieldMappingsAt("evidence", textFieldMapping)
	docMapping.AddFieldMappingsAt("status", textFieldMapping)
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("run_id", keywordFieldMapping)
	im.AddDocumentMapping("entry", docMapping)
	im.DefaultType = "entry"
	im.DefaultMapping = docMapping

	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword index: %w", err)
	}
	return &Index{index: index}, nil
}

// IndexRun indexes every requirement row of an archived run.
func (x *Index) IndexRun(run *history.Run) error {
	batch := x.index.NewBatch()
	for _, row := range match.AllRows(run.Response.Results) {
		entry := Entry{
			RunID:     run.ID,
			EditalID:  row.EditalID,
			Requisito: row.Requisito,
			Status:    row.Status,
			Evidence:  row.Evidence,
		}
		id := fmt.Sprintf("%s/%d/%s", run.ID, row.EditalID, row.Requisito)
		if err := batch.Index(id, entry); err != nil {
			return fmt.Errorf("failed to index entry: %w", err)
		}
	}
	if err := x.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to commit index batch: %w", err)
	}
	return nil
}

// DeleteRun removes every entry of a run from the index.
func (x *Index) DeleteRun(runID string) error {
	q := bleve.NewTermQuery(runID)
	q.SetField("run_id")
	req := bleve.NewSearchRequest(q)
	req.Size = 10000
	results, err := x.index.Search(req)
	if err != nil {
		return fmt.Errorf("failed to find run entries: %w", err)
	}
	batch := x.index.NewBatch()
	for _, hit := range results.Hits {
		batch.Delete(hit.ID)
	}
	return x.index.Batch(batch)
}

// Search runs a match query over requirement text and evidence.
func (x *Index) Search(query string, limit int) ([]*Result, error) {
	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit
	req.Fields = []string{"*"}
	results, err := x.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}
	out := make([]*Result, 0, len(results.Hits))
	for _, hit := range results.Hits {
		entry := Entry{
			RunID:     fieldString(hit.Fields, "run_id"),
			Requisito: fieldString(hit.Fields, "requisito"),
			Status:    fieldString(hit.Fields, "status"),
			Evidence:  fieldString(hit.Fields, "evidence"),
		}
		if v, ok := hit.Fields["edital_id"].(float64); ok {
			entry.EditalID = int64(v)
		}
		out = append(out, &Result{Entry: entry, Score: hit.Score})
	}
	return out, nil
}

// Count returns the number of indexed entries.
func (x *Index) Count() (uint64, error) {
	return x.index.DocCount()
}

// Close closes the underlying index.
func (x *Index) Close() error {
	return x.index.Close()
}

func fieldString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
