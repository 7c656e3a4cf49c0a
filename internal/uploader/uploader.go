// Package uploader sends tender PDFs to the backend one at a time. Batches
// are sequential: a failure aborts the remaining files, but uploads already
// accepted stay indexed server-side and their ids are reported.
package uploader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/matchllm/matchctl/internal/api"
)

// EditalUploader is the slice of the API client the batch needs.
type EditalUploader interface {
	UploadEdital(ctx context.Context, filename string, data []byte) (*api.UploadEditalResponse, error)
}

// Batch uploads tender PDFs sequentially.
type Batch struct {
	client EditalUploader
	logger *zap.Logger
}

// NewBatch creates a batch uploader.
func NewBatch(client EditalUploader, logger *zap.Logger) *Batch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batch{client: client, logger: logger}
}

// UploadEditais uploads each path in order and returns the edital ids
// accepted so far. On the first failure it stops and returns the ids already
// accepted together with an error naming the failing file; nothing is rolled
// back.
func (b *Batch) UploadEditais(ctx context.Context, paths []string) ([]int64, error) {
	var ids []int64
	for _, path := range paths {
		id, err := b.uploadOne(ctx, path)
		if err != nil {
			return ids, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
		}
		ids = append(ids, id)
		b.logger.Info("edital uploaded", zap.String("file", filepath.Base(path)), zap.Int64("edital_id", id))
	}
	return ids, nil
}

func (b *Batch) uploadOne(ctx context.Context, path string) (int64, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return 0, fmt.Errorf("not a PDF file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := ValidatePDF(data); err != nil {
		return 0, err
	}
	resp, err := b.client.UploadEdital(ctx, filepath.Base(path), data)
	if err != nil {
		return 0, err
	}
	return resp.EditalID, nil
}
