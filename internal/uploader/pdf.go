package uploader

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ValidatePDF checks that content parses as a PDF with at least one page.
// The backend rejects non-PDF uploads anyway; validating locally avoids
// spending a network round trip (and a failed batch) on an unreadable file.
func ValidatePDF(content []byte) error {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return fmt.Errorf("not a readable PDF: %w", err)
	}
	if r.NumPage() < 1 {
		return fmt.Errorf("PDF has no pages")
	}
	return nil
}
