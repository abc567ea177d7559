package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tsawler/tabula"

	"github.com/ordersight/contracts-extractor/internal/extract"
)

// Extractor reads the text layer of PDF documents and implements
// extract.TextExtractor. There is no OCR fallback: a scanned PDF with no
// text layer yields empty text and the engine simply finds no labels.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{log: log}
}

// Extract pulls the text of every page. An unreadable or corrupt document is
// a hard error for the caller; per-page extraction oddities come back as
// warnings instead.
func (e *Extractor) Extract(ctx context.Context, path string) (extract.TextExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return extract.TextExtractionResult{}, err
	}
	start := time.Now()

	doc := tabula.Open(path)
	pages, err := doc.PageCount()
	if err != nil {
		return extract.TextExtractionResult{}, fmt.Errorf("read pdf %s: %w", path, err)
	}
	text, warnings, err := doc.Text()
	if err != nil {
		return extract.TextExtractionResult{}, fmt.Errorf("extract text from %s: %w", path, err)
	}

	res := extract.TextExtractionResult{
		Text:     text,
		Pages:    pages,
		Method:   "pdf-text",
		Duration: time.Since(start),
	}
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, w.Message)
	}

	e.log.Debug("pdftext.extract.ok",
		"path", path,
		"pages", pages,
		"chars", len(text),
		"warnings", len(res.Warnings),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
