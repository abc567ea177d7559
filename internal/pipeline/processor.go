package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ordersight/contracts-extractor/internal/contract"
	"github.com/ordersight/contracts-extractor/internal/extract"
)

// Processor coordinates the text stage and the field-extraction stage for one
// document at a time. Documents are independent; the processor holds no state
// between calls.
type Processor struct {
	Log       *slog.Logger
	Extractor extract.TextExtractor
	Engine    *extract.Engine
}

func NewProcessor(log *slog.Logger, tx extract.TextExtractor, engine *extract.Engine) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{Log: log, Extractor: tx, Engine: engine}
}

// ProcessFile extracts text from the document at path and runs the field
// passes over it. A text-stage failure is a hard error; missing labels are
// not.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*contract.Record, error) {
	jobID := uuid.New()

	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		p.Log.Error("processor.text.failed", "job_id", jobID, "path", path, "err", err)
		return nil, err
	}
	p.Log.Info("processor.text.ok",
		"job_id", jobID,
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	for _, w := range res.Warnings {
		p.Log.Warn("processor.text.warning", "job_id", jobID, "path", path, "warning", w)
	}

	rec := p.Engine.ExtractContract(filepath.Base(path), res.Text)
	p.Log.Info("processor.fields.ok", "job_id", jobID, "path", path)
	return rec, nil
}
