// Package ledger maintains the local append-only CSV record of submissions.
package ledger

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tupelotree/contact-backend/models"
	"github.com/tupelotree/contact-backend/services"
	"go.uber.org/zap"
)

// Writer appends submission records to the local ledger file. Append is the
// only mutation it performs; the ledger is never read, rewritten or
// truncated.
type Writer struct {
	path   string
	logger *zap.Logger
}

// New creates a Writer for the given ledger path
func New(path string, logger *zap.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Path returns the configured ledger location
func (w *Writer) Path() string {
	return w.path
}

// Append writes one CSV line for the record, creating the ledger file and
// any missing parent directories on first use. A write error is a local I/O
// failure and fatal to the pipeline.
func (w *Writer) Append(ctx context.Context, rec models.LedgerRecord) error {
	line, err := rec.CSVLine()
	if err != nil {
		return services.NewDomainError(services.ErrorTypeLocalIO, "ledger write failed", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return services.NewDomainError(services.ErrorTypeLocalIO, "ledger write failed", err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return services.NewDomainError(services.ErrorTypeLocalIO, "ledger write failed", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return services.NewDomainError(services.ErrorTypeLocalIO, "ledger write failed", err)
	}

	w.logger.Debug("ledger record appended", zap.String("path", w.path))
	return nil
}
