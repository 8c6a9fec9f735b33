package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// FileExporter writes exports into a directory, one file per day:
// equipment_<YYYY-MM-DD>.<format>. A second export on the same day replaces the first.
type FileExporter struct {
	dir    string
	format string
	now    func() time.Time
}

// NewFileExporter constructs a FileExporter. format is "xlsx" or "csv".
func NewFileExporter(dir, format string) *FileExporter {
	return &FileExporter{dir: dir, format: format, now: time.Now}
}

// Export writes records to a new file and returns its path.
func (x *FileExporter) Export(_ context.Context, records []domain.Equipment) (string, error) {
	var write func(f *os.File, records []domain.Equipment) error
	switch x.format {
	case "xlsx":
		write = func(f *os.File, r []domain.Equipment) error { return WriteXLSX(f, r) }
	case "csv":
		write = func(f *os.File, r []domain.Equipment) error { return WriteCSV(f, r) }
	default:
		return "", fmt.Errorf("report.FileExporter.Export: unsupported format %q", x.format)
	}

	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", fmt.Errorf("report.FileExporter.Export: %w", err)
	}

	path := filepath.Join(x.dir, fmt.Sprintf("equipment_%s.%s", x.now().Format("2006-01-02"), x.format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report.FileExporter.Export: %w", err)
	}

	if err := write(f, records); err != nil {
		f.Close()
		return "", fmt.Errorf("report.FileExporter.Export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report.FileExporter.Export: %w", err)
	}
	return path, nil
}
