package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/decom-ledger/internal/domain"
)

func fixedExporter(dir, format string) *FileExporter {
	x := NewFileExporter(dir, format)
	x.now = func() time.Time { return time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC) }
	return x
}

func TestFileExporter_CSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	x := fixedExporter(dir, "csv")

	path, err := x.Export(context.Background(), []domain.Equipment{
		domain.NewByTime("Drill", "12-345", "2020/01/01", "2021/01/01", "2022/01/01"),
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "equipment_2024-03-09.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Drill,12-345")
}

func TestFileExporter_XLSX(t *testing.T) {
	x := fixedExporter(t.TempDir(), "xlsx")

	path, err := x.Export(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, ".xlsx", filepath.Ext(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestFileExporter_UnknownFormat(t *testing.T) {
	x := fixedExporter(t.TempDir(), "pdf")

	_, err := x.Export(context.Background(), nil)

	assert.ErrorContains(t, err, "unsupported format")
}
