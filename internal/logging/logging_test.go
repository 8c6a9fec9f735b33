package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/decom-ledger/internal/logging"
)

func TestNew_writesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "info")

	log.Info("record saved", "id", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "record saved", entry["msg"])
	assert.EqualValues(t, 1, entry["id"])
}

func TestNew_levelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "warn")

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestNew_unknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "chatty")

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestNewFileWriter_createsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")
	w := logging.NewFileWriter(path, 1)

	log := logging.New(w, "info")
	log.Info("started")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
}
