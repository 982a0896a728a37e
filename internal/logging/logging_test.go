package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minerun/internal/config"
)

func TestSetupConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "development"

	var buf bytes.Buffer
	a, b := logrus.New(), logrus.New()
	require.NoError(t, Setup(cfg, &buf, a, b))

	assert.Equal(t, logrus.DebugLevel, a.GetLevel())
	assert.Equal(t, logrus.DebugLevel, b.GetLevel())

	a.Debug("from a")
	b.Trace("hidden")
	assert.Contains(t, buf.String(), "from a")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetupFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"
	cfg.LogFile = filepath.Join(t.TempDir(), "minefield.log")

	log := logrus.New()
	require.NoError(t, Setup(cfg, nil, log))

	log.WithField("round", "r1").Warn("mine hit")
	log.Info("dropped")

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "mine hit", entry["msg"])
	assert.Equal(t, "r1", entry["round"])
}

func TestSetupBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	assert.Error(t, Setup(cfg, nil, logrus.New()))
}
