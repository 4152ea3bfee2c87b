package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/sokoban/internal/config"
	"github.com/plus3/sokoban/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesSessionField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sokoban.log")
	logger, err := logging.New(config.Log{Level: "info", Encoding: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("level loaded", zap.Int("boxes", 3))
	logger.Debug("hidden")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"level loaded"`)
	assert.Contains(t, string(data), `"session":"`)
	assert.Contains(t, string(data), `"boxes":3`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLevel(t *testing.T) {
	logger, err := logging.New(config.Log{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New(config.Log{Level: "loud", Encoding: "console"})
	assert.Error(t, err)
}
