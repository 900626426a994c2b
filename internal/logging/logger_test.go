package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	require.NoError(t, Initialize("", filepath.Join(t.TempDir(), "x.log")))
	require.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combobox.log")
	require.NoError(t, Initialize("info", path))

	Debug("hidden")
	Info("visible", zap.String("k", "v"))
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible")
	require.Contains(t, string(data), `"k": "v"`)
	require.NotContains(t, string(data), "hidden")

	UseLogger(zap.NewNop())
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "debug")
	require.NoError(t, Initialize("", filepath.Join(t.TempDir(), "env.log")))
	require.True(t, GetLogger().Core().Enabled(zapcore.DebugLevel))
	require.NoError(t, Sync())
	UseLogger(zap.NewNop())
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	require.Error(t, Initialize("loud", ""))
}

func TestUseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	UseLogger(zap.New(core))
	defer UseLogger(zap.NewNop())

	Info("dropped")
	Warn("kept", zap.Int("n", 1))
	Error("also kept")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, "kept", logs.All()[0].Message)
}
