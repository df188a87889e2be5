package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_ReadsLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "")

	Init()

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	Init()

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInitWith_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.log")
	t.Setenv("LOG_LEVEL", "info")

	InitWith(FileOptions{Path: path})
	Component("test").Info("floor generated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "floor generated")
	assert.Contains(t, string(data), "component=test")
}
