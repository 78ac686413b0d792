package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dining.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
seats: 7
courses: 2
min_delay: 1
max_delay: 4
unit: 10ms
seed: 42
`)

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Seats)
	assert.Equal(t, 2, cfg.Courses)
	assert.Equal(t, 1, cfg.MinDelay)
	assert.Equal(t, 4, cfg.MaxDelay)
	assert.Equal(t, "10ms", cfg.Unit)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadFileConfigPartial(t *testing.T) {
	// 文件里省略的字段保持默认值
	path := writeConfig(t, "seats: 9\n")

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Seats)
	assert.Equal(t, 3, cfg.Courses)
	assert.Equal(t, "100ms", cfg.Unit)
}

func TestLoadFileConfigMissing(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
