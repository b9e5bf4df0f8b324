package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := decodeConfig("test", strings.NewReader("prompt: \"nlisp> \"\nhistory-file: /tmp/history\n"))
	require.NoError(t, err)
	assert.Equal(t, "nlisp> ", cfg.Prompt)
	assert.Equal(t, "/tmp/history", cfg.HistoryFile)

	cfg, err = decodeConfig("empty", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Prompt)

	_, err = decodeConfig("unknown", strings.NewReader("promt: oops\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.HistoryFile)

	path := filepath.Join(t.TempDir(), "nlisp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"$ \"\n"), 0o644))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
