package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BODAI_RUNTIME_PATH", "")

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".bodai"), c.GetRuntimePath())
	assert.Equal(t, filepath.Join(home, ".bodai", "bodai.sqlite3"), c.GetDatabasePath())
	assert.Equal(t, filepath.Join(home, ".bodai", "context.json"), c.GetContextPath())
	assert.Equal(t, "en", c.GetLanguage())
	assert.Empty(t, c.GetKnowledgePath())
	assert.True(t, c.EnableHTTP)
	assert.False(t, c.EnableTelegram)
}

func TestParseAppConfig_Overrides(t *testing.T) {
	runtime := t.TempDir()
	t.Setenv("BODAI_RUNTIME_PATH", runtime)
	t.Setenv("BODAI_LANGUAGE", "ro")
	t.Setenv("BODAI_KNOWLEDGE_PATH", "/etc/bodai/kb.yaml")

	c, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, runtime, c.GetRuntimePath())
	assert.Equal(t, "ro", c.GetLanguage())
	assert.Equal(t, "/etc/bodai/kb.yaml", c.GetKnowledgePath())
}

func TestParseAppConfig_InvalidFlag(t *testing.T) {
	t.Setenv("ENABLE_HTTP", "maybe")

	_, err := ParseAppConfig()
	assert.Error(t, err)
}

func TestGetRuntimePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Setenv("BODAI_RUNTIME_PATH", "custom")
	assert.Equal(t, filepath.Join(home, "custom"), GetRuntimePath())

	t.Setenv("BODAI_RUNTIME_PATH", "/srv/bodai")
	assert.Equal(t, "/srv/bodai", GetRuntimePath())
}
