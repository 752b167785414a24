package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEngineConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadEngine(t *testing.T) {
	path := writeEngineConfig(t, `
origin: https://example.com
content_root: content
chat_endpoint: http://localhost:8000
preferences_file: prefs.toml
javascript:
  chat-widget:
    source: assets/js/chat-widget.js
    out_dir: static/js
`)

	engine, err := LoadEngine(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", engine.Origin)
	assert.Equal(t, "content", engine.ContentRoot)
	assert.Equal(t, "http://localhost:8000", engine.ChatEndpoint)
	assert.Equal(t, "prefs.toml", engine.PreferencesFile)
	require.Contains(t, engine.JavascriptTargets, "chat-widget")
	assert.Equal(t, "static/js", engine.JavascriptTargets["chat-widget"].OutDir)
}

func TestLoadEngineDefaults(t *testing.T) {
	path := writeEngineConfig(t, `origin: https://example.com`)

	engine, err := LoadEngine(path)
	require.NoError(t, err)
	assert.Equal(t, "page_content", engine.ContentRoot)
	assert.Equal(t, "preferences.toml", engine.PreferencesFile)
}

func TestLoadEngineChatEndpointFromEnv(t *testing.T) {
	t.Setenv("CHAT_API_URL", "http://chat.internal:8000")
	path := writeEngineConfig(t, `origin: https://example.com`)

	engine, err := LoadEngine(path)
	require.NoError(t, err)
	assert.Equal(t, "http://chat.internal:8000", engine.ChatEndpoint)
}

func TestLoadEngineMissingFile(t *testing.T) {
	_, err := LoadEngine(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
