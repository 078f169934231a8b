package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.json")
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := settingsPath(t)

	s := LoadSettings(path)

	assert.Equal(t, "skim", s.PDFReader())
	assert.Equal(t, "", s.ReaderPath())
	assert.Equal(t, 100, s.SearchContextChars())
	assert.Equal(t, 10, s.MaxSearchResults())

	// The defaults are written back so the user has a file to edit.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "skim", stored[KeyPDFReader])
}

func TestLoadSettingsMergesStoredValues(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{
		"pdf_reader": "Zathura",
		"search_context_chars": 250
	}`), 0o644))

	s := LoadSettings(path)

	// Reader names are normalized to lower case on read.
	assert.Equal(t, "zathura", s.PDFReader())
	assert.Equal(t, 250, s.SearchContextChars())
	// Missing keys fall back to defaults.
	assert.Equal(t, 10, s.MaxSearchResults())
	assert.Equal(t, "", s.ReaderPath())
}

func TestLoadSettingsMalformedFileReplaced(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := LoadSettings(path)
	assert.Equal(t, "skim", s.PDFReader())

	// The broken file was overwritten with valid defaults.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored map[string]any
	assert.NoError(t, json.Unmarshal(data, &stored))
}

func TestSetPersistsAndPreservesUnknownKeys(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{
		"pdf_reader": "evince",
		"my_custom_note": "keep me"
	}`), 0o644))

	s := LoadSettings(path)
	require.NoError(t, s.Set(KeyMaxSearchResults, 25))

	reloaded := LoadSettings(path)
	assert.Equal(t, 25, reloaded.MaxSearchResults())
	assert.Equal(t, "evince", reloaded.PDFReader())
	assert.Equal(t, "keep me", reloaded.Get("my_custom_note"))
}

func TestReaderPathOverride(t *testing.T) {
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"reader_path": "/opt/bin/zathura"}`), 0o644))

	s := LoadSettings(path)
	assert.Equal(t, "/opt/bin/zathura", s.ReaderPath())
}

func TestIntValueHandlesJSONNumbers(t *testing.T) {
	// Values round-tripped through JSON arrive as float64.
	path := settingsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"search_context_chars": 42}`), 0o644))

	s := LoadSettings(path)
	assert.Equal(t, 42, s.SearchContextChars())

	// Non-numeric stored values fall back to the default.
	require.NoError(t, s.Set(KeySearchContextChars, "lots"))
	assert.Equal(t, 100, s.SearchContextChars())
}

func TestSettingsPathAccessor(t *testing.T) {
	path := settingsPath(t)
	s := LoadSettings(path)
	assert.Equal(t, path, s.Path())
}
