package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Persisted settings keys. The file is a flat JSON object holding exactly
// these four keys plus whatever unknown keys the user added by hand; unknown
// keys survive a save untouched.
const (
	KeyPDFReader          = "pdf_reader"
	KeyReaderPath         = "reader_path"
	KeySearchContextChars = "search_context_chars"
	KeyMaxSearchResults   = "max_search_results"
)

const (
	defaultPDFReader          = "skim"
	defaultSearchContextChars = 100
	defaultMaxSearchResults   = 10
)

// Settings is the persisted navigator settings store. Reads are served from
// memory; Set rewrites the whole file. Concurrent writers race
// last-writer-wins with no locking, same as the file format's other
// consumers.
type Settings struct {
	path   string
	values map[string]any
}

func defaultValues() map[string]any {
	return map[string]any{
		KeyPDFReader:          defaultPDFReader,
		KeyReaderPath:         nil, // auto-detect
		KeySearchContextChars: defaultSearchContextChars,
		KeyMaxSearchResults:   defaultMaxSearchResults,
	}
}

// LoadSettings reads the settings file at path, merging defaults for any
// missing key. A missing or malformed file is replaced with the default
// object. An empty path falls back to the well-known location in the user's
// home directory.
func LoadSettings(path string) *Settings {
	if path == "" {
		path = defaultSettingsPath()
	}

	s := &Settings{path: path, values: defaultValues()}

	data, err := os.ReadFile(path)
	if err == nil {
		var stored map[string]any
		if json.Unmarshal(data, &stored) == nil {
			for k, v := range stored {
				s.values[k] = v
			}
			return s
		}
	}

	// Missing or malformed file: write the defaults back so the user has
	// something to edit.
	_ = s.Save()
	return s
}

// Path returns the file the settings persist to.
func (s *Settings) Path() string {
	return s.path
}

// Save writes the full settings object to disk, overwriting the file.
func (s *Settings) Save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Get returns the raw value stored under key, or nil.
func (s *Settings) Get(key string) any {
	return s.values[key]
}

// Set stores a value and persists the whole object.
func (s *Settings) Set(key string, value any) error {
	s.values[key] = value
	return s.Save()
}

// PDFReader returns the configured viewer name, lower-cased.
func (s *Settings) PDFReader() string {
	if v, ok := s.values[KeyPDFReader].(string); ok && v != "" {
		return strings.ToLower(v)
	}
	return defaultPDFReader
}

// ReaderPath returns the viewer executable override, or "" for auto-detect.
func (s *Settings) ReaderPath() string {
	if v, ok := s.values[KeyReaderPath].(string); ok {
		return v
	}
	return ""
}

// SearchContextChars returns the context window size for search previews.
func (s *Settings) SearchContextChars() int {
	return s.intValue(KeySearchContextChars, defaultSearchContextChars)
}

// MaxSearchResults returns the global search result cap.
func (s *Settings) MaxSearchResults() int {
	return s.intValue(KeyMaxSearchResults, defaultMaxSearchResults)
}

// intValue reads an integer setting. JSON decoding stores numbers as
// float64, so both representations are accepted.
func (s *Settings) intValue(key string, def int) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}
