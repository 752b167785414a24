package theme

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Preference keys. Each entry is independent and best-effort: a corrupt or
// missing value falls back to the default, never to an error.
const (
	keyTheme       = "theme"
	keyCustomTheme = "custom-theme"
	keyDarkMode    = "dark-mode"
	keyAnimations  = "animations-enabled"
)

// Store persists theme preferences as a small TOML file.
type Store struct {
	mu       sync.Mutex
	filePath string
	data     map[string]any
}

// NewStore opens the preference file at filePath, loading whatever is
// already there. An unreadable or unparseable file is discarded.
func NewStore(filePath string) *Store {
	s := &Store{
		filePath: filePath,
		data:     map[string]any{},
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("theme store: ignoring unreadable %s: %v", filePath, err)
		}
		return s
	}

	if err := toml.Unmarshal(raw, &s.data); err != nil {
		log.Printf("theme store: ignoring corrupt %s: %v", filePath, err)
		s.data = map[string]any{}
	}
	return s
}

func (s *Store) GetString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key].(string); ok {
		return v
	}
	return ""
}

// GetBool reports the stored value and whether one was present.
func (s *Store) GetBool(key string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key].(bool)
	return v, ok
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.save()
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	s.save()
}

// save writes the whole file; a write failure loses nothing but persistence.
func (s *Store) save() {
	raw, err := toml.Marshal(s.data)
	if err != nil {
		log.Printf("theme store: marshal failed: %v", err)
		return
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("theme store: %v", err)
			return
		}
	}
	if err := os.WriteFile(s.filePath, raw, 0644); err != nil {
		log.Printf("theme store: write failed: %v", err)
	}
}
