package bootstrap

import (
	"strings"
	"sync"

	"github.com/ipiloni/phishintel/types"
)

// SettingSource tells where the current backend URL came from.
type SettingSource string

const (
	SourceDefault  SettingSource = "default"
	SourceEndpoint SettingSource = "endpoint"
)

// Settings owns the backend base URL shared by everything that runs after
// startup. It starts at a default and accepts a single override, written by
// the Bootstrapper. Reads are safe from any goroutine.
type Settings struct {
	mu         sync.RWMutex
	backendURL string
	source     SettingSource
	sealed     bool
}

// NewSettings creates a settings holder initialised to defaultURL, or to
// types.DefaultBackendURL when defaultURL is blank.
func NewSettings(defaultURL string) *Settings {
	defaultURL = strings.TrimSpace(defaultURL)
	if defaultURL == "" {
		defaultURL = types.DefaultBackendURL
	}

	return &Settings{
		backendURL: defaultURL,
		source:     SourceDefault,
	}
}

// BackendURL returns the backend base URL. It is never empty.
func (s *Settings) BackendURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backendURL
}

// Source reports whether the backend URL is still the default.
func (s *Settings) Source() SettingSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Sealed reports whether initialisation has finished and no further writes
// will be accepted.
func (s *Settings) Sealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sealed
}

// override replaces the backend URL and seals the holder. Blank values and
// writes after sealing are refused.
func (s *Settings) override(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return false
	}

	s.backendURL = url
	s.source = SourceEndpoint
	s.sealed = true
	return true
}

// seal closes the holder to writes, keeping its current value.
func (s *Settings) seal() {
	s.mu.Lock()
	s.sealed = true
	s.mu.Unlock()
}
