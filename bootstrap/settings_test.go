package bootstrap

import (
	"sync"
	"testing"

	"github.com/ipiloni/phishintel/types"
	"github.com/stretchr/testify/assert"
)

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name       string
		defaultURL string
		expected   string
	}{
		{name: "empty uses built-in default", defaultURL: "", expected: types.DefaultBackendURL},
		{name: "blank uses built-in default", defaultURL: "  ", expected: types.DefaultBackendURL},
		{name: "custom default", defaultURL: "https://fallback.phishintel.com", expected: "https://fallback.phishintel.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := NewSettings(tt.defaultURL)

			assert.Equal(t, tt.expected, settings.BackendURL())
			assert.Equal(t, SourceDefault, settings.Source())
			assert.False(t, settings.Sealed())
		})
	}
}

func TestSettings_OverrideOnce(t *testing.T) {
	settings := NewSettings("")

	assert.False(t, settings.override("   "))
	assert.Equal(t, types.DefaultBackendURL, settings.BackendURL())
	assert.False(t, settings.Sealed())

	assert.True(t, settings.override(" http://api.example.com "))
	assert.Equal(t, "http://api.example.com", settings.BackendURL())
	assert.Equal(t, SourceEndpoint, settings.Source())
	assert.True(t, settings.Sealed())

	assert.False(t, settings.override("http://other.example.com"))
	assert.Equal(t, "http://api.example.com", settings.BackendURL())
}

func TestSettings_SealKeepsDefault(t *testing.T) {
	settings := NewSettings("")
	settings.seal()

	assert.True(t, settings.Sealed())
	assert.False(t, settings.override("http://api.example.com"))
	assert.Equal(t, types.DefaultBackendURL, settings.BackendURL())
}

func TestSettings_ConcurrentReads(t *testing.T) {
	settings := NewSettings("")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotEmpty(t, settings.BackendURL())
		}()
	}

	settings.override("http://api.example.com")
	wg.Wait()

	assert.Equal(t, "http://api.example.com", settings.BackendURL())
}
