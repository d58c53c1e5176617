package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/ipiloni/phishintel/server/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// FileURLSourceFactory implements URLSourceFactory for dotenv properties files
type FileURLSourceFactory struct{}

// SupportedProvider returns the provider name
func (f *FileURLSourceFactory) SupportedProvider() string {
	return "file"
}

// ValidateConfig validates the configuration for properties file lookups
func (f *FileURLSourceFactory) ValidateConfig(config config.URLSourceConfig) error {
	if strings.TrimSpace(config.FilePath) == "" {
		return fmt.Errorf("file path is required for file url source provider")
	}
	if strings.TrimSpace(config.Key) == "" {
		return fmt.Errorf("key is required for file url source provider")
	}
	return nil
}

// CreateSource creates a properties file url source
func (f *FileURLSourceFactory) CreateSource(ctx context.Context, config config.URLSourceConfig, logger *zap.Logger) (URLSource, error) {
	logger.Info("reading backend url from properties file",
		zap.String("file_path", config.FilePath),
		zap.String("key", config.Key))

	return NewFileURLSource(config.FilePath, config.Key), nil
}

// FileURLSource reads the backend url from a dotenv formatted properties file.
// The file is read on every lookup so edits apply without a restart.
type FileURLSource struct {
	path string
	key  string
}

var _ URLSource = (*FileURLSource)(nil)

// NewFileURLSource creates a source reading key from the file at path
func NewFileURLSource(path, key string) *FileURLSource {
	return &FileURLSource{path: path, key: key}
}

// Lookup returns the value for the key, or empty when the key is absent
func (s *FileURLSource) Lookup(ctx context.Context) (string, error) {
	values, err := godotenv.Read(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read properties file %s: %w", s.path, err)
	}

	return strings.TrimSpace(values[s.key]), nil
}

// Provider returns the provider name
func (s *FileURLSource) Provider() string {
	return "file"
}

// Close is a no-op for file lookups
func (s *FileURLSource) Close() error {
	return nil
}
