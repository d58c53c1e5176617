package server

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ipiloni/phishintel/server/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisURLSourceFactory implements URLSourceFactory for Redis lookups
type RedisURLSourceFactory struct{}

// SupportedProvider returns the provider name
func (f *RedisURLSourceFactory) SupportedProvider() string {
	return "redis"
}

// ValidateConfig validates the configuration for Redis lookups
func (f *RedisURLSourceFactory) ValidateConfig(config config.URLSourceConfig) error {
	if config.URL == "" {
		return fmt.Errorf("URL is required for redis url source provider")
	}
	if strings.TrimSpace(config.Key) == "" {
		return fmt.Errorf("key is required for redis url source provider")
	}
	return nil
}

// CreateSource creates a Redis url source
func (f *RedisURLSourceFactory) CreateSource(ctx context.Context, config config.URLSourceConfig, logger *zap.Logger) (URLSource, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	if dbStr, exists := config.Options["db"]; exists {
		if db, err := strconv.Atoi(dbStr); err == nil {
			opt.DB = db
		}
	}

	if maxRetriesStr, exists := config.Options["max_retries"]; exists {
		if maxRetries, err := strconv.Atoi(maxRetriesStr); err == nil {
			opt.MaxRetries = maxRetries
		}
	}

	if timeoutStr, exists := config.Options["timeout"]; exists {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			opt.DialTimeout = timeout
			opt.ReadTimeout = timeout
			opt.WriteTimeout = timeout
		}
	}

	if username, exists := config.Credentials["username"]; exists {
		opt.Username = username
	}
	if password, exists := config.Credentials["password"]; exists {
		opt.Password = password
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB),
		zap.String("key", config.Key))

	return NewRedisURLSource(client, config.Key), nil
}

// RedisURLSource reads the backend url from a Redis string key
type RedisURLSource struct {
	client *redis.Client
	key    string
}

var _ URLSource = (*RedisURLSource)(nil)

// NewRedisURLSource creates a source reading key with client
func NewRedisURLSource(client *redis.Client, key string) *RedisURLSource {
	return &RedisURLSource{client: client, key: key}
}

// Lookup returns the key value, or empty when the key does not exist
func (s *RedisURLSource) Lookup(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", s.key, err)
	}

	return strings.TrimSpace(value), nil
}

// Provider returns the provider name
func (s *RedisURLSource) Provider() string {
	return "redis"
}

// Close closes the Redis client
func (s *RedisURLSource) Close() error {
	return s.client.Close()
}
