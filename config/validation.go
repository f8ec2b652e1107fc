package config

import (
	"fmt"
	"net/url"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	if err := validateNewsConfig(&config.News); err != nil {
		return fmt.Errorf("news config validation failed: %w", err)
	}

	if err := validateVideoConfig(&config.Video); err != nil {
		return fmt.Errorf("video config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.FeedTimeout <= 0 || config.PageTimeout <= 0 {
		return fmt.Errorf("HTTP timeouts must be positive")
	}

	if config.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}

	return nil
}

func validateNewsConfig(config *NewsConfig) error {
	if len(config.FeedURLs) == 0 {
		return fmt.Errorf("at least one news feed URL is required")
	}

	for _, feedURL := range config.FeedURLs {
		if err := validateAbsoluteURL(feedURL); err != nil {
			return fmt.Errorf("news feed URL %q: %w", feedURL, err)
		}
	}

	if config.FallbackFeedURL != "" {
		if err := validateAbsoluteURL(config.FallbackFeedURL); err != nil {
			return fmt.Errorf("fallback feed URL %q: %w", config.FallbackFeedURL, err)
		}
	}

	return validatePagination(config.MaxItems, config.DefaultPageSize, config.MaxPageSize)
}

func validateVideoConfig(config *VideoConfig) error {
	return validatePagination(config.MaxItems, config.DefaultPageSize, config.MaxPageSize)
}

func validatePagination(maxItems, defaultPageSize, maxPageSize int) error {
	if maxItems < 1 {
		return fmt.Errorf("max items must be positive, got %d", maxItems)
	}

	if defaultPageSize < 1 || maxPageSize < 1 {
		return fmt.Errorf("page sizes must be positive, got default %d, max %d", defaultPageSize, maxPageSize)
	}

	if defaultPageSize > maxPageSize {
		return fmt.Errorf("default page size %d exceeds max page size %d", defaultPageSize, maxPageSize)
	}

	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}
