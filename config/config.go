package config

import (
	"time"

	"antena/domain"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	HTTP       HTTPConfig       `json:"http"`
	Cache      CacheConfig      `json:"cache"`
	News       NewsConfig       `json:"news"`
	Video      VideoConfig      `json:"video"`
	ImageProxy ImageProxyConfig `json:"image_proxy"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Logging    LoggingConfig    `json:"logging"`

	// Stations is the static directory served at /v1/stations. Loaded from
	// StationsFile when set, otherwise the built-in defaults.
	Stations     []domain.Station `json:"stations"`
	StationsFile string           `json:"-" env:"STATIONS_FILE"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type HTTPConfig struct {
	FeedTimeout   time.Duration `json:"feed_timeout" env:"HTTP_FEED_TIMEOUT" default:"15s"`
	PageTimeout   time.Duration `json:"page_timeout" env:"HTTP_PAGE_TIMEOUT" default:"10s"`
	UserAgent     string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"`
	MaxFeedBytes  int64         `json:"max_feed_bytes" env:"HTTP_MAX_FEED_BYTES" default:"4194304"`
	MaxImageBytes int64         `json:"max_image_bytes" env:"HTTP_MAX_IMAGE_BYTES" default:"8388608"`
}

type CacheConfig struct {
	// ResponseTTL is advertised to intermediary caches; a multi-hour
	// staleness window is acceptable by design.
	ResponseTTL          time.Duration `json:"response_ttl" env:"CACHE_RESPONSE_TTL" default:"12h"`
	StaleWhileRevalidate time.Duration `json:"stale_while_revalidate" env:"CACHE_SWR_WINDOW" default:"10m"`
}

type NewsConfig struct {
	SourceName      string   `json:"source_name" env:"NEWS_SOURCE_NAME" default:"elcomercio"`
	FeedURLs        []string `json:"feed_urls" env:"NEWS_FEED_URLS" default:"https://elcomercio.pe/arcio/rss/?outputType=xml,https://elcomercio.pe/feed"`
	FallbackFeedURL string   `json:"fallback_feed_url" env:"NEWS_FALLBACK_FEED_URL" default:"https://news.google.com/rss/search?q=site:elcomercio.pe&hl=es-419&gl=PE&ceid=PE:es-419"`
	MaxItems        int      `json:"max_items" env:"NEWS_MAX_ITEMS" default:"12"`
	EnrichLimit     int      `json:"enrich_limit" env:"NEWS_ENRICH_LIMIT" default:"14"`
	DefaultPageSize int      `json:"default_page_size" env:"NEWS_DEFAULT_PAGE_SIZE" default:"6"`
	MaxPageSize     int      `json:"max_page_size" env:"NEWS_MAX_PAGE_SIZE" default:"6"`
}

type VideoConfig struct {
	DefaultChannel  string `json:"default_channel" env:"VIDEO_DEFAULT_CHANNEL" default:"@ussradio"`
	MaxItems        int    `json:"max_items" env:"VIDEO_MAX_ITEMS" default:"12"`
	DefaultPageSize int    `json:"default_page_size" env:"VIDEO_DEFAULT_PAGE_SIZE" default:"6"`
	MaxPageSize     int    `json:"max_page_size" env:"VIDEO_MAX_PAGE_SIZE" default:"12"`
}

type ImageProxyConfig struct {
	Enabled bool `json:"enabled" env:"IMAGE_PROXY_ENABLED" default:"true"`
}

type RateLimitConfig struct {
	HostInterval time.Duration `json:"host_interval" env:"RATE_LIMIT_HOST_INTERVAL" default:"500ms"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"text"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	stations, err := loadStations(config.StationsFile)
	if err != nil {
		return nil, err
	}
	config.Stations = stations

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
