package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Traffic     TrafficConfig     `mapstructure:"traffic" validate:"required"`
	CORS        CORSConfig        `mapstructure:"cors"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// TrafficConfig holds the foot-traffic analysis configuration.
type TrafficConfig struct {
	OpenHour         int    `mapstructure:"open_hour" validate:"min=0,max=23"`
	CloseHour        int    `mapstructure:"close_hour" validate:"min=0,max=23,gtefield=OpenHour"`
	SampleSource     string `mapstructure:"sample_source" validate:"required,oneof=store synthetic"`
	DefaultTimeframe string `mapstructure:"default_timeframe" validate:"required,oneof=last_7_days last_14_days last_30_days last_90_days"`
	QueuePartitions  int    `mapstructure:"queue_partitions" validate:"min=1,max=256"`
	QueueBuffer      int    `mapstructure:"queue_buffer" validate:"min=1"`
}

// CORSConfig holds the origins the dashboard is served from.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxAge         int      `mapstructure:"max_age" validate:"min=0"` // seconds
}

// RateLimitConfig holds the per-IP request limit.
type RateLimitConfig struct {
	Disabled bool `mapstructure:"disabled"`
	Requests int  `mapstructure:"requests" validate:"min=1"`
	Window   int  `mapstructure:"window" validate:"min=1"` // seconds
}
