package configs

import (
	"fmt"
	"strings"

	"restaurant-insights/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TRAFFIC_SERVER_PORT.
const EnvPrefix = "TRAFFIC"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err, fieldPath))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("traffic.open_hour", 10)
	v.SetDefault("traffic.close_hour", 22)
	v.SetDefault("traffic.sample_source", "store")
	v.SetDefault("traffic.default_timeframe", "last_14_days")
	v.SetDefault("traffic.queue_partitions", 8)
	v.SetDefault("traffic.queue_buffer", 1024)
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("rate_limit.disabled", false)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", 60)
}

// fieldPath turns "Config.Server.Port" into "server.port".
func fieldPath(e validators.FieldError) string {
	parts := strings.Split(e.StructNamespace(), ".")
	if len(parts) < 2 {
		return e.Field()
	}
	return strings.ToLower(strings.Join(parts[1:], "."))
}
