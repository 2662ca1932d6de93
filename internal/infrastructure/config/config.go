package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/cragbase/cragbase/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Brand       sharedConfig.BrandConfig       `mapstructure:"brand"`
	I18n        sharedConfig.I18nConfig        `mapstructure:"i18n"`
	Mailer      sharedConfig.MailerConfig      `mapstructure:"mailer"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	Auth        sharedConfig.AuthConfig        `mapstructure:"auth"`
	Credentials sharedConfig.CredentialsConfig `mapstructure:"credentials"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configPath overrides the default search paths when non-empty.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("CRAGBASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.base_url", "http://localhost:8080")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "cragbase_dev")
	v.SetDefault("database.path", "cragbase.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("brand.name", "Cragbase")
	v.SetDefault("brand.url", "http://localhost:8080")
	v.SetDefault("brand.contact.email", "contact@cragbase.local")
	v.SetDefault("brand.contact.website", "http://localhost:8080")

	v.SetDefault("i18n.path", "./locales")
	v.SetDefault("i18n.default_locale", "en")
	v.SetDefault("i18n.watch", false)

	v.SetDefault("mailer.delivery_method", "log")
	v.SetDefault("mailer.templates_path", "./templates/mailers")
	v.SetDefault("mailer.smtp.host", "localhost")
	v.SetDefault("mailer.smtp.port", 1025)
	v.SetDefault("mailer.smtp.username", "")
	v.SetDefault("mailer.smtp.password", "")
	v.SetDefault("mailer.ses.region", "eu-west-1")
	v.SetDefault("mailer.queue.key", "cragbase:mail:deliveries")
	v.SetDefault("mailer.queue.max_attempts", 3)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.casbin_model_path", "")

	v.SetDefault("credentials.path", "./configs/credentials.yaml")

	v.SetDefault("rate_limit.limit", 5)
	v.SetDefault("rate_limit.window_seconds", 3600)
}
