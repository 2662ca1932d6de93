package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// BrandContactConfig holds the public contact details of the product.
type BrandContactConfig struct {
	Email   string `mapstructure:"email"`
	Website string `mapstructure:"website"`
}

// BrandConfig describes the product's display identity.
type BrandConfig struct {
	Name    string             `mapstructure:"name"`
	URL     string             `mapstructure:"url"`
	Contact BrandContactConfig `mapstructure:"contact"`
}

type I18nConfig struct {
	Path          string `mapstructure:"path"`
	DefaultLocale string `mapstructure:"default_locale"`
	Watch         bool   `mapstructure:"watch"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SESConfig struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type MailQueueConfig struct {
	Key         string `mapstructure:"key"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

type MailerConfig struct {
	DeliveryMethod string          `mapstructure:"delivery_method"`
	TemplatesPath  string          `mapstructure:"templates_path"`
	SMTP           SMTPConfig      `mapstructure:"smtp"`
	SES            SESConfig       `mapstructure:"ses"`
	Queue          MailQueueConfig `mapstructure:"queue"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT             JWTConfig `mapstructure:"jwt"`
	CasbinModelPath string    `mapstructure:"casbin_model_path"`
}

type CredentialsConfig struct {
	Path string `mapstructure:"path"`
}

// RateLimitConfig caps anonymous submissions per client IP.
type RateLimitConfig struct {
	Limit         int `mapstructure:"limit"`
	WindowSeconds int `mapstructure:"window_seconds"`
}
