package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

// StorageConfig selects the blob-store endpoint and the public delivery
// address for uploaded assets. Local toggles the development MinIO endpoint
// instead of the managed one.
type StorageConfig struct {
	Local           bool   `mapstructure:"local"`
	LocalEndpoint   string `mapstructure:"local_endpoint"`
	MinioEndpoint   string `mapstructure:"minio_endpoint"`
	MinioAccessID   string `mapstructure:"minio_access_key"`
	MinioSecret     string `mapstructure:"minio_secret_key"`
	MinioBucket     string `mapstructure:"minio_bucket"`
	CDNBaseURL      string `mapstructure:"cdn_base_url"`
	UploadTTLSecond int    `mapstructure:"upload_ttl_seconds"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("COURSE_CATALOG")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "COURSE_CATALOG_DATABASE_HOST")
	viper.BindEnv("database.port", "COURSE_CATALOG_DATABASE_PORT")
	viper.BindEnv("database.user", "COURSE_CATALOG_DATABASE_USER")
	viper.BindEnv("database.password", "COURSE_CATALOG_DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "COURSE_CATALOG_DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "COURSE_CATALOG_REDIS_HOST")
	viper.BindEnv("redis.port", "COURSE_CATALOG_REDIS_PORT")
	viper.BindEnv("redis.password", "COURSE_CATALOG_REDIS_PASSWORD")

	// JWT
	viper.BindEnv("jwt.secret", "COURSE_CATALOG_JWT_SECRET")

	// Server
	viper.BindEnv("server.port", "COURSE_CATALOG_SERVER_PORT")
	viper.BindEnv("server.mode", "COURSE_CATALOG_SERVER_MODE")

	// Storage
	viper.BindEnv("storage.local", "COURSE_CATALOG_STORAGE_LOCAL")
	viper.BindEnv("storage.minio_endpoint", "COURSE_CATALOG_MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "COURSE_CATALOG_MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "COURSE_CATALOG_MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "COURSE_CATALOG_MINIO_BUCKET")
	viper.BindEnv("storage.cdn_base_url", "COURSE_CATALOG_CDN_BASE_URL")

	// Tracing
	viper.BindEnv("tracing.enabled", "COURSE_CATALOG_TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "COURSE_CATALOG_TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Storage.UploadTTLSecond <= 0 {
		cfg.Storage.UploadTTLSecond = 60
	}

	return &cfg, nil
}
