package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	OpenAI    OpenAIConfig
	Artifacts ArtifactConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds a single completion call. Generation is slow, so the
	// default is deliberately generous (10 minutes).
	Timeout time.Duration
}

// ArtifactConfig selects how rendered artifacts leave the service. Mode is a
// per-deployment decision, never per-request:
//   - "inline": artifacts are base64-encoded into the JSON response
//   - "upload": artifacts go to object storage; MinIO when MINIO_ENDPOINT is
//     set, otherwise a multipart HTTP upload to UPLOAD_URL
type ArtifactConfig struct {
	Mode          string
	UploadURL     string
	UploadPreset  string
	UploadTimeout time.Duration
	MinIO         MinIOConfig
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "juristo")
	viper.SetDefault("MONGODB_TIMEOUT", 5)
	viper.SetDefault("OPENAI_MODEL", "gpt-4")
	viper.SetDefault("OPENAI_TIMEOUT", 600)
	viper.SetDefault("ARTIFACT_MODE", "inline")
	viper.SetDefault("UPLOAD_TIMEOUT", 60)
	viper.SetDefault("MINIO_BUCKET", "legaldocs")
	viper.SetDefault("RATE_LIMIT_RPS", 5.0)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   viper.GetString("OPENAI_MODEL"),
			BaseURL: viper.GetString("OPENAI_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("OPENAI_TIMEOUT")) * time.Second,
		},
		Artifacts: ArtifactConfig{
			Mode:          viper.GetString("ARTIFACT_MODE"),
			UploadURL:     viper.GetString("UPLOAD_URL"),
			UploadPreset:  viper.GetString("UPLOAD_PRESET"),
			UploadTimeout: time.Duration(viper.GetInt("UPLOAD_TIMEOUT")) * time.Second,
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				UseSSL:    viper.GetString("MINIO_USE_SSL") == "true",
				Bucket:    viper.GetString("MINIO_BUCKET"),
			},
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("environment variable OPENAI_API_KEY is required")
	}
	switch c.Artifacts.Mode {
	case "inline":
	case "upload":
		if c.Artifacts.UploadURL == "" && c.Artifacts.MinIO.Endpoint == "" {
			return fmt.Errorf("ARTIFACT_MODE=upload requires UPLOAD_URL or MINIO_ENDPOINT")
		}
	default:
		return fmt.Errorf("unknown ARTIFACT_MODE %q (want inline or upload)", c.Artifacts.Mode)
	}
	return nil
}
