package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Generative backends
	Gemini   GeminiConfig
	ImageGen ImageGenConfig
	VideoGen VideoGenConfig

	// Conversation / task memory
	Memory MemoryConfig

	// Attachment and artifact storage
	Storage StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the chat engine used for conversation and as the
// optional fallback intent classifier.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ImageGenConfig configures the image generation backend.
type ImageGenConfig struct {
	APIKey string
	Model  string
}

// VideoGenConfig configures the video generation backend.
type VideoGenConfig struct {
	APIKey          string
	Model           string
	PollIntervalSec int
	TimeoutSec      int
	RequestsPerMin  int
}

type MemoryConfig struct {
	Path string
}

type StorageConfig struct {
	UploadDir string
	OutputDir string
}

// Load loads configuration using Viper.
// A .env file is loaded first when present, matching local development setups.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini chat engine
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Image generation backend; falls back to the Gemini key like the chat engine.
	cfg.ImageGen.APIKey = viper.GetString("imagegen.api_key")
	cfg.ImageGen.Model = viper.GetString("imagegen.model")
	if cfg.ImageGen.APIKey == "" {
		cfg.ImageGen.APIKey = cfg.Gemini.APIKey
	}

	// Video generation backend
	cfg.VideoGen.APIKey = viper.GetString("videogen.api_key")
	cfg.VideoGen.Model = viper.GetString("videogen.model")
	cfg.VideoGen.PollIntervalSec = viper.GetInt("videogen.poll_interval_sec")
	cfg.VideoGen.TimeoutSec = viper.GetInt("videogen.timeout_sec")
	cfg.VideoGen.RequestsPerMin = viper.GetInt("videogen.requests_per_min")
	if key := viper.GetString("veo_api_key"); key != "" {
		cfg.VideoGen.APIKey = key
	}
	if cfg.VideoGen.APIKey == "" {
		cfg.VideoGen.APIKey = cfg.Gemini.APIKey
	}

	// Memory
	cfg.Memory.Path = viper.GetString("memory.path")

	// Storage
	cfg.Storage.UploadDir = viper.GetString("storage.upload_dir")
	cfg.Storage.OutputDir = viper.GetString("storage.output_dir")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.0-flash-exp")
	viper.SetDefault("imagegen.model", "gemini-2.5-flash-image-preview")
	viper.SetDefault("videogen.model", "veo-3.1-generate-preview")
	viper.SetDefault("videogen.poll_interval_sec", 10)
	viper.SetDefault("videogen.timeout_sec", 600)
	viper.SetDefault("videogen.requests_per_min", 6)

	viper.SetDefault("memory.path", "memory.json")
	viper.SetDefault("storage.upload_dir", "uploads")
	viper.SetDefault("storage.output_dir", "outputs")
}
