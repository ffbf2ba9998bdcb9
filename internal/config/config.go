package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HttpServer HttpServerConfig `yaml:"httpServer"`
	AI         AIConfig         `yaml:"AI"`
	Bot        BotConfig        `yaml:"bot"`
}

type HttpServerConfig struct {
	Address string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost"`
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type AIConfig struct {
	Timeout       int     `yaml:"timeout" env:"AI_TIMEOUT" env-default:"60"` //in seconds
	TextModelName string  `yaml:"textModelName" env:"AI_TEXT_MODEL_NAME" env-default:"google/gemini-2.5-flash"`
	ImgModelName  string  `yaml:"imgModelName" env:"AI_IMG_MODEL_NAME" env-default:"google/gemini-2.5-flash-image"`
	AIApiToken    string  `yaml:"aiapitoken" env:"AI_API_TOKEN" env-default:""`
	MaxTokens     int     `yaml:"maxTokens" env-default:"4096"`
	Temperature   float32 `yaml:"temperature" env-default:"0.7"`
	JobBufferSize int     `yaml:"jobBufferSize" env:"AI_BUFFER_SIZE" env-default:"10"`
	WorkersCount  int     `yaml:"workersCount" env:"AI_WORKERS_COUNT" env-default:"1"`
}

type BotConfig struct {
	Enabled       bool   `yaml:"enabled" env:"TGBOT_ENABLED" env-default:"false"`
	TgbotApiToken string `yaml:"tgbot_apitoken" env:"TGBOT_APITOKEN" env-default:""`
	ChannelID     int64  `yaml:"channelId" env:"TGBOT_CHANNEL_ID" env-default:"0"`
}

// GetTimeout returns the AI request timeout as a time.Duration.
func (c AIConfig) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// MustLoad reads the config file named by the -config flag or CONFIG_PATH
// and applies env overrides. Without a path it falls back to env and
// defaults only. Exits the process on a read error.
func MustLoad() *Config {
	var cfg Config

	path := fetchConfigPath()
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}
		return &cfg
	}

	if _, err := os.Stat(path); err != nil {
		log.Fatalf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", path, err)
	}

	return &cfg
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
