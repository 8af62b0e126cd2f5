// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Browser
	UserDataDir string `yaml:"user_data_dir" env:"JOB_CRAWL_USER_DATA_DIR"`
	Headless    bool   `yaml:"headless"`
	WarmupURL   string `yaml:"warmup_url"`

	//Crawl bounds
	MaxRetries int `yaml:"max_retries"`
	MaxScrolls int `yaml:"max_scrolls"`

	//Optional sinks
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	DatabaseURL    string `yaml:"database_url" env:"DATABASE_URL"`

	//Paths
	ScreenshotDir string `yaml:"screenshot_dir"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if dir := os.Getenv("JOB_CRAWL_USER_DATA_DIR"); dir != "" {
		cfg.UserDataDir = dir
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	//Set default values if not set
	if cfg.UserDataDir == "" {
		cfg.UserDataDir = "./user_data"
	}

	if cfg.WarmupURL == "" {
		cfg.WarmupURL = "https://www.baidu.com"
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	if cfg.MaxScrolls == 0 {
		cfg.MaxScrolls = 5
	}

	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "logs/screenshots"
	}

	return cfg
}
