package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SlackBotToken         string `yaml:"slack_bot_token"`
	GoogleSpreadsheetID   string `yaml:"google_spreadsheet_id"`
	GoogleCredentialsFile string `yaml:"google_credentials_file"`

	MessageLimit int    `yaml:"message_limit"`
	SyncSchedule string `yaml:"sync_schedule"`
	DBPath       string `yaml:"db_path"`
}

func LoadConfig() Config {
	var cfg Config

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.GoogleSpreadsheetID, "GOOGLE_SPREADSHEET_ID")
	envOverride(&cfg.GoogleCredentialsFile, "GOOGLE_CREDENTIALS_FILE")
	envOverrideInt(&cfg.MessageLimit, "MESSAGE_LIMIT")
	envOverride(&cfg.SyncSchedule, "SYNC_SCHEDULE")
	envOverride(&cfg.DBPath, "DB_PATH")

	// Defaults
	if cfg.MessageLimit == 0 {
		cfg.MessageLimit = 100
	}
	if cfg.GoogleCredentialsFile == "" {
		cfg.GoogleCredentialsFile = "credentials.json"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./kpisync.db"
	}

	// Validate required fields
	required := map[string]string{
		"slack_bot_token":       cfg.SlackBotToken,
		"google_spreadsheet_id": cfg.GoogleSpreadsheetID,
	}
	for name, val := range required {
		if val == "" {
			log.Fatalf("Required config '%s' is not set (via config.yaml, .env or env var)", name)
		}
	}
	if cfg.MessageLimit < 1 {
		log.Fatalf("invalid message_limit '%d': must be >= 1", cfg.MessageLimit)
	}
	if _, err := os.Stat(cfg.GoogleCredentialsFile); err != nil {
		log.Fatalf("Google credentials file not found: %s", cfg.GoogleCredentialsFile)
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
