package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"

	apiKeyENV        = "API_KEY"
	apiSecretENV     = "API_SECRET"
	webhookSecretENV = "WEBHOOK_SECRET"

	tokenTelegramENV  = "TELEGRAM_TOKEN"
	chatIDTelegramENV = "TELEGRAM_CHAT_ID"
)

// Config ...
type Config struct {
	Service struct {
		Name       string `yaml:"name"`
		Host       string `yaml:"host"`
		PublicPort int    `yaml:"public_port"`
		AdminPort  int    `yaml:"admin_port"`
	} `yaml:"service"`

	Binance struct {
		// Ключи только из окружения, в yaml им не место.
		APIKey    string `yaml:"-"`
		APISecret string `yaml:"-"`
		Testnet   bool   `yaml:"testnet"`
	} `yaml:"binance"`

	// Общий секрет вебхука, только из окружения.
	WebhookSecret string `yaml:"-"`

	// Символы, по которым греем кэш фильтров и стримим mark price.
	Watchlist []string `yaml:"watchlist"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`
}

func NewConfig() (*Config, error) {
	// .env подхватываем молча: в проде его просто нет
	_ = godotenv.Load()

	configFileName := getenvDefault(configFilePathENV, "values_local.yaml")
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{}
	config.Service.Name = "binance-bot"
	config.Service.Host = "0.0.0.0"
	config.Service.PublicPort = 5000
	config.Service.AdminPort = 8081
	config.Binance.Testnet = true
	config.Jaeger.Port = 6831

	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	config.Service.PublicPort = intFromEnv("PUBLIC_PORT", config.Service.PublicPort)
	config.Service.AdminPort = intFromEnv("ADMIN_PORT", config.Service.AdminPort)
	config.Binance.Testnet = boolFromEnv("BINANCE_TESTNET", config.Binance.Testnet)

	config.Binance.APIKey = os.Getenv(apiKeyENV)
	config.Binance.APISecret = os.Getenv(apiSecretENV)
	config.WebhookSecret = os.Getenv(webhookSecretENV)
	if config.Binance.APIKey == "" || config.Binance.APISecret == "" || config.WebhookSecret == "" {
		log.Fatalf("FATAL: missing required environment (API_KEY, API_SECRET or WEBHOOK_SECRET)")
	}

	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}
	if v := os.Getenv(chatIDTelegramENV); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Telegram.ChatID = id
		}
	}

	if v := os.Getenv("WATCHLIST"); v != "" {
		var list []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, strings.ToUpper(s))
			}
		}
		config.Watchlist = list
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if v == "1" || v == "true" || v == "TRUE" {
			return true
		}
		if v == "0" || v == "false" || v == "FALSE" {
			return false
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
