package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Загрузка конфигурации: .env -> config.yaml (если указан) -> переменные окружения, через cleanenv

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Exchange ExchangeConfig `yaml:"exchange"`
	Session  SessionConfig  `yaml:"session"`
	Symbols  SymbolsConfig  `yaml:"symbols"`
	Telegram TelegramConfig `yaml:"telegram"`
	Logger   LoggerConfig   `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// ExchangeConfig — настройки клиента exchangerate.host
type ExchangeConfig struct {
	BaseURL   string        `yaml:"base_url" env:"EXCHANGE_BASE_URL" env-default:"http://api.exchangerate.host"`
	APIKey    string        `yaml:"api_key" env:"api_key,API_KEY"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"forex-converter/1.0"`
}

type SessionConfig struct {
	Name   string `yaml:"name" env-default:"forex_session"`
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-default:"change-me-please"`
	MaxAge int    `yaml:"max_age" env-default:"86400"` // seconds
	Secure bool   `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

// SymbolsConfig — путь к файлу символов; пустой путь = встроенный symbols.json
type SymbolsConfig struct {
	Path string `yaml:"path" env:"SYMBOLS_PATH"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type TelegramConfig struct {
	Enabled         bool          `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token           string        `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
}

func LoadConfig() (*Config, error) {
	// .env необязателен, его отсутствие — не ошибка
	_ = godotenv.Load()

	cfg := &Config{}

	// Try to read from config file if specified
	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
