package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir    string
	JWTSecret  string
	ServerPort string

	// Aviso opcional de novos agendamentos via Telegram.
	TelegramToken  string
	TelegramChatID int64
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)

	return &Config{
		DataDir:        getEnv("DATA_DIR", "./data"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: chatID,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) MediaDir() string {
	return filepath.Join(c.DataDir, "media")
}
