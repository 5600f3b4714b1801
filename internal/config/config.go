// apps/wordlebot/internal/config/config.go
//
// Runtime configuration from the environment.
//
// A .env file in the working directory is loaded first (if present); real
// environment variables take precedence over it. Command-line flags override
// both.
//
// Environment variables:
//   LOG_LEVEL      zerolog level (default info)
//   WORDS_FILE     word list, one word per line (default: built-in list)
//   MAX_TRIES      try budget (default 6)
//   SEED           shuffle seed (default: current time)
//   ORDER          source | alpha | shuffle (default shuffle)
//   DELAY          pause between turns, e.g. 1s (default 0)
//   DB_PATH        run history database (default ./data/wordlebot.db)
//   PORT           oracle server port (default 5175)
//   ORACLE_URL     remote oracle base URL (default: play locally)
//   ORACLE_SECRET  HS256 secret shared by oracle server and client
//   DAILY_SALT     salt for the daily answer (default local_dev_salt)

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel     string
	WordsFile    string
	MaxTries     int
	Seed         int64
	Order        words.Order
	Delay        time.Duration
	DBPath       string
	Port         string
	OracleURL    string
	OracleSecret string
	DailySalt    string
}

// Load reads .env (if any) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		DBPath:       getEnv("DB_PATH", "./data/wordlebot.db"),
		Port:         getEnv("PORT", "5175"),
		OracleURL:    os.Getenv("ORACLE_URL"),
		OracleSecret: os.Getenv("ORACLE_SECRET"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
	}

	var err error
	if c.MaxTries, err = envInt("MAX_TRIES", 6); err != nil {
		return c, err
	}
	if c.MaxTries <= 0 {
		return c, fmt.Errorf("MAX_TRIES must be positive, got %d", c.MaxTries)
	}
	seed, err := envInt("SEED", 0)
	if err != nil {
		return c, err
	}
	c.Seed = int64(seed)
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Order, err = words.ParseOrder(os.Getenv("ORDER")); err != nil {
		return c, err
	}
	if v := os.Getenv("DELAY"); v != "" {
		if c.Delay, err = time.ParseDuration(v); err != nil {
			return c, fmt.Errorf("DELAY: %w", err)
		}
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
