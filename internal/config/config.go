package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Server is the runtime configuration of the HTTP server.
type Server struct {
	Addr        string `env:"TEASHOP_ADDR" envDefault:":8080"`
	Seed        int64  `env:"TEASHOP_SEED" envDefault:"0"`
	Difficulty  string `env:"TEASHOP_DIFFICULTY" envDefault:"default"`
	CatalogPath string `env:"TEASHOP_CATALOG" envDefault:""`
	BalancePath string `env:"TEASHOP_BALANCE" envDefault:""`
	LogLevel    string `env:"TEASHOP_LOG_LEVEL" envDefault:"info"`
}

// LoadServer reads server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadBalance resolves the balance tunables: preset by difficulty, optional
// YAML file override, then individual env overrides.
func LoadBalance(difficulty, path string) (Balance, error) {
	var cfg Balance
	switch difficulty {
	case "", "default":
		cfg = Default()
	case "casual":
		cfg = Casual()
	case "hard":
		cfg = Hard()
	default:
		return Balance{}, fmt.Errorf("unknown difficulty: %s", difficulty)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Balance{}, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Balance{}, err
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides mirrors the documented tunables onto env vars so a single
// knob can be changed without a balance file.
func applyEnvOverrides(cfg *Balance) {
	if v := getEnvInt("TEASHOP_TOTAL_WEEKS"); v > 0 {
		cfg.TotalWeeks = v
	}
	if v := getEnvInt("TEASHOP_WIN_STREAK"); v > 0 {
		cfg.WinStreak = v
	}
	if v := getEnvFloat("TEASHOP_STARTING_CASH"); v > 0 {
		cfg.StartingCash = v
	}
	if v := getEnvFloat("TEASHOP_EVENT_CHANCE"); v > 0 {
		cfg.EventChancePerWeek = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
