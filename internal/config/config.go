package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	ShutdownTimeout int // seconds

	// Study queue scoring weights. Must sum to 1.0; validated by the
	// queue package, which falls back to its defaults when they don't.
	WeightOverdue   float64
	WeightMastery   float64
	WeightFragility float64
	WeightNovelty   float64
	GraceDays       float64
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:axon.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		ShutdownTimeout: envIntOr("SHUTDOWN_TIMEOUT", 30),

		WeightOverdue:   envFloatOr("QUEUE_WEIGHT_OVERDUE", 0.40),
		WeightMastery:   envFloatOr("QUEUE_WEIGHT_MASTERY", 0.30),
		WeightFragility: envFloatOr("QUEUE_WEIGHT_FRAGILITY", 0.20),
		WeightNovelty:   envFloatOr("QUEUE_WEIGHT_NOVELTY", 0.10),
		GraceDays:       envFloatOr("QUEUE_GRACE_DAYS", 1.0),
	}
}

// Validate checks the configuration for values that would prevent the server
// from starting correctly. All problems are reported in one error.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}
	for _, w := range []struct {
		name string
		v    float64
	}{
		{"QUEUE_WEIGHT_OVERDUE", c.WeightOverdue},
		{"QUEUE_WEIGHT_MASTERY", c.WeightMastery},
		{"QUEUE_WEIGHT_FRAGILITY", c.WeightFragility},
		{"QUEUE_WEIGHT_NOVELTY", c.WeightNovelty},
	} {
		if w.v < 0 || w.v > 1 {
			problems = append(problems, fmt.Sprintf("%s must be in [0,1]", w.name))
		}
	}
	if c.GraceDays <= 0 {
		problems = append(problems, "QUEUE_GRACE_DAYS must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}
