package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds settings read from the environment at start-up
type Config struct {
	LogLevel       string
	JSONLogs       bool
	SkipBlankLines bool
	StatusDuration time.Duration
	GridSize       int
	GridWidth      int
	GridHeight     int
	WindowWidth    float32
	WindowHeight   float32
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		LogLevel:       determineLogLevel(),
		JSONLogs:       getEnvAsBool("GIS_JSON_LOGS", false),
		SkipBlankLines: getEnvAsBool("GIS_SKIP_BLANK_LINES", false),
		StatusDuration: time.Duration(getEnvAsInt("GIS_STATUS_SECONDS", 5)) * time.Second,
		GridSize:       getEnvAsInt("GIS_GRID_SIZE", 20),
		GridWidth:      800,
		GridHeight:     600,
		WindowWidth:    float32(getEnvAsInt("GIS_WINDOW_WIDTH", 800)),
		WindowHeight:   float32(getEnvAsInt("GIS_WINDOW_HEIGHT", 600)),
	}
}

func determineLogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	if os.Getenv("DEBUG") == "1" {
		return "debug"
	}
	return "info"
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
