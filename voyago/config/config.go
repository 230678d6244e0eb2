package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port              string
	PythonBin         string
	ScriptsDir        string
	UnsplashAccessKey string
	FrontendURLs      []string

	PlannerTimeout time.Duration
	ParserTimeout  time.Duration
	ChatTimeout    time.Duration
}

func LoadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "3001"),
		PythonBin:         getEnv("PYTHON_BIN", "python3"),
		ScriptsDir:        getEnv("AI_SCRIPTS_DIR", "./ai-folder"),
		UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
		FrontendURLs:      splitEnv("FRONTEND_URL"),
		PlannerTimeout:    getDuration("PLANNER_TIMEOUT_SECONDS", 30*time.Second),
		ParserTimeout:     getDuration("PARSER_TIMEOUT_SECONDS", 15*time.Second),
		ChatTimeout:       getDuration("CHAT_TIMEOUT_SECONDS", 15*time.Second),
	}
}

// PlannerScript is the itinerary generator invoked by the bridge.
func (c Config) PlannerScript() string {
	return filepath.Join(c.ScriptsDir, "travel_planner.py")
}

func (c Config) ParserScript() string {
	return filepath.Join(c.ScriptsDir, "travel_parser.py")
}

func (c Config) ChatScript() string {
	return filepath.Join(c.ScriptsDir, "chat_bot.py")
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var urls []string
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
