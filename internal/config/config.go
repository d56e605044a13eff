package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connectfour/internal/service/bot"
)

type Config struct {
	Port               string
	AllowedOrigins     []string
	AIDepth            int
	AIDepthSet         bool // AI_DEPTH was given and takes precedence over AIDifficulty
	AIDifficulty       string
	MaxDepth           int
	ParallelSearch     bool
	SessionIdleTimeout time.Duration
	CleanupInterval    time.Duration
	Speak              bool
	AudioDir           string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// CORS: localhost plus CSV values
	allowedOrigins := []string{
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", ""); allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Engine
	aiDepth := GetEnvAsInt("AI_DEPTH", bot.DefaultDepth)
	aiDepthSet := os.Getenv("AI_DEPTH") != ""
	aiDifficulty := GetEnv("AI_DIFFICULTY", string(bot.Default))
	maxDepth := GetEnvAsInt("AI_MAX_DEPTH", 8)
	parallel := GetEnvAsBool("AI_PARALLEL", false)

	// Sessions
	idleTimeout := GetEnvAsDuration("SESSION_IDLE_MINUTES", 30*time.Minute, time.Minute)
	cleanupInterval := GetEnvAsDuration("CLEANUP_INTERVAL_MINUTES", 5*time.Minute, time.Minute)

	// Speech
	speak := GetEnvAsBool("SPEAK", false)
	audioDir := GetEnv("AUDIO_DIR", "audio")

	AppConfig = &Config{
		Port:               port,
		AllowedOrigins:     allowedOrigins,
		AIDepth:            aiDepth,
		AIDepthSet:         aiDepthSet,
		AIDifficulty:       aiDifficulty,
		MaxDepth:           maxDepth,
		ParallelSearch:     parallel,
		SessionIdleTimeout: idleTimeout,
		CleanupInterval:    cleanupInterval,
		Speak:              speak,
		AudioDir:           audioDir,
	}

	return AppConfig
}

// Validate reports the first setting the engine cannot work with.
func (c *Config) Validate() error {
	if c.AIDepth < 0 {
		return fmt.Errorf("AI_DEPTH must not be negative, got %d", c.AIDepth)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("AI_MAX_DEPTH must not be negative, got %d", c.MaxDepth)
	}
	if _, err := bot.ParseDifficulty(c.AIDifficulty); err != nil {
		return fmt.Errorf("AI_DIFFICULTY: %w", err)
	}
	if c.SessionIdleTimeout <= 0 || c.CleanupInterval <= 0 {
		return fmt.Errorf("session idle timeout and cleanup interval must be positive")
	}
	return nil
}

// SetDifficulty selects a difficulty chosen after loading, such as from a
// command-line flag. It wins over a depth taken from the environment.
func (c *Config) SetDifficulty(difficulty string) {
	c.AIDifficulty = difficulty
	c.AIDepthSet = false
}

// BotSettings builds the computer player settings described by the config.
// AIDepth only overrides the difficulty when AIDepthSet is true.
func (c *Config) BotSettings() (bot.Settings, error) {
	difficulty, err := bot.ParseDifficulty(c.AIDifficulty)
	if err != nil {
		return bot.Settings{}, err
	}
	s := bot.Settings{
		Difficulty: difficulty,
		Parallel:   c.ParallelSearch,
	}
	if c.AIDepthSet {
		depth := c.AIDepth
		s.Depth = &depth
	}
	return s, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads an integer count of unit from key.
func GetEnvAsDuration(key string, defaultValue, unit time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Printf("[CONFIG] Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return time.Duration(value) * unit
}
