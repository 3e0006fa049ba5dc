package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AllowedOrigins  []string
	JWTSecret       string
	GameTokenTTL    time.Duration
	RedisURL        string
	RedisPassword   string
	SessionTTL      time.Duration
	CleanupInterval time.Duration

	SearchDepth       int
	BlackWinScore     int
	WhiteWinScore     int
	DrawScore         int
	UndeterminedScore int
	SearchParallel    bool
	SearchVerbose     bool
}

var AppConfig *Config

// LoadEnv reads .env from the working directory or its parent. Missing files
// are not an error; the process environment is used as is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	gameTokenTTLMin := GetEnvAsPositiveInt("GAME_TOKEN_TTL_MINUTES", 120)

	// Sessions
	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	sessionTTLMin := GetEnvAsPositiveInt("SESSION_TTL_MINUTES", 30)
	cleanupIntervalMin := GetEnvAsPositiveInt("CLEANUP_INTERVAL_MINUTES", 5)

	AppConfig = &Config{
		Port:            port,
		AllowedOrigins:  allowedOrigins,
		JWTSecret:       jwtSecret,
		GameTokenTTL:    time.Duration(gameTokenTTLMin) * time.Minute,
		RedisURL:        redisURL,
		RedisPassword:   redisPassword,
		SessionTTL:      time.Duration(sessionTTLMin) * time.Minute,
		CleanupInterval: time.Duration(cleanupIntervalMin) * time.Minute,

		// Search
		SearchDepth:       GetEnvAsInt("SEARCH_DEPTH", 4),
		BlackWinScore:     GetEnvAsInt("BLACK_WIN_SCORE", -4),
		WhiteWinScore:     GetEnvAsInt("WHITE_WIN_SCORE", 1),
		DrawScore:         GetEnvAsInt("DRAW_SCORE", 0),
		UndeterminedScore: GetEnvAsInt("UNDETERMINED_SCORE", 0),
		SearchParallel:    GetEnvAsBool("SEARCH_PARALLEL", false),
		SearchVerbose:     GetEnvAsBool("SEARCH_VERBOSE", false),
	}

	return AppConfig
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
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsPositiveInt is GetEnvAsInt for values that must be above zero,
// such as intervals and TTLs.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Printf("Non-positive value for %s: %d, using default: %d", key, value, defaultValue)
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
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
