package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	// Storage
	StoreDriver string
	SQLitePath  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// AI Providers
	GeminiAPIKey      string
	GeminiVisionModel string
	GeminiChatModel   string

	GLMAPIKey      string
	GLMAPIURL      string
	GLMModel       string
	GLMVisionModel string

	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string

	AITimeout time.Duration

	// Uploads
	MaxImageBytes  int
	AnalyzeMaxEdge int

	// Server
	Port                      string
	CORSOrigins               string
	AppEnv                    string
	SentryDSN                 string
	RateLimitPerMinute        int
	AnalyzeRateLimitPerMinute int

	// Logging
	LogRetentionDays int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		StoreDriver: getEnv("STORE_DRIVER", StoreMemory),
		SQLitePath:  getEnv("SQLITE_PATH", "stylematch.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "stylematch_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiVisionModel: getEnv("GEMINI_VISION_MODEL", "gemini-2.5-pro"),
		GeminiChatModel:   getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-flash"),

		GLMAPIKey:      getEnv("GLM_API_KEY", ""),
		GLMAPIURL:      getEnv("GLM_API_URL", "https://api.z.ai/api/paas/v4/chat/completions"),
		GLMModel:       getEnv("GLM_MODEL", "glm-5"),
		GLMVisionModel: getEnv("GLM_VISION_MODEL", "glm-4v-plus"),

		DeepSeekAPIKey: getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL: getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		DeepSeekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),

		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "60s")),

		MaxImageBytes:  getEnvInt("MAX_IMAGE_BYTES", 3*1024*1024),
		AnalyzeMaxEdge: getEnvInt("ANALYZE_MAX_EDGE", 1024),

		Port:                      getEnv("PORT", "8080"),
		CORSOrigins:               getEnv("CORS_ORIGINS", "*"),
		AppEnv:                    getEnv("APP_ENV", "development"),
		SentryDSN:                 getEnv("SENTRY_DSN", ""),
		RateLimitPerMinute:        getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		AnalyzeRateLimitPerMinute: getEnvInt("ANALYZE_RATE_LIMIT_PER_MINUTE", 10),

		LogRetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// UsesSQL reports whether records go to a GORM-backed database.
func (c *Config) UsesSQL() bool {
	return c.StoreDriver == StorePostgres || c.StoreDriver == StoreSQLite
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 60 * time.Second
	}
	return d
}
