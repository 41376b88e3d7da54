package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string

	DBUrl      string
	SQLitePath string

	UploadDir   string
	MaxUploadMB int

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	RedisURL         string
	QueueCacheTTLSec int

	WaitMinutesPerPatient int
	ClinicTimezone        string

	CORSOrigins []string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBUrl:      os.Getenv("DATABASE_URL"),
		SQLitePath: getEnv("SQLITE_PATH", "hospital.db"),

		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),

		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),

		RedisURL:         os.Getenv("REDIS_URL"),
		QueueCacheTTLSec: getEnvInt("QUEUE_CACHE_TTL", 5),

		WaitMinutesPerPatient: getEnvInt("WAIT_MINUTES_PER_PATIENT", 15),
		ClinicTimezone:        getEnv("CLINIC_TIMEZONE", "Asia/Kolkata"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// Driver reports which store backend the configuration selects.
func (c *Config) Driver() string {
	if c.DBUrl != "" {
		return "postgres"
	}
	return "sqlite"
}

func (c *Config) UsesS3() bool {
	return c.S3Bucket != ""
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(c.MaxUploadMB) << 20
}
