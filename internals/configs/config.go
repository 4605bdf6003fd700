package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port           string        `env:"PORT"            envDefault:"8000"`
	StoreDriver    string        `env:"STORE_DRIVER"    envDefault:"mongo"`
	CorsOrigins    []string      `env:"CORS_ORIGINS"    envDefault:"http://localhost:3000" envSeparator:","`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	RateLimitMax   int           `env:"RATE_LIMIT_MAX"  envDefault:"100"`
	Environment    string        `env:"RAILWAY_ENVIRONMENT"`
	SeedFile       string        `env:"SEED_FILE"`

	Mongo    MongoConfig
	Postgres PostgresConfig
}

type MongoConfig struct {
	URL      string `env:"MONGODB_URL"   envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE_NAME" envDefault:"hrms_lite"`
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST"      envDefault:"localhost"`
	Port     string `env:"DB_PORT"      envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"      envDefault:"hrms_lite"`
	SSLMode  string `env:"DB_SSLMODE"   envDefault:"disable"`
	LogLevel string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

// DSN: user/password di-escape lewat url.UserPassword (boleh berisi @ / :).
func (p PostgresConfig) DSN() string {
	q := url.Values{}
	q.Set("sslmode", p.SSLMode)
	q.Set("application_name", "hrms_lite")

	u := url.URL{
		Scheme:   "postgres",
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.Name,
		RawQuery: q.Encode(),
	}
	if p.User != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	return u.String()
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() (Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env not found, using system environment")
		} else {
			log.Println("[INFO] .env loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system environment")
	}

	return Parse()
}

// Parse hanya membaca environment proses (tanpa .env).
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	origins := cfg.CorsOrigins[:0]
	for _, o := range cfg.CorsOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CorsOrigins = origins

	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold             time.Duration
	LogLevel                  gormLogger.LogLevel
	IgnoreRecordNotFoundError bool
}

func NewGormLogger(level string) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  ParseGormLogLevel(level),
		IgnoreRecordNotFoundError: true,
	}
}

func ParseGormLogLevel(level string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	// lookup yang memang boleh kosong (cek duplikat) bukan error
	case err != nil && l.LogLevel >= gormLogger.Error &&
		!(l.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
