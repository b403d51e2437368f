package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the API server configuration.
type Config struct {
	Port      string `env:"PORT,      default=8000"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`
	// JWTExpirationMinutes is the access token lifetime.
	JWTExpirationMinutes int `env:"JWT_EXPIRATION_MINUTES, default=60"`

	CORSOrigins       []string      `env:"CORS_ORIGINS, default=http://localhost:5173"`
	UploadDir         string        `env:"UPLOAD_DIR, default=uploads"`
	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL, default=5m"`
	LoginRatePerMin   int           `env:"LOGIN_RATE_PER_MIN, default=20"`
	ReportCompanyName string        `env:"REPORT_COMPANY_NAME, default=INC Product Inventory Management System"`
	StockWorkers      int           `env:"STOCK_WORKERS, default=8"`
	LowStockSchedule  string        `env:"LOW_STOCK_SCHEDULE, default=@every 5m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB_NAME, default=inventory_db"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// TokenTTL returns the access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationMinutes) * time.Minute
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// ConsoleConfig is the configuration of the terminal client.
type ConsoleConfig struct {
	APIURL    string        `env:"INVENTORY_API_URL,    default=http://localhost:8000"`
	StatePath string        `env:"INVENTORY_STATE_PATH"`
	Timeout   time.Duration `env:"INVENTORY_TIMEOUT,    default=10s"`
	LogLevel  string        `env:"LOG_LEVEL,            default=warn"`
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored and existing variables are never overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the API configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the API configuration through l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("config: JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-change-me"
	}
	return &cfg, nil
}

// LoadConsole reads the console configuration through l.
func LoadConsole(ctx context.Context, l envconfig.Lookuper) (*ConsoleConfig, error) {
	var cfg ConsoleConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load console configuration: %w", err)
	}
	return &cfg, nil
}
