package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	httpapi "github.com/jekabolt/affiliate-dashboard/internal/api/http"
	"github.com/jekabolt/affiliate-dashboard/internal/auth/jwt"
	"github.com/jekabolt/affiliate-dashboard/internal/report"
	"github.com/jekabolt/affiliate-dashboard/internal/store"
	"github.com/jekabolt/affiliate-dashboard/log"
)

// Config represents the global configuration for the service.
type Config struct {
	DB     store.Config   `mapstructure:"db"`
	Logger log.Config     `mapstructure:"logger"`
	HTTP   httpapi.Config `mapstructure:"http"`
	Auth   jwt.Config     `mapstructure:"auth"`
	Report report.Config  `mapstructure:"report"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values, a .env file in the
// working directory is loaded first when present.
// Env vars use underscores and uppercase, e.g., DB_DSN, AUTH_JWT_SECRET
// Nested config keys use double underscore, e.g., DB__DSN for db.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	// e.g., db.dsn -> DB__DSN, auth.jwt_secret -> AUTH__JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	// Config file is optional, env vars alone are enough
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/affiliate-dashboard")
		v.AddConfigPath("/etc/affiliate-dashboard")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	// With no DSN set, a MySQL DSN can be assembled from MYSQL_* or DigitalOcean's db.* env vars
	if config.DB.DSN == "" {
		if dsn := mysqlDSNFromEnv(); dsn != "" {
			config.DB.Driver = store.DriverMySQL
			config.DB.DSN = dsn
		}
	}

	return &config, nil
}

func mysqlDSNFromEnv() string {
	var host, port, user, password, database string
	if dbHost := os.Getenv("db.HOSTNAME"); dbHost != "" {
		host = dbHost
		port = os.Getenv("db.PORT")
		user = os.Getenv("db.USERNAME")
		password = os.Getenv("db.PASSWORD")
		database = os.Getenv("db.DATABASE")
	} else {
		host = os.Getenv("MYSQL_HOST")
		port = os.Getenv("MYSQL_PORT")
		user = os.Getenv("MYSQL_USER")
		password = os.Getenv("MYSQL_PASSWORD")
		database = os.Getenv("MYSQL_DATABASE")
	}

	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	// managed databases require TLS
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true&tls=custom",
		user, password, host, port, database)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", store.DriverSQLite)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.max_open_connections", 10)
	v.SetDefault("db.max_idle_connections", 5)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.request_timeout", 30*time.Second)
	v.SetDefault("http.rate_limit.ip_per_minute", 120)
	v.SetDefault("http.rate_limit.publisher_per_minute", 60)

	v.SetDefault("auth.jwt_ttl", 24*time.Hour)

	v.SetDefault("report.timezone", "UTC")
	v.SetDefault("report.max_parallel_queries", 8)
	v.SetDefault("report.traffic_source_limit", 5)
	v.SetDefault("report.max_range_days", 366)
}

// bindEnvVars binds flat environment variables (DB_DSN) next to the nested form (DB__DSN)
func bindEnvVars(v *viper.Viper) {
	// DB
	v.BindEnv("db.driver", "DB_DRIVER")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("db.automigrate", "DB_AUTOMIGRATE")
	v.BindEnv("db.max_open_connections", "DB_MAX_OPEN_CONNECTIONS")
	v.BindEnv("db.max_idle_connections", "DB_MAX_IDLE_CONNECTIONS")
	v.BindEnv("db.tls_ca_path", "DB_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	v.BindEnv("http.rate_limit.ip_per_minute", "HTTP_RATE_LIMIT_IP_PER_MINUTE")
	v.BindEnv("http.rate_limit.publisher_per_minute", "HTTP_RATE_LIMIT_PUBLISHER_PER_MINUTE")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Report
	v.BindEnv("report.timezone", "REPORT_TIMEZONE")
	v.BindEnv("report.max_parallel_queries", "REPORT_MAX_PARALLEL_QUERIES")
	v.BindEnv("report.traffic_source_limit", "REPORT_TRAFFIC_SOURCE_LIMIT")
	v.BindEnv("report.max_range_days", "REPORT_MAX_RANGE_DAYS")
}
