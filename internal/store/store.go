package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"

	_ "github.com/lib/pq"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Config defines configurations to connect database
type Config struct {
	Driver             string `mapstructure:"driver"`
	DSN                string `mapstructure:"dsn"`
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
	TLSCAPath          string `mapstructure:"tls_ca_path"`
}

// SQLStore implements read access to the event store on any supported SQL backend.
type SQLStore struct {
	db      *sqlx.DB
	dialect dialect
	close   context.CancelFunc
}

// resolveCertPath resolves @certs paths to the config/certs directory
func resolveCertPath(path string) string {
	if strings.HasPrefix(path, "@certs/") {
		configPaths := []string{
			"./config/certs",
			"config/certs",
			"$HOME/config/affiliate-dashboard/certs",
			"/etc/affiliate-dashboard/certs",
		}

		certFile := strings.TrimPrefix(path, "@certs/")
		for _, basePath := range configPaths {
			if strings.HasPrefix(basePath, "$") {
				basePath = os.ExpandEnv(basePath)
			}
			fullPath := filepath.Join(basePath, certFile)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath
			}
		}
		return filepath.Join("./config/certs", certFile)
	}
	return path
}

// registerTLSConfig registers a custom TLS configuration with the MySQL driver.
// db.CA_CERT (certificate content) wins over TLSCAPath (file, supports @certs/ prefix).
func registerTLSConfig(cfg Config) error {
	var caCert []byte
	var err error

	if dbCACert := os.Getenv("db.CA_CERT"); dbCACert != "" {
		caCert = []byte(dbCACert)
		slog.Default().Info("using CA certificate from db.CA_CERT environment variable")
	} else if cfg.TLSCAPath != "" {
		certPath := resolveCertPath(cfg.TLSCAPath)
		caCert, err = os.ReadFile(certPath)
		if err != nil {
			return fmt.Errorf("failed to read CA certificate from %s: %w", certPath, err)
		}
		slog.Default().Info("using CA certificate from file", "path", certPath)
	} else {
		return nil
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return fmt.Errorf("failed to parse CA certificate")
	}

	mysql.RegisterTLSConfig("custom", &tls.Config{
		RootCAs: caCertPool,
	})
	return nil
}

// open resolves the dialect and opens a pool, without touching the network.
func open(cfg Config) (*sqlx.DB, dialect, error) {
	driver := cfg.Driver
	if driver == "" && (strings.HasPrefix(cfg.DSN, "libsql://") || strings.HasPrefix(cfg.DSN, "wss://")) {
		driver = DriverLibSQL
	}
	d, err := dialectFor(driver)
	if err != nil {
		return nil, dialect{}, err
	}

	dsn := cfg.DSN
	switch d.name {
	case DriverMySQL:
		if err := registerTLSConfig(cfg); err != nil {
			return nil, dialect{}, fmt.Errorf("failed to register TLS config: %w", err)
		}
	case DriverSQLite:
		dsn = withSQLiteTimeFormat(dsn)
	}

	db, err := sqlx.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, dialect{}, fmt.Errorf("couldn't open database : %v", err)
	}

	if cfg.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	db.SetConnMaxLifetime(2 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Second)

	return db, d, nil
}

// New connects to the database, applies migrations when enabled and returns a new SQLStore.
func New(ctx context.Context, cfg Config) (*SQLStore, error) {
	db, d, err := open(cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations", slog.String("driver", d.name))
		migrateCtx, migrateCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer migrateCancel()
		if _, err := MigrateWithContext(migrateCtx, db.DB, d.migrateDialect); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	ctx, c := context.WithCancel(ctx)
	ss := &SQLStore{
		db:      db,
		dialect: d,
		close:   c,
	}

	go func() {
		<-ctx.Done()
		db.Close()
	}()

	return ss, nil
}

// Migrate opens the configured database and applies pending migrations.
func Migrate(ctx context.Context, cfg Config) (int, error) {
	db, d, err := open(cfg)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return MigrateWithContext(ctx, db.DB, d.migrateDialect)
}

//go:embed sql
var fs embed.FS

// MigrateWithContext applies the embedded migrations using the sql-migrate dialect name
// ("mysql", "postgres" or "sqlite3") and returns how many were applied.
func MigrateWithContext(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	m := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := migrate.Exec(db, dialect, m, migrate.Up)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("migration timeout: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return 0, fmt.Errorf("db migrations have failed: %w", res.err)
		}
		slog.Default().InfoContext(ctx, "applied migrations",
			slog.Int("count", res.n),
		)
		return res.n, nil
	}
}

func (ms *SQLStore) DB() dependency.DB {
	return ms.db
}

// Driver returns the normalized driver name the store was opened with.
func (ms *SQLStore) Driver() string {
	return ms.dialect.name
}

func (ms *SQLStore) Close() {
	ms.close()
}

// Ping checks database connectivity by executing a simple query
func (ms *SQLStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	err := ms.db.QueryRowxContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
