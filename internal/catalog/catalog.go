package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/hpungsan/starmap/internal/config"
	"github.com/hpungsan/starmap/internal/errors"
)

// CurrentSchemaVersion is the latest schema version of seeded SQLite catalogs.
const CurrentSchemaVersion = 1

// Source identifies a catalog database.
type Source struct {
	Driver string // config.DriverMySQL or config.DriverSQLite
	DSN    string
}

// String returns a loggable form of the source with credentials removed.
func (s Source) String() string {
	if s.Driver == config.DriverMySQL {
		if c, err := mysql.ParseDSN(s.DSN); err == nil {
			return fmt.Sprintf("mysql://%s/%s", c.Addr, c.DBName)
		}
		return "mysql://"
	}
	return s.Driver + "://" + s.DSN
}

// SourceFromConfig builds the catalog source for the configured driver.
func SourceFromConfig(cfg *config.Config) (Source, error) {
	switch cfg.CatalogDriver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.MySQL.Username
		mc.Passwd = cfg.MySQL.Password
		mc.Net = "tcp"
		mc.Addr = cfg.MySQL.Host
		mc.DBName = cfg.MySQL.Database
		return Source{Driver: config.DriverMySQL, DSN: mc.FormatDSN()}, nil
	case config.DriverSQLite:
		return SQLiteSource(cfg.CatalogDSN), nil
	default:
		return Source{}, errors.NewConfig("unknown catalog_driver: " + cfg.CatalogDriver)
	}
}

// SQLiteSource returns a read source for the SQLite file at path.
func SQLiteSource(path string) Source {
	return Source{Driver: config.DriverSQLite, DSN: path + "?_pragma=busy_timeout(5000)"}
}

// Open connects to the catalog and verifies the connection.
// The caller owns the returned handle and must Close it.
func Open(ctx context.Context, src Source) (*sql.DB, error) {
	if src.Driver == config.DriverSQLite {
		// sql.Open creates missing files; a reader must not invent an empty catalog.
		if _, err := os.Stat(sqlitePath(src.DSN)); err != nil {
			return nil, errors.NewConnection(src.Driver, err)
		}
	}

	db, err := sql.Open(src.Driver, src.DSN)
	if err != nil {
		return nil, errors.NewConnection(src.Driver, err)
	}

	// One pass, one statement.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewConnection(src.Driver, err)
	}
	return db, nil
}

// WithCatalog opens src, runs fn and closes the connection on every exit path.
// The close error is reported only if fn succeeded.
func WithCatalog(ctx context.Context, src Source, fn func(db *sql.DB) error) (err error) {
	db, err := Open(ctx, src)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errors.NewConnection(src.Driver, fmt.Errorf("close: %w", cerr))
		}
	}()
	return fn(db)
}

// Create initializes a writable SQLite catalog at path, creating parent
// directories and the hyg table as needed.
func Create(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.NewIO(filepath.Dir(path), err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open(config.DriverSQLite, dsn)
	if err != nil {
		return nil, errors.NewConnection(config.DriverSQLite, err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate applies schema migrations based on user_version.
func Migrate(db *sql.DB) error {
	version, err := GetUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: hyg subset used by the star map
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS hyg (
		  id      INTEGER PRIMARY KEY AUTOINCREMENT,
		  x       REAL NOT NULL,
		  y       REAL NOT NULL,
		  z       REAL NOT NULL,
		  iauname TEXT,
		  altname TEXT,
		  bf      TEXT,
		  gl      TEXT,
		  absmag  REAL,
		  dist    REAL NOT NULL,
		  spect   TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_hyg_dist ON hyg(dist);
		`
		if _, err := db.Exec(schema); err != nil {
			return errors.NewQuery(fmt.Errorf("migration 1 failed: %w", err))
		}
		if err := SetUserVersion(db, 1); err != nil {
			return err
		}
	}

	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, errors.NewQuery(fmt.Errorf("failed to get user_version: %w", err))
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(db *sql.DB, version int) error {
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return errors.NewQuery(fmt.Errorf("failed to set user_version: %w", err))
	}
	return nil
}

// sqlitePath strips the query string from a SQLite DSN.
func sqlitePath(dsn string) string {
	path, _, _ := strings.Cut(dsn, "?")
	return path
}
