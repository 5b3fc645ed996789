package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"strings"

	"github.com/hpungsan/starmap/internal/errors"
)

// Catalog drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "starmap.json"

// Environment variables holding the MySQL credentials.
const (
	EnvMySQLUsername = "mysql_username"
	EnvMySQLPassword = "mysql_password"
	EnvMySQLHost     = "mysql_host"
	EnvMySQLDB       = "mysql_db"

	// EnvLogLevel overrides LogLevel from the config file.
	EnvLogLevel = "STARMAP_LOG_LEVEL"
)

// MySQL holds catalog credentials. They are only ever read from the environment.
type MySQL struct {
	Username string
	Password string
	Host     string
	Database string
}

// Config holds application configuration.
type Config struct {
	// CatalogDriver selects the catalog backend: "mysql" or "sqlite"
	CatalogDriver string `json:"catalog_driver,omitempty"`

	// CatalogDSN is the SQLite database path. Ignored for mysql.
	CatalogDSN string `json:"catalog_dsn,omitempty"`

	// MaxDistance is the exclusive distance cutoff for the catalog read, in light years.
	MaxDistance float64 `json:"max_distance,omitempty"`

	// OutputPath is where the HTML star map is written. Existing files are overwritten.
	OutputPath string `json:"output_path,omitempty"`

	// OpenBrowser launches the system viewer on the written file.
	// nil means unset (default true).
	OpenBrowser *bool `json:"open_browser,omitempty"`

	// PlotlyJSPath points to a local plotly.js bundle to inline into the page.
	// When empty the page loads plotly from its CDN.
	PlotlyJSPath string `json:"plotly_js_path,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	MySQL MySQL `json:"-"`

	// unsetEnv lists credential variables absent from the environment at ApplyEnv time.
	unsetEnv []string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	openBrowser := true
	return &Config{
		CatalogDriver: DriverMySQL,
		MaxDistance:   35,
		OutputPath:    "output/star_map.html",
		OpenBrowser:   &openBrowser,
		LogLevel:      "info",
	}
}

// ShouldOpenBrowser reports whether the written map should be opened.
func (c *Config) ShouldOpenBrowser() bool {
	return c.OpenBrowser == nil || *c.OpenBrowser
}

// Load loads configuration from path, falling back to DefaultFileName in the
// working directory when path is empty, then overlays the environment.
// A missing file yields the defaults; an explicitly named missing file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	file, err := loadFileRaw(path)
	if err != nil {
		if explicit || !stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewConfig(err.Error())
		}
		file = &Config{}
	}

	cfg := Merge(DefaultConfig(), file)
	ApplyEnv(cfg, os.LookupEnv)
	return cfg, nil
}

// loadFileRaw loads configuration from a specific file path without defaults.
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv copies credentials and overrides from the environment into cfg.
// lookup has the signature of os.LookupEnv so tests can supply a fixed map.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	cfg.unsetEnv = nil
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			cfg.unsetEnv = append(cfg.unsetEnv, key)
		}
		return v
	}

	cfg.MySQL = MySQL{
		Username: get(EnvMySQLUsername),
		Password: get(EnvMySQLPassword),
		Host:     get(EnvMySQLHost),
		Database: get(EnvMySQLDB),
	}

	if level, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(level) != "" {
		cfg.LogLevel = strings.TrimSpace(level)
	}
}

// Validate checks that the selected catalog driver has what it needs.
// For mysql every credential variable must be present in the environment
// (an empty password is allowed); all missing keys are reported at once.
func (c *Config) Validate() error {
	switch c.CatalogDriver {
	case DriverMySQL:
		if missing := c.unsetEnv; len(missing) > 0 {
			return errors.NewConfig("missing environment variables: "+strings.Join(missing, ", "), missing...)
		}
		if c.MySQL.Host == "" || c.MySQL.Database == "" {
			return errors.NewConfig("mysql_host and mysql_db must not be empty")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.CatalogDSN) == "" {
			return errors.NewConfig("catalog_dsn is required for the sqlite driver")
		}
	default:
		return errors.NewConfig("unknown catalog_driver: " + c.CatalogDriver)
	}

	if c.MaxDistance <= 0 {
		return errors.NewConfig("max_distance must be positive")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.NewConfig("output_path is required")
	}
	return nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence when set.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.CatalogDriver = pick(overlay.CatalogDriver, base.CatalogDriver)
	result.CatalogDSN = pick(overlay.CatalogDSN, base.CatalogDSN)
	result.OutputPath = pick(overlay.OutputPath, base.OutputPath)
	result.PlotlyJSPath = pick(overlay.PlotlyJSPath, base.PlotlyJSPath)
	result.LogLevel = pick(overlay.LogLevel, base.LogLevel)

	result.MaxDistance = overlay.MaxDistance
	if result.MaxDistance == 0 {
		result.MaxDistance = base.MaxDistance
	}

	// Pointer booleans: overlay wins if set
	result.OpenBrowser = base.OpenBrowser
	if overlay.OpenBrowser != nil {
		result.OpenBrowser = overlay.OpenBrowser
	}

	result.MySQL = base.MySQL
	result.unsetEnv = base.unsetEnv
	if overlay.MySQL != (MySQL{}) || overlay.unsetEnv != nil {
		result.MySQL = overlay.MySQL
		result.unsetEnv = overlay.unsetEnv
	}

	return result
}

// pick returns overlay unless it is blank.
func pick(overlay, base string) string {
	if strings.TrimSpace(overlay) != "" {
		return strings.TrimSpace(overlay)
	}
	return base
}
