package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpungsan/starmap/internal/errors"
)

// envFrom returns a lookup func backed by a fixed map.
func envFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func fullEnv() map[string]string {
	return map[string]string{
		EnvMySQLUsername: "astro",
		EnvMySQLPassword: "secret",
		EnvMySQLHost:     "db.local",
		EnvMySQLDB:       "stars",
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CatalogDriver != DriverMySQL {
		t.Errorf("CatalogDriver = %q, want %q", cfg.CatalogDriver, DriverMySQL)
	}
	if cfg.MaxDistance != 35 {
		t.Errorf("MaxDistance = %v, want 35", cfg.MaxDistance)
	}
	if cfg.OutputPath != "output/star_map.html" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if !cfg.ShouldOpenBrowser() {
		t.Error("ShouldOpenBrowser() = false, want true")
	}
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxDistance != DefaultConfig().MaxDistance {
		t.Fatalf("MaxDistance = %v, want %v", cfg.MaxDistance, DefaultConfig().MaxDistance)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrConfig) {
		t.Fatalf("Load() error = %v, want CONFIG", err)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "starmap.json")

	body := `{"catalog_driver": "sqlite", "catalog_dsn": "hyg.db", "max_distance": 20, "open_browser": false}`
	if err := os.WriteFile(configPath, []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CatalogDriver != DriverSQLite {
		t.Errorf("CatalogDriver = %q, want sqlite", cfg.CatalogDriver)
	}
	if cfg.CatalogDSN != "hyg.db" {
		t.Errorf("CatalogDSN = %q, want hyg.db", cfg.CatalogDSN)
	}
	if cfg.MaxDistance != 20 {
		t.Errorf("MaxDistance = %v, want 20", cfg.MaxDistance)
	}
	if cfg.ShouldOpenBrowser() {
		t.Error("ShouldOpenBrowser() = true, want false")
	}
	// Untouched fields keep defaults
	if cfg.OutputPath != "output/star_map.html" {
		t.Errorf("OutputPath = %q, want default", cfg.OutputPath)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "starmap.json")
	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	env := fullEnv()
	env[EnvLogLevel] = " debug "
	ApplyEnv(cfg, envFrom(env))

	want := MySQL{Username: "astro", Password: "secret", Host: "db.local", Database: "stars"}
	if cfg.MySQL != want {
		t.Errorf("MySQL = %+v, want %+v", cfg.MySQL, want)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate_MissingEnvReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	ApplyEnv(cfg, envFrom(map[string]string{EnvMySQLUsername: "astro"}))

	err := cfg.Validate()
	if !errors.Is(err, errors.ErrConfig) {
		t.Fatalf("Validate() error = %v, want CONFIG", err)
	}

	sErr := err.(*errors.StarmapError)
	missing := sErr.Details["missing"].([]string)
	want := []string{EnvMySQLPassword, EnvMySQLHost, EnvMySQLDB}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func TestValidate_EmptyPasswordAllowed(t *testing.T) {
	cfg := DefaultConfig()
	env := fullEnv()
	env[EnvMySQLPassword] = ""
	ApplyEnv(cfg, envFrom(env))

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "sqlite with dsn",
			mutate: func(c *Config) { c.CatalogDriver = DriverSQLite; c.CatalogDSN = "hyg.db" },
		},
		{
			name:    "sqlite without dsn",
			mutate:  func(c *Config) { c.CatalogDriver = DriverSQLite },
			wantErr: true,
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.CatalogDriver = "oracle" },
			wantErr: true,
		},
		{
			name:    "non-positive distance",
			mutate:  func(c *Config) { c.MaxDistance = -1 },
			wantErr: true,
		},
		{
			name:    "blank output path",
			mutate:  func(c *Config) { c.OutputPath = "  " },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyEnv(cfg, envFrom(fullEnv()))
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	no := false
	base := DefaultConfig()
	overlay := &Config{
		OutputPath:  " maps/out.html ",
		OpenBrowser: &no,
	}

	got := Merge(base, overlay)

	if got.OutputPath != "maps/out.html" {
		t.Errorf("OutputPath = %q, want maps/out.html", got.OutputPath)
	}
	if got.ShouldOpenBrowser() {
		t.Error("ShouldOpenBrowser() = true, want false")
	}
	if got.CatalogDriver != DriverMySQL {
		t.Errorf("CatalogDriver = %q, want base value", got.CatalogDriver)
	}
	if got.MaxDistance != 35 {
		t.Errorf("MaxDistance = %v, want base value", got.MaxDistance)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
