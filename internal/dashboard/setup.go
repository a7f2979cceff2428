// Package dashboard prepares a project directory for the hosted traffic
// dashboard: it writes the dashboard server configuration and makes sure the
// data directory the dashboard reads from exists.
package dashboard

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/errors"
)

// configDir and configName locate the dashboard configuration relative to the
// project root, following the hosting platform's convention.
const (
	configDir  = ".streamlit"
	configName = "config.toml"
)

// requirementsName is the dependency manifest the hosting platform installs
// from. The setup only verifies its presence; installation itself is out of
// scope.
const requirementsName = "requirements.txt"

// serverConfig mirrors the dashboard server configuration file layout.
type serverConfig struct {
	Server  serverSection  `toml:"server"`
	Browser browserSection `toml:"browser"`
	Theme   themeSection   `toml:"theme"`
}

type serverSection struct {
	Port              int  `toml:"port"`
	Headless          bool `toml:"headless"`
	EnableCORS        bool `toml:"enableCORS"`
	EnableXsrfProtect bool `toml:"enableXsrfProtection"`
}

type browserSection struct {
	GatherUsageStats bool `toml:"gatherUsageStats"`
}

type themeSection struct {
	Base string `toml:"base"`
}

// Result reports what the setup run did.
type Result struct {
	ConfigPath      string
	DataDir         string
	HasRequirements bool
}

// Setup writes the dashboard configuration under projectRoot and ensures the
// data directory exists. Missing requirements.txt is reported, not fatal.
func Setup(projectRoot string, settings *conf.DashboardSettings, log *slog.Logger) (*Result, error) {
	if err := os.MkdirAll(filepath.Join(projectRoot, configDir), 0o755); err != nil {
		return nil, errors.New(err).
			Component("dashboard").
			Category(errors.CategoryFileIO).
			Context("operation", "create-config-dir").
			Build()
	}

	cfg := serverConfig{
		Server: serverSection{
			Port:              settings.Port,
			Headless:          true,
			EnableCORS:        false,
			EnableXsrfProtect: true,
		},
		Browser: browserSection{GatherUsageStats: false},
		Theme:   themeSection{Base: settings.Theme},
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.New(err).
			Component("dashboard").
			Category(errors.CategoryConfiguration).
			Context("operation", "marshal-config").
			Build()
	}

	configPath := filepath.Join(projectRoot, configDir, configName)
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return nil, errors.New(err).
			Component("dashboard").
			Category(errors.CategoryFileIO).
			FileContext(configPath).
			Build()
	}

	dataDir := settings.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(projectRoot, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.New(err).
			Component("dashboard").
			Category(errors.CategoryFileIO).
			FileContext(dataDir).
			Build()
	}

	result := &Result{
		ConfigPath: configPath,
		DataDir:    dataDir,
	}

	if _, err := os.Stat(filepath.Join(projectRoot, requirementsName)); err == nil {
		result.HasRequirements = true
	} else if log != nil {
		log.Warn("requirements.txt not found, the hosting platform will have nothing to install",
			"projectroot", projectRoot)
	}

	return result, nil
}
