package config

import "time"

// Config holds runtime settings for the certkeeper CLI.
//
// Fields:
//   - ServerURL: base URL of the certificate backend (scheme and host).
//   - SessionDB: sqlite file that keeps the session cookie between runs.
//   - ScannerDevice: path of the barcode reader device; empty disables scanning.
//   - ToastTTL: how long a notification stays on screen.
//   - LogBackend / LogLevel: see logging.New.
//   - NoColor: render plain text without terminal styling.
type Config struct {
	ServerURL     string
	SessionDB     string
	ScannerDevice string
	ToastTTL      time.Duration
	LogBackend    string
	LogLevel      string
	NoColor       bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.SessionDB = "certkeeper.db"
	c.ScannerDevice = ""
	c.ToastTTL = 5 * time.Second
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.NoColor = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and dotenv file), JSON (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
