// Package config assembles runtime settings for the vaultnotes CLI from
// defaults, an optional JSON file, and command-line flags — later sources
// take precedence over earlier ones.
package config

// Config holds runtime settings for the vaultnotes CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite vault database.
//   - LogLevel: minimum level for structured logging (debug/info/warn/error).
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "vaultnotes.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
