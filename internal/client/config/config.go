package config

import "time"

// Config holds runtime settings for the marketplace CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote marketplace API.
//   - MockMode: use the local account service instead of the remote API.
//   - DataFile: SQLite file that backs the client store.
//   - MockLatency: simulated delay of every mock account operation.
//   - RequestTimeout: per-request timeout of the remote adapter.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - EmailDomain: required institutional email suffix.
//   - LogLevel: debug, info, warn or error.
//   - ImageBucket, ImageRegion, ImageEndpoint: S3 target for listing images.
//     An empty bucket keeps images inline as data URLs.
type Config struct {
	APIBaseURL          string
	MockMode            bool
	DataFile            string
	MockLatency         time.Duration
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	EmailDomain         string
	LogLevel            string
	ImageBucket         string
	ImageRegion         string
	ImageEndpoint       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.MockMode = true
	c.DataFile = "gatormarket.db"
	c.MockLatency = 500 * time.Millisecond
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.EmailDomain = "@ufl.edu"
	c.LogLevel = "warn"
	c.ImageRegion = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
