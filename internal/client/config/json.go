package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gatormarket/internal/flagx"
	"github.com/dmitrijs2005/gatormarket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero values mean "not set" so a partial file only overrides what it names.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	MockMode            *bool          `json:"mock_mode"`
	DataFile            string         `json:"data_file"`
	MockLatency         timex.Duration `json:"mock_latency"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	EmailDomain         string         `json:"email_domain"`
	LogLevel            string         `json:"log_level"`
	ImageBucket         string         `json:"image_bucket"`
	ImageRegion         string         `json:"image_region"`
	ImageEndpoint       string         `json:"image_endpoint"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without one it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	if jc.MockMode != nil {
		cfg.MockMode = *jc.MockMode
	}
	setString(&cfg.DataFile, jc.DataFile)
	cfg.MockLatency = jc.MockLatency.OrDefault(cfg.MockLatency)
	cfg.RequestTimeout = jc.RequestTimeout.OrDefault(cfg.RequestTimeout)
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.OrDefault(cfg.OnlineCheckInterval)
	setString(&cfg.EmailDomain, jc.EmailDomain)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.ImageBucket, jc.ImageBucket)
	setString(&cfg.ImageRegion, jc.ImageRegion)
	setString(&cfg.ImageEndpoint, jc.ImageEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
