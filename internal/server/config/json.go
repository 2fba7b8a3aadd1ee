package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gatormarket/internal/flagx"
	"github.com/dmitrijs2005/gatormarket/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations use timex.Duration so
// "30m" and integer nanoseconds both work. Empty values leave Config alone.
type JsonConfig struct {
	ListenAddr     string         `json:"listen_addr"`
	DatabaseDSN    string         `json:"database_dsn"`
	SecretKey      string         `json:"secret_key"`
	AccessTokenTTL timex.Duration `json:"access_token_ttl"`
	EmailDomain    string         `json:"email_domain"`
	LogLevel       string         `json:"log_level"`
	Seed           *bool          `json:"seed"`
}

// parseJson loads the file named by -c or -config into config. Without
// either flag nothing happens; unreadable or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	config.AccessTokenTTL = c.AccessTokenTTL.OrDefault(config.AccessTokenTTL)
	setString(&config.EmailDomain, c.EmailDomain)
	setString(&config.LogLevel, c.LogLevel)
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
