package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv loads dotenvFile into the process environment, without
// overriding variables that are already set, and then overlays:
//
//	LISTEN_ADDR                  ListenAddr
//	DATABASE_DSN                 DatabaseDSN
//	SECRET_KEY                   SecretKey
//	ACCESS_TOKEN_EXPIRE_MINUTES  AccessTokenTTL
//	EMAIL_DOMAIN                 EmailDomain
//	LOG_LEVEL                    LogLevel
//	SEED_DB                      Seed
//
// A missing .env file is not an error; a malformed one panics, as do
// unparsable numbers.
func parseEnv(cfg *Config, dotenvFile string) {
	if dotenvFile != "" {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	envString(&cfg.ListenAddr, "LISTEN_ADDR")
	envString(&cfg.DatabaseDSN, "DATABASE_DSN")
	envString(&cfg.SecretKey, "SECRET_KEY")
	envString(&cfg.EmailDomain, "EMAIL_DOMAIN")
	envString(&cfg.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.AccessTokenTTL = time.Duration(m) * time.Minute
	}
	if v := os.Getenv("SEED_DB"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.Seed = b
	}
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
