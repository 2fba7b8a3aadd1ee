package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gatormarket/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote API
//	-m bool     mock mode (-m=false or -m false)
//	-d string   local data file
//	-i int      online check interval in seconds
//	-l string   log level
//
// Note: os.Args is filtered with flagx.FilterArgs so unknown flags are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-i", "-l"}, "-m")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the marketplace API")
	fs.BoolVar(&cfg.MockMode, "m", cfg.MockMode, "use the local mock account service")
	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "path of the local data file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
