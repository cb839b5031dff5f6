package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the backend server
//	-k string   key cache path
//	-i int      poll interval in seconds
//
// Only the flags handled here are kept from args (flagx.FilterArgs), so
// cobra and the file loader can share the same command line.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-i"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.KeyCachePath, "k", cfg.KeyCachePath, "key cache file")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "thread poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
}
