package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-d string   session database file
//	-s string   barcode scanner device path
//	-t int      notification display time (in seconds)
//	-l string   log level
//
// Only these flags are parsed (via flagx.FilterArgs); -c and -e belong to
// the JSON and dotenv layers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.ScannerDevice, "s", cfg.ScannerDevice, "barcode scanner device")
	toastTTL := fs.Int("t", int(cfg.ToastTTL.Seconds()), "notification display time (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ToastTTL = time.Duration(*toastTTL) * time.Second
}
