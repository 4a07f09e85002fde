package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variable names understood by parseEnv.
const (
	EnvServerURL     = "CERTKEEPER_SERVER_URL"
	EnvSessionDB     = "CERTKEEPER_SESSION_DB"
	EnvScannerDevice = "CERTKEEPER_SCANNER_DEVICE"
	EnvToastTTL      = "CERTKEEPER_TOAST_TTL"
	EnvLogBackend    = "CERTKEEPER_LOG_BACKEND"
	EnvLogLevel      = "CERTKEEPER_LOG_LEVEL"
	EnvNoColor       = "CERTKEEPER_NO_COLOR"
)

// parseEnv overlays Config with CERTKEEPER_* variables.
//
// Values come from a dotenv file (-e / -env-file, or ./.env when present)
// merged with the process environment; real environment variables win over
// the file. The file is read without touching os.Environ.
//
// Panics on an unreadable explicitly requested file or a malformed value.
func parseEnv(cfg *Config) {
	vars := map[string]string{}

	envFile := flagx.EnvFileFlag()
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	fileVars, err := godotenv.Read(envFile)
	switch {
	case err == nil:
		vars = fileVars
	case explicit || !errors.Is(err, os.ErrNotExist):
		panic(err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	if v, ok := lookup(EnvServerURL); ok {
		cfg.ServerURL = v
	}
	if v, ok := lookup(EnvSessionDB); ok {
		cfg.SessionDB = v
	}
	if v, ok := lookup(EnvScannerDevice); ok {
		cfg.ScannerDevice = v
	}
	if v, ok := lookup(EnvToastTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.ToastTTL = d
	}
	if v, ok := lookup(EnvLogBackend); ok {
		cfg.LogBackend = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvNoColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.NoColor = b
	}
}
