// Package config loads runtime configuration for the certkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Dotenv file and environment (see parseEnv): CERTKEEPER_* variables,
//     file chosen with -e / -env-file, ./.env used when present.
//  3. Optional JSON file (see parseJson) selected via -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   session database file
//	-s string   barcode scanner device path
//	-t int      notification display time (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values may be strings like "5s" or
// integer nanoseconds. Every key is optional:
//
//	{
//	  "server_url": "https://certs.example.com",
//	  "session_db": "/home/me/.certkeeper/session.db",
//	  "scanner_device": "/dev/ttyACM0",
//	  "toast_ttl": "5s",
//	  "log_backend": "zerolog",
//	  "log_level": "debug",
//	  "no_color": true
//	}
package config
