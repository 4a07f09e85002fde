package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/certkeeper/internal/flagx"
	"github.com/dmitrijs2005/certkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Pointer fields distinguish "absent" from "zero" so a partial file only
// overrides what it names.
type JsonConfig struct {
	ServerURL     *string         `json:"server_url"`
	SessionDB     *string         `json:"session_db"`
	ScannerDevice *string         `json:"scanner_device"`
	ToastTTL      *timex.Duration `json:"toast_ttl"`
	LogBackend    *string         `json:"log_backend"`
	LogLevel      *string         `json:"log_level"`
	NoColor       *bool           `json:"no_color"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. Without the flag nothing is loaded.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.SessionDB != nil {
		cfg.SessionDB = *jc.SessionDB
	}
	if jc.ScannerDevice != nil {
		cfg.ScannerDevice = *jc.ScannerDevice
	}
	if jc.ToastTTL != nil {
		cfg.ToastTTL = jc.ToastTTL.Duration
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}
}
