package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/talenthub/talenthub-cli/internal/flagx"
)

// jsonDuration lets JSON specify intervals either as strings like "15s"
// or as integer nanoseconds.
type jsonDuration struct {
	time.Duration
}

func (d *jsonDuration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return &json.UnsupportedValueError{}
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL  string       `json:"server_base_url"`
	RequestTimeout jsonDuration `json:"request_timeout"`
	DatabasePath   string       `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via the -c or -config flags. If no path is provided, nothing is
// loaded. Read or unmarshal errors panic; the startup sequence treats a
// broken config file as unrecoverable.
//
// Zero-valued JSON fields do not override existing values, so a partial
// file only touches what it names.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
