package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for obralog, stored in
// ~/.obralog/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	Backend  BackendConfig  `json:"backend"`
	Defaults DefaultsConfig `json:"defaults"`
}

// BackendConfig holds the remote diary backend connection settings.
type BackendConfig struct {
	// BaseURL is the backend root, e.g. "https://diario.example.com".
	BaseURL string `json:"base_url"`
	// Token is the pre-provisioned API bearer token.
	Token string `json:"token"`
}

// DefaultsConfig holds values pre-filled into new drafts.
type DefaultsConfig struct {
	// ProjectID is the project selected when none is passed on the
	// command line. 0 means always ask.
	ProjectID int64 `json:"project_id"`
	// Period is the day period pre-selected on new logs ("manha",
	// "tarde", "noite" or "integral").
	Period string `json:"period"`
}

const (
	// DefaultBaseURL points at a local backend, the usual dev setup.
	DefaultBaseURL = "http://localhost:3333"
	// DefaultPeriod is the period pre-selected on new logs.
	DefaultPeriod = "integral"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			BaseURL: DefaultBaseURL,
		},
		Defaults: DefaultsConfig{
			Period: DefaultPeriod,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// obralog configuration – ~/.obralog/config.json
//
// Edit this file to point obralog at your diary backend.
{
  // ── Backend connection ────────────────────────────────────────────────
  "backend": {
    // Root URL of the diary backend API.
    "base_url": "http://localhost:3333",

    // API bearer token issued by the backend administrator.
    "token": ""
  },

  // ── Draft defaults ────────────────────────────────────────────────────
  "defaults": {
    // Project pre-selected when --project is not passed. 0 = always ask.
    "project_id": 0,

    // Period pre-selected on new daily logs:
    // "manha", "tarde", "noite" or "integral".
    "period": "integral"
  }
}
`

// configFilePath returns the path to ~/.obralog/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".obralog", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.obralog/config.json, creating it with annotated defaults
// on first run. Lines starting with // are treated as comments and
// stripped before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return loadFrom(path)
}

// loadFrom is Load with an explicit path, for tests.
func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultBaseURL
	}
	if cfg.Defaults.Period == "" {
		cfg.Defaults.Period = DefaultPeriod
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
