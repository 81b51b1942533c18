package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/treykane/mathmark/internal/codec"
	"github.com/treykane/mathmark/internal/delim"
	"github.com/treykane/mathmark/internal/logging"
	"github.com/treykane/mathmark/internal/render"
)

const (
	configDirName  = ".mathmark"
	configFileName = "config.json"
	draftFileName  = "draft.md"
)

var ErrNotConfigured = errors.New("mathmark is not configured")

var configLog = logging.New("config")

// Config stores the user's mathmark settings.
type Config struct {
	InlineLeft   string            `json:"inline_left"`
	InlineRight  string            `json:"inline_right"`
	DisplayLeft  string            `json:"display_left"`
	DisplayRight string            `json:"display_right"`
	Target       string            `json:"target"`
	Renderer     string            `json:"renderer"`
	Keybindings  map[string]string `json:"keybindings,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	set := delim.DefaultSet()
	return Config{
		InlineLeft:   set.Inline.Left,
		InlineRight:  set.Inline.Right,
		DisplayLeft:  set.Display.Left,
		DisplayRight: set.Display.Right,
		Target:       codec.HatenaName,
		Renderer:     string(render.DefaultEngine),
	}
}

// Delimiters returns the configured delimiter set.
func (c Config) Delimiters() delim.Set {
	return delim.NewSet(c.InlineLeft, c.InlineRight, c.DisplayLeft, c.DisplayRight)
}

// Engine returns the configured math typesetter.
func (c Config) Engine() render.Engine {
	if engine, ok := render.ParseEngine(c.Renderer); ok {
		return engine
	}
	return render.DefaultEngine
}

// Codec resolves the configured target in reg. An unknown target falls back
// to the default one.
func (c Config) Codec(reg *codec.Registry) (codec.Codec, error) {
	cdc, err := reg.Lookup(c.Target)
	if err == nil {
		return cdc, nil
	}
	configLog.Warn("unknown target, using default", "target", c.Target, "error", err)
	return reg.Lookup(Default().Target)
}

// Dir returns the directory holding the config and draft files.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DraftPath returns the path of the saved editor text.
func DraftPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, draftFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads the saved configuration.
//
// A missing file yields the defaults together with ErrNotConfigured. A file
// that is not a JSON object is ignored. Every key is otherwise checked on its
// own and replaced by its default when it has the wrong type or an invalid
// value, so one bad entry never discards the rest.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), ErrNotConfigured
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}

	return Parse(data), nil
}

// Parse decodes settings with the per-key fallback described on Load.
func Parse(data []byte) Config {
	cfg := Default()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		configLog.Warn("ignoring unreadable config", "error", err)
		return cfg
	}

	for key, field := range cfg.stringFields() {
		value, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			configLog.Warn("invalid setting, using default", "key", key, "error", err)
			continue
		}
		if err := validateField(key, s); err != nil {
			configLog.Warn("invalid setting, using default", "key", key, "value", s, "error", err)
			continue
		}
		*field = s
	}
	cfg.Target = strings.ToLower(strings.TrimSpace(cfg.Target))
	cfg.Renderer = string(cfg.Engine())

	if value, ok := raw["keybindings"]; ok {
		var bindings map[string]string
		if err := json.Unmarshal(value, &bindings); err != nil {
			configLog.Warn("invalid keybindings, using defaults", "error", err)
		} else {
			cfg.Keybindings = bindings
		}
	}

	if err := cfg.Delimiters().Validate(); err != nil {
		configLog.Warn("invalid delimiters, using defaults", "error", err)
		def := Default()
		cfg.InlineLeft, cfg.InlineRight = def.InlineLeft, def.InlineRight
		cfg.DisplayLeft, cfg.DisplayRight = def.DisplayLeft, def.DisplayRight
	}

	return cfg
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := cfg.Delimiters().Validate(); err != nil {
		return fmt.Errorf("invalid delimiters: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(path, data, 0o600)
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"inline_left":   &c.InlineLeft,
		"inline_right":  &c.InlineRight,
		"display_left":  &c.DisplayLeft,
		"display_right": &c.DisplayRight,
		"target":        &c.Target,
		"renderer":      &c.Renderer,
	}
}

func validateField(key, value string) error {
	if value == "" {
		return errors.New("value is empty")
	}
	switch key {
	case "inline_left", "inline_right", "display_left", "display_right":
		if strings.ContainsAny(value, "\r\n") {
			return delim.ErrNewlineDelimiter
		}
	case "target":
		if strings.TrimSpace(value) == "" {
			return errors.New("value is empty")
		}
	case "renderer":
		if _, ok := render.ParseEngine(value); !ok {
			return fmt.Errorf("unknown renderer %q", value)
		}
	}
	return nil
}
