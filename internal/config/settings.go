package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/awsl-project/entrainde/internal/visibility"
)

// Settings is the content of settings.yaml.
type Settings struct {
	Store  StoreSettings  `yaml:"store"`
	Tray   TraySettings   `yaml:"tray"`
	Window WindowSettings `yaml:"window"`
	Log    LogSettings    `yaml:"log"`

	// DataDir is where the settings file was found; not serialized.
	DataDir string `yaml:"-"`
}

type StoreSettings struct {
	// DSN selects a SQL backend; empty keeps tasks in tasks.json
	DSN string `yaml:"dsn"`
}

type TraySettings struct {
	ClickPolicy string `yaml:"click_policy"` // debounce | toggle
	Anchor      string `yaml:"anchor"`       // auto | top-right | bottom-right | top-left | bottom-left
}

type WindowSettings struct {
	StartHidden bool `yaml:"start_hidden"`
}

type LogSettings struct {
	File string `yaml:"file"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Tray: TraySettings{
			ClickPolicy: "debounce",
			Anchor:      "auto",
		},
		Log: LogSettings{File: LogFileName},
	}
}

// Load reads settings.yaml from dataDir and applies env overrides.
func Load(dataDir string) (*Settings, error) {
	s, err := LoadFile(dataDir)
	if err != nil {
		return nil, err
	}
	if dsn := os.Getenv(DSNEnv); dsn != "" {
		s.Store.DSN = dsn
	}
	return s, nil
}

// LoadFile reads settings.yaml from dataDir without env overrides, so the
// result can be saved back as is.
func LoadFile(dataDir string) (*Settings, error) {
	s, err := LoadYAMLOrDefault(filepath.Join(dataDir, SettingsFileName), DefaultSettings)
	if err != nil {
		return nil, err
	}
	s.DataDir = dataDir
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Keys lists the settings accepted by Set, in file order.
var Keys = []string{
	"store.dsn",
	"tray.click_policy",
	"tray.anchor",
	"window.start_hidden",
	"log.file",
}

// Get returns the value of key as text.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "store.dsn":
		return s.Store.DSN, nil
	case "tray.click_policy":
		return s.Tray.ClickPolicy, nil
	case "tray.anchor":
		return s.Tray.Anchor, nil
	case "window.start_hidden":
		return strconv.FormatBool(s.Window.StartHidden), nil
	case "log.file":
		return s.Log.File, nil
	default:
		return "", fmt.Errorf("unknown setting %q", key)
	}
}

// Set assigns key from text and validates the result. On error the
// settings are left unchanged.
func (s *Settings) Set(key, value string) error {
	next := *s
	switch key {
	case "store.dsn":
		next.Store.DSN = value
	case "tray.click_policy":
		next.Tray.ClickPolicy = value
	case "tray.anchor":
		next.Tray.Anchor = value
	case "window.start_hidden":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid window.start_hidden %q: %w", value, err)
		}
		next.Window.StartHidden = b
	case "log.file":
		next.Log.File = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// Save writes the settings to dataDir/settings.yaml.
func (s *Settings) Save() error {
	return SaveYAML(filepath.Join(s.DataDir, SettingsFileName), s)
}

// Validate rejects unknown enum values.
func (s *Settings) Validate() error {
	if _, err := visibility.ParseClickPolicy(s.Tray.ClickPolicy); err != nil {
		return fmt.Errorf("invalid tray.click_policy: %w", err)
	}
	switch s.Tray.Anchor {
	case "", "auto", "top-right", "bottom-right", "top-left", "bottom-left":
	default:
		return fmt.Errorf("invalid tray.anchor %q", s.Tray.Anchor)
	}
	return nil
}

// ClickPolicy returns the parsed tray click policy.
func (s *Settings) ClickPolicy() visibility.ClickPolicy {
	p, _ := visibility.ParseClickPolicy(s.Tray.ClickPolicy)
	return p
}

// TasksPath is the JSON document used when no DSN is set.
func (s *Settings) TasksPath() string {
	return filepath.Join(s.DataDir, TasksFileName)
}

// LogPath resolves log.file against the data directory. Empty disables
// the log file.
func (s *Settings) LogPath() string {
	if s.Log.File == "" || filepath.IsAbs(s.Log.File) {
		return s.Log.File
	}
	return filepath.Join(s.DataDir, s.Log.File)
}
