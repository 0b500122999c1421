// Package config loads menucontainer settings from defaults, an optional config
// file and MENUCONTAINER_* environment variables, and watches the file for edits.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"menucontainer/internal/drawer"
)

// Config holds application configuration.
type Config struct {
	Drawer    DrawerConfig
	UI        UIConfig
	Telemetry TelemetryConfig
}

// DrawerConfig holds panel geometry and animation settings.
type DrawerConfig struct {
	SidePanelWidth    float64       `mapstructure:"side_panel_width"`
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	ShadowOpacity     float64       `mapstructure:"shadow_opacity"`
	OverlayAlpha      float64       `mapstructure:"overlay_alpha"`
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	// CellsPerUnit converts drawer distance units into terminal columns.
	CellsPerUnit  float64       `mapstructure:"cells_per_unit"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	Storyboard    string        `mapstructure:"storyboard"`
	LogFile       string        `mapstructure:"log_file"`
}

// TelemetryConfig holds OTLP export settings. An empty endpoint disables export.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// Settings converts the drawer section into container settings.
func (c Config) Settings() drawer.Settings {
	return drawer.Settings{
		SidePanelWidth:    c.Drawer.SidePanelWidth,
		AnimationDuration: c.Drawer.AnimationDuration,
		ShadowOpacity:     c.Drawer.ShadowOpacity,
		OverlayAlpha:      c.Drawer.OverlayAlpha,
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("drawer: %w", err)
	}
	if c.UI.CellsPerUnit <= 0 {
		return fmt.Errorf("ui: cells_per_unit must be positive, got %v", c.UI.CellsPerUnit)
	}
	if c.UI.FrameInterval <= 0 {
		return fmt.Errorf("ui: frame_interval must be positive, got %v", c.UI.FrameInterval)
	}
	return nil
}

// Changed is delivered after the config file is edited.
type Changed struct {
	Config Config
	Err    error
}

// Loader reads configuration and keeps the underlying viper instance for watching.
type Loader struct {
	v *viper.Viper
}

// NewLoader sets defaults, the file search path and env overrides.
// An explicit path wins over MENUCONTAINER_CONFIG and the default location.
func NewLoader(path string) *Loader {
	v := viper.New()

	d := drawer.DefaultSettings()
	v.SetDefault("drawer.side_panel_width", d.SidePanelWidth)
	v.SetDefault("drawer.animation_duration", d.AnimationDuration)
	v.SetDefault("drawer.shadow_opacity", d.ShadowOpacity)
	v.SetDefault("drawer.overlay_alpha", d.OverlayAlpha)
	v.SetDefault("ui.cells_per_unit", 0.1)
	v.SetDefault("ui.frame_interval", 16*time.Millisecond)
	v.SetDefault("ui.storyboard", "")
	v.SetDefault("ui.log_file", filepath.Join(os.TempDir(), "menucontainer.log"))
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "menucontainer")

	if path == "" {
		path = os.Getenv("MENUCONTAINER_CONFIG")
	}
	switch {
	case path == "":
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "menucontainer"))
		v.SetConfigName("config")
	case filepath.Ext(path) == "":
		// the file type comes from the extension; bare names are TOML
		v.SetConfigType("toml")
		v.SetConfigFile(path)
	default:
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("MENUCONTAINER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads the config file if present and decodes the result.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return l.decode()
}

// Watch delivers a Changed value on the returned channel each time the config
// file is written. The channel is buffered by one; stale values are dropped.
func (l *Loader) Watch() <-chan Changed {
	ch := make(chan Changed, 1)
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			err = fmt.Errorf("reload %s: %w", e.Name, err)
		}
		select {
		case <-ch:
		default:
		}
		ch <- Changed{Config: cfg, Err: err}
	})
	l.v.WatchConfig()
	return ch
}

// File returns the config file in use, or "" when running on defaults.
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) decode() (Config, error) {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
