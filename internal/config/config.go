package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// FileName is the config file name looked up in the home directory.
const FileName = ".captvty-nav"

// EnvPrefix prefixes environment overrides, e.g. CAPTVTY_NAV_LAYOUT_CHANNEL_LIST_WIDTH.
const EnvPrefix = "CAPTVTY_NAV"

// Layout holds the empirically derived geometry of the Captvty window.
// Every value is tied to one rendering of the application and must be
// re-checked when its UI changes.
type Layout struct {
	// Width in pixels shared by the channel list and the mode-button strip.
	ChannelListWidth int `mapstructure:"channel_list_width" yaml:"channel_list_width" json:"channel_list_width"`
	// Number of mode buttons (Direct, Rattrapage, Téléchargement manuel).
	ModeButtonCount int `mapstructure:"mode_button_count" yaml:"mode_button_count" json:"mode_button_count"`
	// Foreground-window child index where the mode-button scan starts without a cached hint.
	ModeButtonScanStart int `mapstructure:"mode_button_scan_start" yaml:"mode_button_scan_start" json:"mode_button_scan_start"`
	// Child index of the pane holding the mode buttons inside the matched window.
	ModePaneIndex int `mapstructure:"mode_pane_index" yaml:"mode_pane_index" json:"mode_pane_index"`
	// Minimum child count of the container holding the channel rows.
	ChannelRowsMinChildren int `mapstructure:"channel_rows_min_children" yaml:"channel_rows_min_children" json:"channel_rows_min_children"`
	// Child-index path from a channel row to its clickable sub-element.
	ChannelRowPath []int `mapstructure:"channel_row_path" yaml:"channel_row_path" json:"channel_row_path"`
	// Click offsets relative to a channel element centre.
	ViewOffsetY           int `mapstructure:"view_offset_y" yaml:"view_offset_y" json:"view_offset_y"`
	ExternalPlayerOffsetX int `mapstructure:"external_player_offset_x" yaml:"external_player_offset_x" json:"external_player_offset_x"`
	RecordOffsetX         int `mapstructure:"record_offset_x" yaml:"record_offset_x" json:"record_offset_x"`
	// Scroll retry budget and wheel step size.
	ScrollAttempts int `mapstructure:"scroll_attempts" yaml:"scroll_attempts" json:"scroll_attempts"`
	ScrollStep     int `mapstructure:"scroll_step" yaml:"scroll_step" json:"scroll_step"`
}

// Config is the full runtime configuration.
type Config struct {
	Layout   Layout `mapstructure:"layout"    yaml:"layout"    json:"layout"`
	Fixture  string `mapstructure:"fixture"   yaml:"fixture"   json:"fixture"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
}

// DefaultLayout returns the layout measured on Captvty 3.
func DefaultLayout() Layout {
	return Layout{
		ChannelListWidth:       263,
		ModeButtonCount:        3,
		ModeButtonScanStart:    3,
		ModePaneIndex:          3,
		ChannelRowsMinChildren: 18,
		ChannelRowPath:         []int{3, 1},
		ViewOffsetY:            -20,
		ExternalPlayerOffsetX:  162,
		RecordOffsetX:          185,
		ScrollAttempts:         30,
		ScrollStep:             1,
	}
}

// Default returns the configuration used when no file or override is present.
func Default() *Config {
	return &Config{
		Layout:   DefaultLayout(),
		LogLevel: "info",
	}
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("layout.channel_list_width", d.Layout.ChannelListWidth)
	v.SetDefault("layout.mode_button_count", d.Layout.ModeButtonCount)
	v.SetDefault("layout.mode_button_scan_start", d.Layout.ModeButtonScanStart)
	v.SetDefault("layout.mode_pane_index", d.Layout.ModePaneIndex)
	v.SetDefault("layout.channel_rows_min_children", d.Layout.ChannelRowsMinChildren)
	v.SetDefault("layout.channel_row_path", d.Layout.ChannelRowPath)
	v.SetDefault("layout.view_offset_y", d.Layout.ViewOffsetY)
	v.SetDefault("layout.external_player_offset_x", d.Layout.ExternalPlayerOffsetX)
	v.SetDefault("layout.record_offset_x", d.Layout.RecordOffsetX)
	v.SetDefault("layout.scroll_attempts", d.Layout.ScrollAttempts)
	v.SetDefault("layout.scroll_step", d.Layout.ScrollStep)
	v.SetDefault("fixture", d.Fixture)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads cfgFile, or $HOME/.captvty-nav.yaml when cfgFile is empty, into v
// and decodes the result. A missing default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("locate home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Layout.Validate(); err != nil {
		return nil, err
	}
	if cfg.Fixture != "" {
		if expanded, err := homedir.Expand(cfg.Fixture); err == nil {
			cfg.Fixture = filepath.Clean(expanded)
		}
	}
	return &cfg, nil
}

// Validate rejects layouts the locators cannot work with.
func (l Layout) Validate() error {
	switch {
	case l.ChannelListWidth <= 0:
		return fmt.Errorf("layout.channel_list_width must be positive, got %d", l.ChannelListWidth)
	case l.ModeButtonCount <= 0:
		return fmt.Errorf("layout.mode_button_count must be positive, got %d", l.ModeButtonCount)
	case l.ModeButtonScanStart < 0:
		return fmt.Errorf("layout.mode_button_scan_start must not be negative, got %d", l.ModeButtonScanStart)
	case l.ModePaneIndex < 0:
		return fmt.Errorf("layout.mode_pane_index must not be negative, got %d", l.ModePaneIndex)
	case l.ScrollAttempts <= 0:
		return fmt.Errorf("layout.scroll_attempts must be positive, got %d", l.ScrollAttempts)
	case l.ScrollStep <= 0:
		return fmt.Errorf("layout.scroll_step must be positive, got %d", l.ScrollStep)
	}
	return nil
}
