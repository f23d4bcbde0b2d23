package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/rampeditor/pkg/address"
)

// DefaultPaletteName is used when no palette is configured or named.
const DefaultPaletteName = "default"

type Config interface {
	// BasePath is the directory palettes are stored under.
	BasePath() string
	// DefaultPalette names the palette commands act on when none is given.
	DefaultPalette() string
	// Bounds limits the address space new palettes wrap within.
	Bounds() address.Bounds
}

// LoadConfig reads a .rampeditor config file from $RAMPEDITOR_CONFIG_PATH or
// the working directory, with RAMPEDITOR_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.rampeditor.db")
	viper.SetDefault("palette", DefaultPaletteName)
	viper.SetDefault("bounds.pages", 1)
	viper.SetDefault("bounds.lines", 16)
	viper.SetDefault("bounds.columns", 16)
	viper.SetConfigName(".rampeditor") // .yaml is implicit
	viper.SetEnvPrefix("RAMPEDITOR")
	viper.AutomaticEnv()

	if override := os.Getenv("RAMPEDITOR_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &StaticConfig{
		Path:    path,
		Palette: viper.GetString("palette"),
		Size: address.Bounds{
			Pages:   viper.GetInt("bounds.pages"),
			Lines:   viper.GetInt("bounds.lines"),
			Columns: viper.GetInt("bounds.columns"),
		},
	}, nil
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path    string         `json:"path"`
	Palette string         `json:"palette"`
	Size    address.Bounds `json:"bounds"`
}

func (f *StaticConfig) BasePath() string {
	return f.Path
}

func (f *StaticConfig) DefaultPalette() string {
	if f.Palette == "" {
		return DefaultPaletteName
	}
	return f.Palette
}

func (f *StaticConfig) Bounds() address.Bounds {
	return f.Size.Normalize()
}
