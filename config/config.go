package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the start-up settings of the widget. It is read once and never
// written back, every launch starts from these values.
type Config struct {
	PhotoDir        string        `yaml:"photo_dir"`
	FramesDir       string        `yaml:"frames_dir"`
	Interval        time.Duration `yaml:"interval"`
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	CropMode        string        `yaml:"crop_mode"`
	Topmost         bool          `yaml:"topmost"`
	Locked          bool          `yaml:"locked"`
	ClickThrough    bool          `yaml:"click_through"`
	AttachToDesktop bool          `yaml:"attach_to_desktop"`
	UseCustomFrame  bool          `yaml:"use_custom_frame"`
	Hotkeys         bool          `yaml:"hotkeys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PhotoDir:       defaultPhotoDir(),
		FramesDir:      defaultFramesDir(),
		Interval:       DefaultInterval,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		CropMode:       CropModeCenter,
		Topmost:        true,
		UseCustomFrame: true,
		Hotkeys:        true,
	}
}

// DefaultPath returns the location of the start-up file in the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and fills in blanks left by a partial file.
func (c *Config) Validate() error {
	if c.PhotoDir == "" {
		c.PhotoDir = defaultPhotoDir()
	}
	if c.FramesDir == "" {
		c.FramesDir = defaultFramesDir()
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("size %dx%d is below the minimum %dx%d", c.Width, c.Height, MinWidth, MinHeight)
	}
	switch c.CropMode {
	case "":
		c.CropMode = CropModeCenter
	case CropModeCenter, CropModeSmart:
	default:
		return fmt.Errorf("unknown crop_mode %q", c.CropMode)
	}
	return nil
}

func defaultPhotoDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return PhotoSubDir
	}
	return filepath.Join(home, "Pictures", PhotoSubDir)
}

func defaultFramesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return FramesDirName
	}
	return filepath.Join(filepath.Dir(exe), FramesDirName)
}
