package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"combobox/internal/eventbus"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = "combobox.toml"

// Config represents the widget configuration
type Config struct {
	Version int    `toml:"version"`
	ID      string `toml:"id"`
	Label   string `toml:"label"`

	Data     []string `toml:"data"`
	DataFile string   `toml:"data_file,omitempty"`

	// Animation durations in milliseconds
	OpenAnimationDelay  int `toml:"open_animation_delay"`
	CloseAnimationDelay int `toml:"close_animation_delay"`

	ListHeight int `toml:"list_height"` // rows shown in the popup

	Log LogSettings `toml:"log"`

	fromFile int // trailing Data entries that came from DataFile
}

// LogSettings represents logging configuration
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// OpenDelay returns the open animation duration
func (c *Config) OpenDelay() time.Duration {
	return time.Duration(c.OpenAnimationDelay) * time.Millisecond
}

// CloseDelay returns the close animation duration
func (c *Config) CloseDelay() time.Duration {
	return time.Duration(c.CloseAnimationDelay) * time.Millisecond
}

// Validate checks the values a widget cannot run without
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if c.OpenAnimationDelay < 0 {
		errs = append(errs, fmt.Errorf("open_animation_delay must not be negative, got %d", c.OpenAnimationDelay))
	}
	if c.CloseAnimationDelay < 0 {
		errs = append(errs, fmt.Errorf("close_animation_delay must not be negative, got %d", c.CloseAnimationDelay))
	}
	if c.ListHeight < 1 {
		errs = append(errs, fmt.Errorf("list_height must be at least 1, got %d", c.ListHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LoadData appends the lines of DataFile to Data. Blank lines are skipped;
// a relative path is resolved against baseDir.
func (c *Config) LoadData(baseDir string) error {
	if c.DataFile == "" {
		return nil
	}
	path := c.DataFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			c.Data = append(c.Data, line)
			c.fromFile++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to parse data file: %w", err)
	}
	return nil
}

// SetData replaces all option values
func (c *Config) SetData(values []string) {
	c.Data = append([]string{}, values...)
	c.fromFile = 0
}

// SetDataFile swaps the data file: lines loaded from the previous DataFile
// are dropped, inline data is kept, and the lines of path are appended.
func (c *Config) SetDataFile(path, baseDir string) error {
	c.Data = c.Data[:len(c.Data)-c.fromFile]
	c.fromFile = 0
	c.DataFile = path
	return c.LoadData(baseDir)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path. An empty path
// means combobox.toml in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the bound file; a missing file yields
// the defaults
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Data == nil {
		cfg.Data = []string{}
	}

	if err := cfg.LoadData(filepath.Dir(path)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Items: len(cfg.Data)})
	}
}

// DefaultConfig returns a fresh default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             1,
		ID:                  "combobox",
		Label:               "Select",
		Data:                []string{},
		OpenAnimationDelay:  400,
		CloseAnimationDelay: 300,
		ListHeight:          6,
		Log: LogSettings{
			File: "combobox.log",
		},
	}
}
