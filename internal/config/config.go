package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Config holds the persisted CLI settings.
type Config struct {
	// DefaultService is used by generate when no -s flag is given.
	DefaultService string `json:"default_service,omitempty"`
	// DefaultOutput overrides the "auto" output mode resolution.
	DefaultOutput string `json:"default_output,omitempty"`
}

// Load reads the config from the XDG path. A missing file yields
// defaults, not an error.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to the XDG config path. Plain JSON is valid
// JSON5, so writing stays simple.
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Get retrieves a config value by its json key.
func (c *Config) Get(key string) (string, error) {
	field, ok := c.fieldByKey(key)
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return fmt.Sprintf("%v", field.Interface()), nil
}

// Set assigns a config value by its json key and saves.
func (c *Config) Set(key, value string) error {
	field, ok := c.fieldByKey(key)
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	field.SetString(value)
	return c.Save()
}

// Unset clears a config value by its json key and saves.
func (c *Config) Unset(key string) error {
	field, ok := c.fieldByKey(key)
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	field.SetString("")
	return c.Save()
}

// Keys returns all settable config keys in declaration order.
func (c *Config) Keys() []string {
	t := reflect.TypeOf(*c)
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, jsonKey(t.Field(i)))
	}
	return keys
}

func (c *Config) fieldByKey(key string) (reflect.Value, bool) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		if jsonKey(t.Field(i)) == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func jsonKey(field reflect.StructField) string {
	key, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	return key
}
