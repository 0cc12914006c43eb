// Package config loads zfake settings from an env-style file and the
// process environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// setting keys, shared by the file and the environment
const (
	KeyMasked         = "ZFAKE_MASK"
	KeyHistorySize    = "ZFAKE_HISTORY_SIZE"
	KeySampleInterval = "ZFAKE_SAMPLE_INTERVAL"
	KeyUUIDUpper      = "ZFAKE_UUID_UPPER"
	KeyUUIDCompact    = "ZFAKE_UUID_COMPACT"
	KeySampleX        = "ZFAKE_SAMPLE_X"
	KeySampleY        = "ZFAKE_SAMPLE_Y"
)

// Keys lists every recognized key in display order.
var Keys = []string{
	KeyMasked, KeyHistorySize, KeySampleInterval, KeySampleX, KeySampleY, KeyUUIDUpper, KeyUUIDCompact,
}

// ErrInvalidConfig is returned when a setting has an unusable value.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds user preferences.
type Config struct {
	Masked         bool          `json:"masked"`
	HistorySize    int           `json:"history_size"`
	SampleInterval time.Duration `json:"sample_interval"`
	// SampleX and SampleY locate the screen pixel the color view samples.
	SampleX     int  `json:"sample_x"`
	SampleY     int  `json:"sample_y"`
	UUIDUpper   bool `json:"uuid_upper"`
	UUIDCompact bool `json:"uuid_compact"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Masked:         true,
		HistorySize:    10,
		SampleInterval: 50 * time.Millisecond,
	}
}

// DataDir returns the default data directory for zfake.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zfake"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zfake"
	}
	return home + "/.local/share/zfake"
}

// Path returns the config file location inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.env")
}

// Load reads path on top of the defaults, then applies ZFAKE_* variables
// from the environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	for _, k := range Keys {
		v, ok := os.LookupEnv(k)
		if !ok {
			v, ok = file[k]
		}
		if !ok {
			continue
		}
		if err := cfg.Set(k, v); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("save config: create dir: %w", err)
	}
	if err := godotenv.Write(cfg.Env(), path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

// Set parses value into the field named by key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch strings.ToUpper(key) {
	case KeyMasked:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(key, value)
		}
		c.Masked = b

	case KeyHistorySize:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return invalid(key, value)
		}
		c.HistorySize = n

	case KeySampleInterval:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return invalid(key, value)
		}
		c.SampleInterval = d

	case KeySampleX, KeySampleY:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return invalid(key, value)
		}
		if strings.ToUpper(key) == KeySampleX {
			c.SampleX = n
		} else {
			c.SampleY = n
		}

	case KeyUUIDUpper:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(key, value)
		}
		c.UUIDUpper = b

	case KeyUUIDCompact:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(key, value)
		}
		c.UUIDCompact = b

	default:
		return fmt.Errorf("unknown key %q: %w", key, ErrInvalidConfig)
	}

	return nil
}

// Env renders cfg as key/value pairs.
func (c Config) Env() map[string]string {
	return map[string]string{
		KeyMasked:         strconv.FormatBool(c.Masked),
		KeyHistorySize:    strconv.Itoa(c.HistorySize),
		KeySampleInterval: c.SampleInterval.String(),
		KeySampleX:        strconv.Itoa(c.SampleX),
		KeySampleY:        strconv.Itoa(c.SampleY),
		KeyUUIDUpper:      strconv.FormatBool(c.UUIDUpper),
		KeyUUIDCompact:    strconv.FormatBool(c.UUIDCompact),
	}
}

// Lines renders cfg as sorted KEY=value lines.
func (c Config) Lines() []string {
	env := c.Env()
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

func invalid(key, value string) error {
	return fmt.Errorf("%s=%q: %w", key, value, ErrInvalidConfig)
}
