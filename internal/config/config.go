package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/maphash"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minerun/internal/mines"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MINEFIELD_"

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

type TerminalConfig struct {
	// KeyHold is how long a key press keeps a direction held. Terminals
	// report presses and repeats but never releases.
	KeyHold Duration `json:"key_hold"`
}

type Config struct {
	Mode      string         `json:"mode"`
	LogFile   string         `json:"log_file"`
	LogLevel  string         `json:"log_level"`
	Seed      uint64         `json:"seed"`
	Footprint string         `json:"footprint"`
	Window    WindowConfig   `json:"window"`
	Terminal  TerminalConfig `json:"terminal"`
}

func Default() Config {
	return Config{
		Mode:      "production",
		Footprint: mines.FootprintLattice.String(),
		Window:    WindowConfig{Width: 1024, Height: 768},
		Terminal:  TerminalConfig{KeyHold: Duration{550 * time.Millisecond}},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":              c.Mode,
		"log_file":          c.LogFile,
		"log_level":         c.LogLevel,
		"seed":              c.Seed,
		"footprint":         c.Footprint,
		"window_width":      c.Window.Width,
		"window_height":     c.Window.Height,
		"window_fullscreen": c.Window.Fullscreen,
		"terminal_key_hold": c.Terminal.KeyHold.String(),
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Level is the configured log level. An empty level means debug in
// development and info otherwise.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		if c.Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.LogLevel)
}

func (c Config) FootprintMode() (mines.FootprintMode, error) {
	return mines.ParseFootprintMode(c.Footprint)
}

// Rand returns a generator seeded with Seed, or randomly when Seed is 0.
func (c Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := c.FootprintMode(); err != nil {
		return fmt.Errorf("footprint: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Terminal.KeyHold.Duration <= 0 {
		return fmt.Errorf("terminal.key_hold: must be positive")
	}
	return nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// Load builds the configuration from defaults, the JSON file at path
// (skipped when path is empty), the given dotenv files (".env" when
// none are given, missing files ignored) and finally the process
// environment. Later sources win.
func Load(path string, envFiles ...string) (Config, error) {
	config := Default()

	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return config, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// godotenv never overrides variables that are already set.
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := applyEnv(&config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

func applyEnv(c *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("MODE", &c.Mode)
	str("LOG_FILE", &c.LogFile)
	str("LOG_LEVEL", &c.LogLevel)
	str("FOOTPRINT", &c.Footprint)

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}

	for key, dst := range map[string]*int{
		"WINDOW_WIDTH":  &c.Window.Width,
		"WINDOW_HEIGHT": &c.Window.Height,
	} {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "FULLSCREEN"); ok {
		fullscreen, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sFULLSCREEN: %w", EnvPrefix, err)
		}
		c.Window.Fullscreen = fullscreen
	}

	if v, ok := os.LookupEnv(EnvPrefix + "KEY_HOLD"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sKEY_HOLD: %w", EnvPrefix, err)
		}
		c.Terminal.KeyHold.Duration = d
	}

	return nil
}
