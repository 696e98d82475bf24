package progressw

import (
	"os"
	"os/user"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultWidth        = 50
	DefaultInterval     = 16 * time.Millisecond
	DefaultDisplay      = ":title :percent :bar :time :completed/:total"
	DefaultMultiDisplay = ":bar :text :percent :time :completed/:total"
	DefaultFunnyDisplay = ":title :bar :text :time :percent :completed/:total"

	// DefaultComplete and DefaultIncomplete are a green and a white background space.
	DefaultComplete   = "\x1b[42m \x1b[49m"
	DefaultIncomplete = "\x1b[47m \x1b[49m"
)

var configNames = []string{".progressw", ".progressw.yml", ".progressw.yaml"}

// Config is the long-lived configuration of a bar. Zero values are replaced
// by defaults when a bar is built.
type Config struct {
	Title      string        `yaml:"title"`
	Total      int           `yaml:"total"`
	Width      int           `yaml:"width"`
	Complete   string        `yaml:"complete"`
	Incomplete string        `yaml:"incomplete"`
	PreciseBar []string      `yaml:"precise_bar,omitempty"`
	Clear      bool          `yaml:"clear"`
	Interval   time.Duration `yaml:"interval,omitempty"`
	Display    string        `yaml:"display"`
	PrettyTime bool          `yaml:"pretty_time"`
	// TimeOptions applies when PrettyTime is set, nil means DefaultTimeOptions.
	TimeOptions *TimeOptions `yaml:"time_options,omitempty"`
	// Horizontal only affects the funny bar.
	Horizontal bool `yaml:"horizontal"`
}

func DefaultConfig() Config {
	return Config{}.withDefaults(DefaultDisplay)
}

func (c Config) withDefaults(display string) Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Complete == "" {
		c.Complete = DefaultComplete
	}
	if c.Incomplete == "" {
		c.Incomplete = DefaultIncomplete
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Display == "" {
		c.Display = display
	}
	if c.PreciseBar != nil {
		c.PreciseBar = append([]string(nil), c.PreciseBar...)
	}
	if c.TimeOptions != nil {
		opts := c.TimeOptions.clone()
		c.TimeOptions = &opts
	}
	return c
}

func (c Config) timeOptions() TimeOptions {
	if c.TimeOptions == nil {
		return DefaultTimeOptions()
	}
	return *c.TimeOptions
}

// LoadConfig reads the first config file found in the home directory, then
// in the working directory.
func LoadConfig() (Config, error) {
	b, err := LoadConfigBytes(configNames...)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

// LoadConfigFile reads the config at path.
func LoadConfigFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func LoadConfigBytes(names ...string) ([]byte, error) {
	var dirs []string
	if u, err := user.Current(); err == nil {
		dirs = append(dirs, u.HomeDir)
	}
	dirs = append(dirs, "")

	err := os.ErrNotExist
	for _, dir := range dirs {
		for i := range names {
			b, readErr := os.ReadFile(filepath.Join(dir, names[i]))
			if readErr == nil {
				return b, nil
			}
			err = readErr
		}
	}
	return nil, err
}
