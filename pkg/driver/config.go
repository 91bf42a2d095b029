package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames lists the project file names searched for, in order.
var ConfigFileNames = []string{"orlang.yml", "orlang.yaml", "orlang.toml"}

// ErrConfigNotFound is returned by FindConfig when no project file exists.
var ErrConfigNotFound = errors.New("config: no orlang project file found")

// Config is the parsed project configuration.
type Config struct {
	Path     string         `yaml:"-" toml:"-"`
	REPL     REPLConfig     `yaml:"repl" toml:"repl"`
	Log      LogConfig      `yaml:"log" toml:"log"`
	Fixtures FixturesConfig `yaml:"fixtures" toml:"fixtures"`
}

type REPLConfig struct {
	Prompt      string `yaml:"prompt" toml:"prompt"`
	HistoryFile string `yaml:"history_file" toml:"history_file"`
	Color       bool   `yaml:"color" toml:"color"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type FixturesConfig struct {
	Dir      string            `yaml:"dir" toml:"dir"`
	Git      FixturesGitConfig `yaml:"git" toml:"git"`
	CacheDir string            `yaml:"cache_dir" toml:"cache_dir"`
}

type FixturesGitConfig struct {
	URL string `yaml:"url" toml:"url"`
	Ref string `yaml:"ref" toml:"ref"`
}

// DefaultConfig returns the configuration used when no project file exists.
func DefaultConfig() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:      "> ",
			HistoryFile: "~/.orlang_history",
			Color:       true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Fixtures: FixturesConfig{
			Dir: "fixtures",
		},
	}
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// FindConfig walks upward from start looking for a project file.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("config: stat %s: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no orlang project file found from %s upwards: %w", origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// LoadConfig parses a YAML or TOML project file, chosen by extension, over
// the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".toml":
		if err := decodeTOML(absPath, cfg); err != nil {
			return nil, err
		}
	case ".yml", ".yaml":
		if err := decodeYAML(absPath, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("config: unsupported file type %s", absPath)
	}
	cfg.Path = absPath
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfig loads explicitPath when set, otherwise the nearest project
// file above start, falling back to the defaults when none exists.
func ResolveConfig(explicitPath, start string) (*Config, error) {
	if explicitPath != "" {
		return LoadConfig(explicitPath)
	}
	path, err := FindConfig(start)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}

func decodeYAML(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func decodeTOML(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("config: parse %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks field values, collecting every issue found.
func (c *Config) Validate() error {
	var errs ValidationError
	if c.REPL.Prompt == "" {
		errs.Issues = append(errs.Issues, "repl.prompt must not be empty")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.format %q must be text or json", c.Log.Format))
	}
	if c.Fixtures.Dir == "" {
		errs.Issues = append(errs.Issues, "fixtures.dir must not be empty")
	}
	if c.Fixtures.Git.Ref != "" && c.Fixtures.Git.URL == "" {
		errs.Issues = append(errs.Issues, "fixtures.git.ref requires fixtures.git.url")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// HistoryPath returns the REPL history file with a leading ~ expanded.
func (c *Config) HistoryPath() string {
	return expandHome(c.REPL.HistoryFile)
}

// FixturesDir resolves the fixture directory relative to the project file.
func (c *Config) FixturesDir() string {
	dir := expandHome(c.Fixtures.Dir)
	if filepath.IsAbs(dir) || c.Path == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(c.Path), dir)
}

// FixturesCacheDir returns the configured git cache directory, defaulting to
// a directory under the user cache.
func (c *Config) FixturesCacheDir() string {
	if c.Fixtures.CacheDir != "" {
		return expandHome(c.Fixtures.CacheDir)
	}
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "orlang", "fixtures")
	}
	return filepath.Join(os.TempDir(), "orlang-fixtures")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
