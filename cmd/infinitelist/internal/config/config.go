// Package config loads the infinitelist CLI configuration.
//
// Values are layered, later layers winning: infinitelist.yaml, the .env
// file, INFINITELIST_* environment variables, then command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/infinitelist/pkg/infinite"
)

const (
	// FileName is the optional YAML configuration file.
	FileName = "infinitelist.yaml"
	// EnvFileName is the optional dotenv file.
	EnvFileName = ".env"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "INFINITELIST_"

	// DefaultLazyStackSince is the first toolkit version with lazy stacks.
	DefaultLazyStackSince = "v14.0.0"
	// DefaultDatabase is the SQLite path used when source.path is unset.
	DefaultDatabase = "infinitelist.db"
	// DefaultTotal is the size of the generated memory source.
	DefaultTotal = 200
)

// Source kinds.
const (
	SourceMemory = "memory"
	SourceSQLite = "sqlite"
)

// Config represents the optional infinitelist.yaml configuration.
type Config struct {
	List   ListConfig   `yaml:"list"`
	Host   HostConfig   `yaml:"host"`
	Source SourceConfig `yaml:"source"`
	Log    LogConfig    `yaml:"log"`
}

// ListConfig contains list behaviour settings.
type ListConfig struct {
	Refresh  *bool   `yaml:"refresh,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty"`
	PageSize int     `yaml:"page_size,omitempty"`
}

// HostConfig describes the host toolkit.
type HostConfig struct {
	ToolkitVersion string `yaml:"toolkit_version,omitempty"`
	LazyStack      *bool  `yaml:"lazy_stack,omitempty"`
	LazyStackSince string `yaml:"lazy_stack_since,omitempty"`
}

// SourceConfig selects the data source.
type SourceConfig struct {
	Kind    string `yaml:"kind,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Total   int    `yaml:"total,omitempty"`
	Latency string `yaml:"latency,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// Overrides carries command-line values. Zero values leave the
// configuration untouched.
type Overrides struct {
	ConfigFile     string
	Refresh        *bool
	LazyStack      *bool
	ToolkitVersion string
	Spacing        float64
	PageSize       int
	SourceKind     string
	SourcePath     string
	Total          int
	Latency        time.Duration
	LogLevel       string
	LogFormat      string
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root string

	Refresh  bool
	Spacing  float64
	PageSize int

	ToolkitVersion string
	LazyStackSince string
	// LazyStackExplicit is true when lazy_stack was set rather than derived.
	LazyStackExplicit bool
	Capabilities      infinite.Capabilities

	SourceKind string
	SourcePath string
	Total      int
	Latency    time.Duration

	LogLevel  string
	LogFormat string
	LogOutput string
}

// Mode is the render mode the resolved settings select.
func (r *Resolved) Mode() infinite.Mode {
	return infinite.SelectMode(r.Refresh, r.Capabilities)
}

// LoadOptional reads path if present. A missing file yields an empty
// Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve loads the configuration layers found in dir, applies ov and
// resolves defaults.
func Resolve(dir string, ov Overrides) (*Resolved, error) {
	path := ov.ConfigFile
	if path == "" {
		path = filepath.Join(dir, FileName)
	}
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	env, err := loadEnv(filepath.Join(dir, EnvFileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}
	cfg.applyOverrides(ov)

	return cfg.resolve(dir, ov.Latency)
}

// loadEnv returns a lookup over the process environment backed by the
// dotenv file at path. The process environment wins, as godotenv.Load
// would leave it.
func loadEnv(path string) (func(string) (string, bool), error) {
	file, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", EnvFileName, err)
		}
		file = map[string]string{}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("REFRESH"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("REFRESH", v, err)
		}
		c.List.Refresh = &b
	}
	if v, ok := get("SPACING"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("SPACING", v, err)
		}
		c.List.Spacing = f
	}
	if v, ok := get("PAGE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("PAGE_SIZE", v, err)
		}
		c.List.PageSize = n
	}
	if v, ok := get("TOOLKIT_VERSION"); ok {
		c.Host.ToolkitVersion = v
	}
	if v, ok := get("LAZY_STACK"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError("LAZY_STACK", v, err)
		}
		c.Host.LazyStack = &b
	}
	if v, ok := get("SOURCE"); ok {
		c.Source.Kind = v
	}
	if v, ok := get("DB"); ok {
		c.Source.Path = v
	}
	if v, ok := get("TOTAL"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("TOTAL", v, err)
		}
		c.Source.Total = n
	}
	if v, ok := get("LATENCY"); ok {
		c.Source.Latency = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}

func envError(name, value string, err error) error {
	return fmt.Errorf("invalid %s%s %q: %w", EnvPrefix, name, value, err)
}

func (c *Config) applyOverrides(ov Overrides) {
	if ov.Refresh != nil {
		c.List.Refresh = ov.Refresh
	}
	if ov.LazyStack != nil {
		c.Host.LazyStack = ov.LazyStack
	}
	if ov.ToolkitVersion != "" {
		c.Host.ToolkitVersion = ov.ToolkitVersion
	}
	if ov.Spacing != 0 {
		c.List.Spacing = ov.Spacing
	}
	if ov.PageSize != 0 {
		c.List.PageSize = ov.PageSize
	}
	if ov.SourceKind != "" {
		c.Source.Kind = ov.SourceKind
	}
	if ov.SourcePath != "" {
		c.Source.Path = ov.SourcePath
	}
	if ov.Total != 0 {
		c.Source.Total = ov.Total
	}
	if ov.LogLevel != "" {
		c.Log.Level = ov.LogLevel
	}
	if ov.LogFormat != "" {
		c.Log.Format = ov.LogFormat
	}
}

func (c *Config) resolve(dir string, latency time.Duration) (*Resolved, error) {
	r := &Resolved{
		Root:      dir,
		Refresh:   true,
		Spacing:   c.List.Spacing,
		PageSize:  c.List.PageSize,
		LogLevel:  strings.ToLower(strings.TrimSpace(c.Log.Level)),
		LogFormat: strings.ToLower(strings.TrimSpace(c.Log.Format)),
		LogOutput: strings.ToLower(strings.TrimSpace(c.Log.Output)),
	}
	if c.List.Refresh != nil {
		r.Refresh = *c.List.Refresh
	}
	if r.Spacing < 0 {
		return nil, fmt.Errorf("list.spacing must not be negative (got %v)", r.Spacing)
	}
	if r.PageSize < 0 {
		return nil, fmt.Errorf("list.page_size must not be negative (got %d)", r.PageSize)
	}

	if err := r.resolveCapabilities(c.Host); err != nil {
		return nil, err
	}
	if err := r.resolveSource(dir, c.Source, latency); err != nil {
		return nil, err
	}

	if r.LogLevel == "" {
		r.LogLevel = "info"
	}
	switch r.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if r.LogFormat == "" {
		r.LogFormat = "text"
	}
	switch r.LogFormat {
	case "text", "console", "json":
	default:
		return nil, fmt.Errorf("unknown log.format %q (use text or json)", c.Log.Format)
	}
	if r.LogOutput == "" {
		r.LogOutput = "stderr"
	}
	return r, nil
}

// resolveCapabilities applies lazy_stack when set and otherwise compares
// toolkit_version against lazy_stack_since. An unknown toolkit version is
// taken to be current.
func (r *Resolved) resolveCapabilities(h HostConfig) error {
	since, err := canonicalVersion("host.lazy_stack_since", h.LazyStackSince)
	if err != nil {
		return err
	}
	if since == "" {
		since = DefaultLazyStackSince
	}
	version, err := canonicalVersion("host.toolkit_version", h.ToolkitVersion)
	if err != nil {
		return err
	}
	r.ToolkitVersion = version
	r.LazyStackSince = since

	switch {
	case h.LazyStack != nil:
		r.LazyStackExplicit = true
		r.Capabilities.LazyStack = *h.LazyStack
	case version == "":
		r.Capabilities.LazyStack = true
	default:
		r.Capabilities.LazyStack = semver.Compare(version, since) >= 0
	}
	return nil
}

// canonicalVersion accepts "14", "14.2" or "v14.2.1" and returns the
// canonical semver form.
func canonicalVersion(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%s %q is not a valid version", field, v)
	}
	return semver.Canonical(v), nil
}

func (r *Resolved) resolveSource(dir string, s SourceConfig, latency time.Duration) error {
	r.SourceKind = strings.ToLower(strings.TrimSpace(s.Kind))
	if r.SourceKind == "" {
		r.SourceKind = SourceMemory
	}
	switch r.SourceKind {
	case SourceMemory:
	case SourceSQLite:
		r.SourcePath = strings.TrimSpace(s.Path)
		if r.SourcePath == "" {
			r.SourcePath = DefaultDatabase
		}
		if !filepath.IsAbs(r.SourcePath) {
			r.SourcePath = filepath.Join(dir, r.SourcePath)
		}
	default:
		return fmt.Errorf("unknown source.kind %q (use memory or sqlite)", s.Kind)
	}

	r.Total = s.Total
	if r.Total == 0 {
		r.Total = DefaultTotal
	}
	if r.Total < 0 {
		return fmt.Errorf("source.total must not be negative (got %d)", s.Total)
	}

	r.Latency = latency
	if r.Latency == 0 && strings.TrimSpace(s.Latency) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(s.Latency))
		if err != nil {
			return fmt.Errorf("invalid source.latency %q: %w", s.Latency, err)
		}
		r.Latency = d
	}
	if r.Latency < 0 {
		return fmt.Errorf("source.latency must not be negative (got %s)", r.Latency)
	}
	return nil
}
