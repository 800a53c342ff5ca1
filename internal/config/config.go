// Package config loads resprune settings from defaults, resprune.yaml,
// RESPRUNE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the configuration file looked up in the project root
	FileName = "resprune.yaml"

	DefaultModule         = "app"
	DefaultIndexDir       = ".index"
	DefaultLargeThreshold = 4 * 1024 * 1024

	envPrefix = "RESPRUNE"
)

// Config holds the settings shared by all entry points
type Config struct {
	Project            string   `mapstructure:"project" yaml:"project,omitempty"`
	Module             string   `mapstructure:"module" yaml:"module"`
	IndexDir           string   `mapstructure:"index_dir" yaml:"index_dir"`
	Extensions         []string `mapstructure:"extensions" yaml:"extensions"`
	DrawableExtensions []string `mapstructure:"drawable_extensions" yaml:"drawable_extensions"`
	LargeThreshold     int64    `mapstructure:"large_threshold" yaml:"large_threshold"`
	Editor             string   `mapstructure:"editor" yaml:"editor,omitempty"`
	Verbose            bool     `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Module:             DefaultModule,
		IndexDir:           DefaultIndexDir,
		Extensions:         []string{".kt", ".java", ".xml"},
		DrawableExtensions: []string{".png"},
		LargeThreshold:     DefaultLargeThreshold,
	}
}

// ProjectPath returns the project from RESPRUNE_PROJECT, falling back to
// the working directory.
func ProjectPath() string {
	if env := os.Getenv(envPrefix + "_PROJECT"); env != "" {
		return env
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// Load resolves the configuration for cmd. cfgFile overrides the
// resprune.yaml lookup in the project root; a missing default file is not an error.
func Load(cmd *cobra.Command, cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		bindFlags(v, cmd)
	}

	project := v.GetString("project")
	if project == "" {
		project = ProjectPath()
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(project)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Project == "" {
		cfg.Project = project
	}
	if abs, err := filepath.Abs(cfg.Project); err == nil {
		cfg.Project = abs
	}
	cfg.IndexDir = cfg.ResolveIndexDir()
	return &cfg, nil
}

// ResolveIndexDir returns the index directory as an absolute path. Relative
// paths are taken from the project root.
func (c *Config) ResolveIndexDir() string {
	dir := c.IndexDir
	if dir == "" {
		dir = DefaultIndexDir
	}
	if strings.HasPrefix(dir, "~") || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Project, dir)
}

// ModulePath returns the analyzed module directory
func (c *Config) ModulePath() string {
	return filepath.Join(c.Project, c.Module)
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("module", d.Module)
	v.SetDefault("index_dir", d.IndexDir)
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("drawable_extensions", d.DrawableExtensions)
	v.SetDefault("large_threshold", d.LargeThreshold)
	v.SetDefault("editor", "")
	v.SetDefault("verbose", false)
}

// bindFlags lets explicitly set flags override every other source
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	flags := cmd.Flags()
	_ = v.BindPFlag("project", flags.Lookup("project"))
	_ = v.BindPFlag("module", flags.Lookup("module"))
	_ = v.BindPFlag("index_dir", flags.Lookup("index-dir"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("large_threshold", flags.Lookup("threshold"))
}

// InitFlags registers the persistent flags Load reads
func InitFlags(cmd *cobra.Command, cfgFile *string) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(cfgFile, "config", "c", "", "path to a configuration file (default <project>/"+FileName+")")
	flags.StringP("project", "p", "", "project root (default $RESPRUNE_PROJECT or the working directory)")
	flags.StringP("module", "m", DefaultModule, "application module to analyze")
	flags.String("index-dir", "", "reference index directory (default <project>/"+DefaultIndexDir+")")
	flags.BoolP("verbose", "V", false, "enable debug logging")
}

// SaveConfig writes cfg to path as YAML
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
