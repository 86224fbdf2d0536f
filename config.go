// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// configName is the config file name without extension.
	configName = ".avltree"
	configType = "yaml"
	envPrefix  = "AVLTREE"
)

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Indent int    `mapstructure:"indent" yaml:"indent"`
}

// DriverConfig controls how scripts are read and applied.
type DriverConfig struct {
	Validate bool `mapstructure:"validate" yaml:"validate"`
	Progress bool `mapstructure:"progress" yaml:"progress"`
	// NaturalOrder runs object steps as 1, 2, ..., 10 instead of 1, 10, 2.
	NaturalOrder bool `mapstructure:"natural_order" yaml:"natural_order"`
	// InsertOnly skips every step that is not an Insert.
	InsertOnly bool `mapstructure:"insert_only" yaml:"insert_only"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type ExploreConfig struct {
	RenderTTL   time.Duration `mapstructure:"render_ttl" yaml:"render_ttl"`
	BloomBits   uint          `mapstructure:"bloom_bits" yaml:"bloom_bits"`
	BloomHashes uint          `mapstructure:"bloom_hashes" yaml:"bloom_hashes"`
}

type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Driver  DriverConfig  `mapstructure:"driver" yaml:"driver"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Explore ExploreConfig `mapstructure:"explore" yaml:"explore"`
}

var defaultConfig = Config{
	Output: OutputConfig{
		Format: FormatJSON,
		Indent: 2,
	},
	Driver: DriverConfig{
		Validate:     false,
		Progress:     false,
		NaturalOrder: false,
		InsertOnly:   false,
	},
	Log: LogConfig{
		Level: "info",
	},
	Explore: ExploreConfig{
		RenderTTL:   30 * time.Minute,
		BloomBits:   1 << 16,
		BloomHashes: 4,
	},
}

// LoadConfig loads configuration from file, env vars and defaults.
// If configPath is non-empty it is used as the explicit config file,
// otherwise .avltree.yaml is searched in the working directory and
// $HOME. A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("output.format", defaultConfig.Output.Format)
	v.SetDefault("output.indent", defaultConfig.Output.Indent)
	v.SetDefault("driver.validate", defaultConfig.Driver.Validate)
	v.SetDefault("driver.progress", defaultConfig.Driver.Progress)
	v.SetDefault("driver.natural_order", defaultConfig.Driver.NaturalOrder)
	v.SetDefault("driver.insert_only", defaultConfig.Driver.InsertOnly)
	v.SetDefault("log.level", defaultConfig.Log.Level)
	v.SetDefault("explore.render_ttl", defaultConfig.Explore.RenderTTL)
	v.SetDefault("explore.bloom_bits", defaultConfig.Explore.BloomBits)
	v.SetDefault("explore.bloom_hashes", defaultConfig.Explore.BloomHashes)
}

// Validate rejects settings that cannot be acted upon.
func (c *Config) Validate() error {
	if !isKnownFormat(c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %s", c.Output.Format, strings.Join(formats, ", "))
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Explore.BloomBits == 0 || c.Explore.BloomHashes == 0 {
		return errors.New("explore.bloom_bits and explore.bloom_hashes must be positive")
	}
	if c.Explore.RenderTTL <= 0 {
		return fmt.Errorf("explore.render_ttl must be positive, got %s", c.Explore.RenderTTL)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configName+"."+configType), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating the
// default file in $HOME first when configPath is empty and no file
// exists yet.
func displaySettings(w io.Writer, configPath string) error {
	created := false
	if configPath == "" {
		path, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		configPath = path
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			if err := writeDefaultConfigFile(configPath); err != nil {
				return err
			}
			created = true
		}
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "avltree configuration\n")
	fmt.Fprintf(w, "═════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nEvery key can be overridden from the environment, e.g. %s_OUTPUT_FORMAT=yaml\n", envPrefix)
	return nil
}
