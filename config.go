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
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

// configEnv overrides the config file location.
const configEnv = "AVLTREE_CONFIG"

type ReportConfig struct {
	ShowLevels    bool `yaml:"show_levels"`
	ShowRotations bool `yaml:"show_rotations"`
	Color         bool `yaml:"color"`
}

type StressConfig struct {
	Operations int   `yaml:"operations"`
	ValueRange int   `yaml:"value_range"`
	Readers    int   `yaml:"readers"`
	Progress   bool  `yaml:"progress"`
	Seed       int64 `yaml:"seed"` // 0 picks a seed from the clock
}

type Config struct {
	Report ReportConfig `yaml:"report"`
	Stress StressConfig `yaml:"stress"`
}

var defaultConfig = Config{
	Report: ReportConfig{
		ShowLevels:    true,
		ShowRotations: true,
		Color:         true,
	},
	Stress: StressConfig{
		Operations: 10000,
		ValueRange: 1000,
		Readers:    2,
		Progress:   true,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// LoadConfig reads the user's config file. A missing or unreadable file
// yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. Keys absent from the file
// keep their default values. A file that does not parse is reported and
// the defaults are used instead.
func LoadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v. Using default settings.", configPath, err)
		}
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", configPath, err)
		return DefaultConfig(), nil
	}

	return config, nil
}

func getConfigPath() (string, error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, styles *Styles) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintln(w, styles.Title.Render("avltree configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	fmt.Fprintln(w, styles.Label.Render("report:"))
	fmt.Fprintf(w, "  show_levels: %t\n", config.Report.ShowLevels)
	fmt.Fprintf(w, "  show_rotations: %t\n", config.Report.ShowRotations)
	fmt.Fprintf(w, "  color: %t\n", config.Report.Color)

	fmt.Fprintln(w, styles.Label.Render("stress:"))
	fmt.Fprintf(w, "  operations: %d\n", config.Stress.Operations)
	fmt.Fprintf(w, "  value_range: %d\n", config.Stress.ValueRange)
	fmt.Fprintf(w, "  readers: %d\n", config.Stress.Readers)
	fmt.Fprintf(w, "  progress: %t\n", config.Stress.Progress)
	if config.Stress.Seed == 0 {
		fmt.Fprintln(w, "  seed: 0 (random)")
	} else {
		fmt.Fprintf(w, "  seed: %d\n", config.Stress.Seed)
	}

	return nil
}
