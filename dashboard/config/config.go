/*
 *     Copyright 2024 The Pima Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/pima-analytics/pima/cmd/dependency/base"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Sample configuration.
	Sample SampleConfig `yaml:"sample" mapstructure:"sample"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Server listen address.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Server work directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Server storage data directory, the trained artifacts are read from here.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`

	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
}

type SampleConfig struct {
	// Seed of the synthetic samples.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

type MetricsConfig struct {
	// Enable prometheus metrics of the http routes.
	Enable bool `yaml:"enable" mapstructure:"enable"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultServerAddr,
			LogMaxSize:      DefaultLogRotateMaxSize,
			LogMaxAge:       DefaultLogRotateMaxAge,
			LogMaxBackups:   DefaultLogRotateMaxBackups,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
		Sample: SampleConfig{
			Seed: DefaultSampleSeed,
		},
		Metrics: MetricsConfig{
			Enable: true,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.Addr == "" {
		return errors.New("server requires parameter addr")
	}

	if cfg.Server.LogMaxSize <= 0 {
		return errors.New("server requires parameter logMaxSize")
	}

	if cfg.Server.LogMaxAge <= 0 {
		return errors.New("server requires parameter logMaxAge")
	}

	if cfg.Server.LogMaxBackups <= 0 {
		return errors.New("server requires parameter logMaxBackups")
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server requires parameter shutdownTimeout, got %s", cfg.Server.ShutdownTimeout)
	}

	return nil
}
