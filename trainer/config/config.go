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
	"path/filepath"

	"github.com/pima-analytics/pima/cmd/dependency/base"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Dataset configuration.
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
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

	// Server storage data directory, trained artifacts are written here.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`
}

type DatasetConfig struct {
	// Path of the ';' separated dataset, defaults to diabetes.csv in the data directory.
	Path string `yaml:"path" mapstructure:"path"`

	// ZeroAsMissingColumns are columns whose zeros are imputed by median.
	ZeroAsMissingColumns []string `yaml:"zeroAsMissingColumns" mapstructure:"zeroAsMissingColumns"`
}

type TrainingConfig struct {
	// Features are the ordered model inputs.
	Features []string `yaml:"features" mapstructure:"features"`

	// TestFraction is the share of records held out for evaluation.
	TestFraction float64 `yaml:"testFraction" mapstructure:"testFraction"`

	// Seed of the stratified split.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// MaxIterations bounds the optimizer.
	MaxIterations int `yaml:"maxIterations" mapstructure:"maxIterations"`

	// Regularization is the inverse L2 penalty strength.
	Regularization float64 `yaml:"regularization" mapstructure:"regularization"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// PushGatewayAddr is the pushgateway the metrics of a run are pushed to, empty disables pushing.
	PushGatewayAddr string `yaml:"pushGatewayAddr" mapstructure:"pushGatewayAddr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Dataset: DatasetConfig{
			ZeroAsMissingColumns: append([]string(nil), DefaultZeroAsMissingColumns...),
		},
		Training: TrainingConfig{
			Features:       append([]string(nil), DefaultTrainingFeatures...),
			TestFraction:   DefaultTrainingTestFraction,
			Seed:           DefaultTrainingSeed,
			MaxIterations:  DefaultTrainingMaxIterations,
			Regularization: DefaultTrainingRegularization,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.LogMaxSize <= 0 {
		return errors.New("server requires parameter logMaxSize")
	}

	if cfg.Server.LogMaxAge <= 0 {
		return errors.New("server requires parameter logMaxAge")
	}

	if cfg.Server.LogMaxBackups <= 0 {
		return errors.New("server requires parameter logMaxBackups")
	}

	if len(cfg.Training.Features) == 0 {
		return errors.New("training requires parameter features")
	}

	if cfg.Training.TestFraction <= 0 || cfg.Training.TestFraction >= 1 {
		return fmt.Errorf("training requires parameter testFraction in (0, 1), got %v", cfg.Training.TestFraction)
	}

	if cfg.Training.MaxIterations <= 0 {
		return errors.New("training requires parameter maxIterations")
	}

	if cfg.Training.Regularization <= 0 {
		return errors.New("training requires parameter regularization")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

// Convert fills the dataset path from the data directory.
func (cfg *Config) Convert(dataDir string) error {
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = filepath.Join(dataDir, DefaultDatasetFileName)
	}

	path, err := filepath.Abs(cfg.Dataset.Path)
	if err != nil {
		return err
	}
	cfg.Dataset.Path = path

	return nil
}
