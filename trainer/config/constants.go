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
	"github.com/pima-analytics/pima/trainer/dataset"
	"github.com/pima-analytics/pima/trainer/training"
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"

	// DefaultDatasetFileName is default file name of the dataset in the data directory.
	DefaultDatasetFileName = "diabetes.csv"
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

var (
	// DefaultZeroAsMissingColumns is default columns whose zeros are imputed.
	DefaultZeroAsMissingColumns = dataset.DefaultZeroAsMissingColumns

	// DefaultTrainingFeatures is default ordered features of the model.
	DefaultTrainingFeatures = training.DefaultFeatures
)

const (
	// DefaultTrainingTestFraction is default share of the test partition.
	DefaultTrainingTestFraction = training.DefaultTestFraction

	// DefaultTrainingSeed is default seed of the split.
	DefaultTrainingSeed = training.DefaultSeed

	// DefaultTrainingMaxIterations is default iteration budget of the optimizer.
	DefaultTrainingMaxIterations = training.DefaultMaxIterations

	// DefaultTrainingRegularization is default inverse L2 penalty strength.
	DefaultTrainingRegularization = training.DefaultRegularization
)
