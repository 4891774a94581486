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
	"time"
)

const (
	// DefaultServerAddr is default listen address of the dashboard.
	DefaultServerAddr = ":8080"

	// DefaultServerShutdownTimeout is default timeout of the graceful shutdown.
	DefaultServerShutdownTimeout = 10 * time.Second
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultSampleSeed is default seed of the synthetic samples.
	DefaultSampleSeed = 42

	// DefaultSampleCount is default number of samples returned.
	DefaultSampleCount = 500

	// MaxSampleCount is the upper bound of samples of one request.
	MaxSampleCount = 5000
)
