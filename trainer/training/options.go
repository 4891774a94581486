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

package training

// Options holds the hyper-parameters of a training run.
type Options struct {
	// Features are the ordered feature columns.
	Features []string

	// TestFraction is the share of records in the test partition.
	TestFraction float64

	// Seed seeds the split shuffle.
	Seed int64

	// MaxIterations bounds the optimizer.
	MaxIterations int

	// Regularization is the inverse L2 penalty strength C.
	Regularization float64
}

// Option is a functional option for configuring the training.
type Option func(o *Options)

// WithFeatures sets the ordered feature columns.
func WithFeatures(features []string) Option {
	return func(o *Options) {
		o.Features = append([]string(nil), features...)
	}
}

// WithTestFraction sets the share of records in the test partition.
func WithTestFraction(fraction float64) Option {
	return func(o *Options) {
		o.TestFraction = fraction
	}
}

// WithSeed sets the seed of the split shuffle.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxIterations sets the iteration budget of the optimizer.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithRegularization sets the inverse L2 penalty strength.
func WithRegularization(c float64) Option {
	return func(o *Options) {
		o.Regularization = c
	}
}

func defaultOptions() *Options {
	return &Options{
		Features:       append([]string(nil), DefaultFeatures...),
		TestFraction:   DefaultTestFraction,
		Seed:           DefaultSeed,
		MaxIterations:  DefaultMaxIterations,
		Regularization: DefaultRegularization,
	}
}
