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

import (
	"github.com/pima-analytics/pima/pkg/types"
	"github.com/pima-analytics/pima/trainer/training/models"
)

const (
	// DefaultTestFraction is the share of records held out for evaluation.
	DefaultTestFraction = 0.3

	// DefaultSeed is the seed of the split shuffle.
	DefaultSeed = 42

	// DefaultMaxIterations is the iteration budget of the optimizer.
	DefaultMaxIterations = models.DefaultMaxIterations

	// DefaultRegularization is the inverse L2 penalty strength.
	DefaultRegularization = models.DefaultC
)

// DefaultFeatures are the ordered model inputs.
var DefaultFeatures = []string{
	types.ColumnGlucose,
	types.ColumnBMI,
	types.ColumnAge,
	types.ColumnPregnancies,
	types.ColumnDiabetesPedigreeFunction,
}
