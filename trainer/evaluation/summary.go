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

package evaluation

import (
	"math"
	"sort"

	"github.com/pima-analytics/pima/internal/dferrors"
)

const (
	// MetricAccuracy is the share of correct predictions.
	MetricAccuracy = "accuracy"

	// MetricAUC is the area under the ROC curve.
	MetricAUC = "auc"

	// MetricPrecision is the precision of the positive class.
	MetricPrecision = "precision"

	// MetricRecall is the recall of the positive class.
	MetricRecall = "recall"

	// MetricF1 is the harmonic mean of precision and recall.
	MetricF1 = "f1"
)

// RequiredMetrics must be present in every summary.
var RequiredMetrics = []string{MetricAccuracy, MetricAUC}

// Summary maps metric names to scalars in [0, 1].
type Summary map[string]float64

// Validate reports whether the required metrics are present and all
// values lie in [0, 1].
func (s Summary) Validate() error {
	for _, name := range RequiredMetrics {
		if _, ok := s[name]; !ok {
			return dferrors.Newf(dferrors.CodeUndefinedMetric, "metric %s is absent", name)
		}
	}

	for name, v := range s {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return dferrors.Newf(dferrors.CodeInvalidArgument, "metric %s is %v, want a value in [0, 1]", name, v)
		}
	}

	return nil
}

// Names returns the metric names in lexical order.
func (s Summary) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
