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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pima-analytics/pima/internal/dferrors"
	"github.com/pima-analytics/pima/trainer/training/models"
)

// thresholdClassifier predicts with the first feature as probability.
type thresholdClassifier struct {
	err error
}

func (c *thresholdClassifier) PredictProba(x []float64) (float64, error) {
	return x[0], c.err
}

func (c *thresholdClassifier) Predict(x []float64) (int, error) {
	if x[0] > 0.5 {
		return 1, c.err
	}

	return 0, c.err
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		labels []int
		expect func(t *testing.T, auc float64, err error)
	}{
		{
			name:   "perfect ranking",
			scores: []float64{0.1, 0.2, 0.8, 0.9},
			labels: []int{0, 0, 1, 1},
			expect: func(t *testing.T, auc float64, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 1, auc, 1e-12)
			},
		},
		{
			name:   "inverted ranking",
			scores: []float64{0.9, 0.8, 0.2, 0.1},
			labels: []int{0, 0, 1, 1},
			expect: func(t *testing.T, auc float64, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 0, auc, 1e-12)
			},
		},
		{
			name:   "all scores tied",
			scores: []float64{0.5, 0.5, 0.5, 0.5},
			labels: []int{0, 1, 0, 1},
			expect: func(t *testing.T, auc float64, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 0.5, auc, 1e-12)
			},
		},
		{
			name:   "unsorted mixed ranking",
			scores: []float64{0.35, 0.1, 0.8, 0.4},
			labels: []int{1, 0, 1, 0},
			expect: func(t *testing.T, auc float64, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 0.75, auc, 1e-12)
			},
		},
		{
			name:   "single class",
			scores: []float64{0.1, 0.2},
			labels: []int{1, 1},
			expect: func(t *testing.T, auc float64, err error) {
				assert.True(t, dferrors.CheckError(err, dferrors.CodeUndefinedMetric))
			},
		},
		{
			name:   "length mismatch",
			scores: []float64{0.1},
			labels: []int{1, 0},
			expect: func(t *testing.T, auc float64, err error) {
				assert.True(t, dferrors.CheckError(err, dferrors.CodeInvalidArgument))
			},
		},
		{
			name:   "nan score",
			scores: []float64{math.NaN(), 0.2},
			labels: []int{1, 0},
			expect: func(t *testing.T, auc float64, err error) {
				assert.True(t, dferrors.CheckError(err, dferrors.CodeInvalidArgument))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auc, err := AUC(append([]float64(nil), tc.scores...), tc.labels)
			tc.expect(t, auc, err)
		})
	}
}

func TestAUC_MonotonicTransform(t *testing.T) {
	scores := []float64{0.12, 0.7, 0.33, 0.5, 0.91, 0.05, 0.6, 0.44}
	labels := []int{0, 1, 0, 1, 1, 0, 0, 1}

	auc, err := AUC(append([]float64(nil), scores...), labels)
	require.NoError(t, err)

	transformed := make([]float64, len(scores))
	for i, s := range scores {
		transformed[i] = math.Exp(3*s) - 7
	}

	got, err := AUC(transformed, labels)
	require.NoError(t, err)
	assert.InDelta(t, auc, got, 1e-12)
	assert.InDelta(t, 0.875, auc, 1e-12)
}

func TestAccuracy(t *testing.T) {
	assert := assert.New(t)
	accuracy, err := Accuracy([]int{1, 0, 1, 1}, []int{1, 0, 0, 1})
	assert.NoError(err)
	assert.InDelta(0.75, accuracy, 1e-12)

	accuracy, err = Accuracy([]int{0, 0}, []int{0, 0})
	assert.NoError(err)
	assert.Equal(1.0, accuracy)

	_, err = Accuracy(nil, nil)
	assert.True(dferrors.CheckError(err, dferrors.CodeInvalidArgument))

	_, err = Accuracy([]int{2}, []int{1})
	assert.True(dferrors.CheckError(err, dferrors.CodeInvalidArgument))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		clf    Classifier
		x      [][]float64
		y      []int
		expect func(t *testing.T, report *Report, err error)
	}{
		{
			name: "evaluate",
			clf:  &thresholdClassifier{},
			x:    [][]float64{{0.9}, {0.8}, {0.3}, {0.6}, {0.2}, {0.1}},
			y:    []int{1, 1, 1, 0, 0, 0},
			expect: func(t *testing.T, report *Report, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(ConfusionMatrix{TruePositive: 2, FalsePositive: 1, TrueNegative: 2, FalseNegative: 1}, report.Confusion)
				assert.Equal([]int{1, 1, 0, 1, 0, 0}, report.Predictions)
				assert.Equal([]float64{0.9, 0.8, 0.3, 0.6, 0.2, 0.1}, report.Probabilities)
				assert.InDelta(4.0/6, report.Summary[MetricAccuracy], 1e-12)
				assert.InDelta(8.0/9, report.Summary[MetricAUC], 1e-12)
				assert.InDelta(2.0/3, report.Summary[MetricPrecision], 1e-12)
				assert.InDelta(2.0/3, report.Summary[MetricRecall], 1e-12)
				assert.InDelta(2.0/3, report.Summary[MetricF1], 1e-12)
				assert.NoError(report.Summary.Validate())
			},
		},
		{
			name: "no positive predictions",
			clf:  &thresholdClassifier{},
			x:    [][]float64{{0.4}, {0.3}, {0.2}},
			y:    []int{1, 0, 0},
			expect: func(t *testing.T, report *Report, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(0.0, report.Summary[MetricPrecision])
				assert.Equal(0.0, report.Summary[MetricRecall])
				assert.Equal(0.0, report.Summary[MetricF1])
				assert.InDelta(1, report.Summary[MetricAUC], 1e-12)
			},
		},
		{
			name: "single class test partition",
			clf:  &thresholdClassifier{},
			x:    [][]float64{{0.4}, {0.3}},
			y:    []int{0, 0},
			expect: func(t *testing.T, report *Report, err error) {
				assert.Nil(t, report)
				assert.True(t, dferrors.CheckError(err, dferrors.CodeUndefinedMetric))
			},
		},
		{
			name: "classifier error",
			clf:  &thresholdClassifier{err: errors.New("foo")},
			x:    [][]float64{{0.4}, {0.3}},
			y:    []int{1, 0},
			expect: func(t *testing.T, report *Report, err error) {
				assert.EqualError(t, err, "foo")
			},
		},
		{
			name: "unfitted model",
			clf:  models.NewLogisticRegression([]string{"x"}, models.DefaultC, models.DefaultMaxIterations),
			x:    [][]float64{{0.4}, {0.3}},
			y:    []int{1, 0},
			expect: func(t *testing.T, report *Report, err error) {
				assert.True(t, dferrors.CheckError(err, dferrors.CodeModelNotFitted))
			},
		},
		{
			name: "empty partition",
			clf:  &thresholdClassifier{},
			expect: func(t *testing.T, report *Report, err error) {
				assert.True(t, dferrors.CheckError(err, dferrors.CodeInvalidArgument))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report, err := Evaluate(tc.clf, tc.x, tc.y)
			tc.expect(t, report, err)
		})
	}
}

func TestSummary_Validate(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		code    dferrors.Code
	}{
		{name: "valid", summary: Summary{MetricAccuracy: 0.7, MetricAUC: 0.8, MetricF1: 0}},
		{name: "missing auc", summary: Summary{MetricAccuracy: 0.7}, code: dferrors.CodeUndefinedMetric},
		{name: "nan", summary: Summary{MetricAccuracy: math.NaN(), MetricAUC: 0.8}, code: dferrors.CodeInvalidArgument},
		{name: "above one", summary: Summary{MetricAccuracy: 0.7, MetricAUC: 1.2}, code: dferrors.CodeInvalidArgument},
		{name: "below zero", summary: Summary{MetricAccuracy: -0.1, MetricAUC: 0.8}, code: dferrors.CodeInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.summary.Validate()
			if tc.code == dferrors.CodeUnknown {
				assert.NoError(t, err)
				return
			}
			assert.True(t, dferrors.CheckError(err, tc.code))
		})
	}
}

func TestSummary_Names(t *testing.T) {
	assert.Equal(t, []string{MetricAccuracy, MetricAUC, MetricF1}, Summary{MetricF1: 0, MetricAUC: 1, MetricAccuracy: 1}.Names())
}
