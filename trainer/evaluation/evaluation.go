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

	"github.com/sjwhitworth/golearn/base"
	golearn "github.com/sjwhitworth/golearn/evaluation"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/pima-analytics/pima/internal/dferrors"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/types"
)

// Classifier is a fitted binary classifier.
type Classifier interface {
	// PredictProba returns the probability of class 1.
	PredictProba([]float64) (float64, error)

	// Predict returns the predicted class.
	Predict([]float64) (int, error)
}

// ConfusionMatrix counts predictions against true labels, class 1 is
// positive.
type ConfusionMatrix struct {
	TruePositive  int `json:"true_positive"`
	FalsePositive int `json:"false_positive"`
	TrueNegative  int `json:"true_negative"`
	FalseNegative int `json:"false_negative"`
}

// Report is the evaluation of a classifier on a test partition.
type Report struct {
	Summary       Summary
	Confusion     ConfusionMatrix
	Labels        []int
	Predictions   []int
	Probabilities []float64
}

// Evaluate scores clf on the test partition x, y.
func Evaluate(clf Classifier, x [][]float64, y []int) (*Report, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, dferrors.Newf(dferrors.CodeInvalidArgument, "got %d rows and %d labels", len(x), len(y))
	}

	report := &Report{
		Labels:        append([]int(nil), y...),
		Predictions:   make([]int, len(x)),
		Probabilities: make([]float64, len(x)),
	}
	for i, row := range x {
		p, err := clf.PredictProba(row)
		if err != nil {
			return nil, err
		}
		report.Probabilities[i] = p

		label, err := clf.Predict(row)
		if err != nil {
			return nil, err
		}
		report.Predictions[i] = label
	}

	auc, err := AUC(report.Probabilities, y)
	if err != nil {
		return nil, err
	}

	matrix, err := confusionMatrix(report.Predictions, y)
	if err != nil {
		return nil, err
	}

	report.Summary = Summary{
		MetricAccuracy:  golearn.GetAccuracy(matrix.raw),
		MetricAUC:       auc,
		MetricPrecision: finite(golearn.GetPrecision(matrix.positive, matrix.raw)),
		MetricRecall:    finite(golearn.GetRecall(matrix.positive, matrix.raw)),
		MetricF1:        finite(golearn.GetF1Score(matrix.positive, matrix.raw)),
	}
	report.Confusion = matrix.counts()

	if err := report.Summary.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("evaluated %d test records, accuracy %.4f auc %.4f", len(y), report.Summary[MetricAccuracy], auc)
	return report, nil
}

// Accuracy returns the share of predictions equal to labels.
func Accuracy(predictions, labels []int) (float64, error) {
	if len(labels) == 0 || len(predictions) != len(labels) {
		return 0, dferrors.Newf(dferrors.CodeInvalidArgument, "got %d predictions and %d labels", len(predictions), len(labels))
	}

	matrix, err := confusionMatrix(predictions, labels)
	if err != nil {
		return 0, err
	}

	return golearn.GetAccuracy(matrix.raw), nil
}

// AUC returns the area under the ROC curve of scores against binary
// labels. It is undefined unless both classes are present.
func AUC(scores []float64, labels []int) (float64, error) {
	if len(scores) != len(labels) {
		return 0, dferrors.Newf(dferrors.CodeInvalidArgument, "got %d scores and %d labels", len(scores), len(labels))
	}

	y := make([]float64, len(scores))
	classes := make([]bool, len(labels))
	var positive int
	for i, label := range labels {
		if label != 0 && label != 1 {
			return 0, dferrors.Newf(dferrors.CodeInvalidArgument, "label %d is not binary", label)
		}

		if math.IsNaN(scores[i]) {
			return 0, dferrors.Newf(dferrors.CodeInvalidArgument, "score of record %d is NaN", i)
		}

		y[i] = scores[i]
		classes[i] = label == 1
		positive += label
	}

	if positive == 0 || positive == len(labels) {
		return 0, dferrors.New(dferrors.CodeUndefinedMetric, "auc is undefined for a single class partition")
	}

	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	if fpr[0] > fpr[len(fpr)-1] {
		reverse(fpr)
		reverse(tpr)
	}

	return integrate.Trapezoidal(fpr, tpr), nil
}

type matrix struct {
	raw      golearn.ConfusionMatrix
	positive string
	negative string
}

func (m *matrix) counts() ConfusionMatrix {
	return ConfusionMatrix{
		TruePositive:  m.raw[m.positive][m.positive],
		FalsePositive: m.raw[m.negative][m.positive],
		TrueNegative:  m.raw[m.negative][m.negative],
		FalseNegative: m.raw[m.positive][m.negative],
	}
}

// confusionMatrix builds golearn instances of labels and predictions and
// cross tabulates them.
func confusionMatrix(predictions, labels []int) (*matrix, error) {
	ref, attr, err := newLabelInstances(labels)
	if err != nil {
		return nil, err
	}

	gen, _, err := newLabelInstances(predictions)
	if err != nil {
		return nil, err
	}

	raw, err := golearn.GetConfusionMatrix(ref, gen)
	if err != nil {
		return nil, err
	}

	return &matrix{
		raw:      raw,
		positive: attr.GetStringFromSysVal(base.PackFloatToBytes(1)),
		negative: attr.GetStringFromSysVal(base.PackFloatToBytes(0)),
	}, nil
}

func newLabelInstances(labels []int) (*base.DenseInstances, *base.FloatAttribute, error) {
	inst := base.NewDenseInstances()
	attr := base.NewFloatAttribute(types.ColumnOutcome)
	spec := inst.AddAttribute(attr)
	if err := inst.AddClassAttribute(attr); err != nil {
		return nil, nil, err
	}

	if err := inst.Extend(len(labels)); err != nil {
		return nil, nil, err
	}

	for i, label := range labels {
		if label != 0 && label != 1 {
			return nil, nil, dferrors.Newf(dferrors.CodeInvalidArgument, "label %d is not binary", label)
		}
		inst.Set(spec, i, base.PackFloatToBytes(float64(label)))
	}

	return inst, attr, nil
}

// finite maps the NaN of a zero denominator to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
