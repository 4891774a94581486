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

package models

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/pima-analytics/pima/internal/dferrors"
	logger "github.com/pima-analytics/pima/internal/dflog"
)

const (
	// DefaultC is the default inverse strength of the L2 penalty.
	DefaultC = 1.0

	// DefaultMaxIterations is the default iteration budget of the optimizer.
	DefaultMaxIterations = 1000

	// DecisionThreshold is the probability above which class 1 is predicted.
	DecisionThreshold = 0.5
)

// LogisticRegression is a binary L2 regularized logistic regression over
// an ordered list of features. The intercept is not penalized.
type LogisticRegression struct {
	Fitted        bool      `json:"fitted"`
	Features      []string  `json:"features"`
	Intercept     float64   `json:"intercept"`
	Coefficients  []float64 `json:"coefficients"`
	C             float64   `json:"c"`
	MaxIterations int       `json:"max_iterations"`
	Iterations    int       `json:"iterations"`
}

// NewLogisticRegression return an unfitted model over features.
func NewLogisticRegression(features []string, c float64, maxIterations int) *LogisticRegression {
	if c <= 0 {
		c = DefaultC
	}

	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	return &LogisticRegression{
		Fitted:        false,
		Features:      append([]string(nil), features...),
		C:             c,
		MaxIterations: maxIterations,
	}
}

// Fit minimizes 0.5*|w|^2 + C*sum(log(1+exp(-s*z))) with LBFGS, where s is
// the label mapped to {-1, +1} and z the linear term of a row.
func (lr *LogisticRegression) Fit(x [][]float64, y []int) error {
	if err := lr.checkTrainingData(x, y); err != nil {
		return err
	}

	n := len(lr.Features)
	signs := make([]float64, len(y))
	for i, label := range y {
		signs[i] = float64(2*label - 1)
	}

	// params[0] is the intercept, params[1:] the coefficients.
	linear := func(params []float64, row []float64) float64 {
		return params[0] + floats.Dot(params[1:], row)
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			loss := 0.5 * floats.Dot(params[1:], params[1:])
			for i, row := range x {
				loss += lr.C * softplus(-signs[i]*linear(params, row))
			}

			return loss
		},
		Grad: func(grad, params []float64) {
			grad[0] = 0
			copy(grad[1:], params[1:])
			for i, row := range x {
				g := -lr.C * signs[i] * sigmoid(-signs[i]*linear(params, row))
				grad[0] += g
				floats.AddScaled(grad[1:], g, row)
			}
		},
	}

	settings := &optimize.Settings{
		MajorIterations: lr.MaxIterations,
	}

	result, err := optimize.Minimize(problem, make([]float64, n+1), settings, &optimize.LBFGS{})
	if result == nil {
		if err == nil {
			err = errors.New("optimizer returned no result")
		}

		return fmt.Errorf("fit logistic regression: %w", err)
	}

	if err != nil {
		logger.Warnf("logistic regression stopped early after %d iterations: %s", result.Stats.MajorIterations, err.Error())
	} else if result.Status == optimize.IterationLimit {
		logger.Warnf("logistic regression did not converge in %d iterations", lr.MaxIterations)
	}

	for _, v := range result.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("fit logistic regression: optimizer diverged")
		}
	}

	lr.Intercept = result.X[0]
	lr.Coefficients = append([]float64(nil), result.X[1:]...)
	lr.Iterations = result.Stats.MajorIterations
	lr.Fitted = true
	logger.Infof("logistic regression fitted in %d iterations, status %s", lr.Iterations, result.Status)
	logger.TrainingLogger.Infow("fit logistic regression",
		"features", lr.Features, "records", len(y), "loss", result.F,
		"iterations", lr.Iterations, "funcEvaluations", result.Stats.FuncEvaluations, "status", result.Status.String())
	return nil
}

// PredictProba returns the probability of class 1 for the feature vector.
func (lr *LogisticRegression) PredictProba(x []float64) (float64, error) {
	if err := lr.Validate(); err != nil {
		return 0, err
	}

	if len(x) != len(lr.Coefficients) {
		return 0, dferrors.Newf(dferrors.CodeInvalidArgument, "feature vector has %d values, want %d", len(x), len(lr.Coefficients))
	}

	return sigmoid(lr.Intercept + floats.Dot(lr.Coefficients, x)), nil
}

// Predict returns 1 when the probability of class 1 is above
// DecisionThreshold, ties go to class 0.
func (lr *LogisticRegression) Predict(x []float64) (int, error) {
	p, err := lr.PredictProba(x)
	if err != nil {
		return 0, err
	}

	if p > DecisionThreshold {
		return 1, nil
	}

	return 0, nil
}

// OddsRatios returns exp(coefficient) of every feature.
func (lr *LogisticRegression) OddsRatios() []float64 {
	ratios := make([]float64, len(lr.Coefficients))
	for i, c := range lr.Coefficients {
		ratios[i] = math.Exp(c)
	}

	return ratios
}

// Validate reports whether the model is fitted and consistent.
func (lr *LogisticRegression) Validate() error {
	if !lr.Fitted {
		return dferrors.New(dferrors.CodeModelNotFitted, "no fitted model")
	}

	if len(lr.Coefficients) == 0 || len(lr.Coefficients) != len(lr.Features) {
		return dferrors.Newf(dferrors.CodeModelNotFitted, "model has %d coefficients for %d features", len(lr.Coefficients), len(lr.Features))
	}

	if !isFinite(lr.Intercept) {
		return dferrors.New(dferrors.CodeModelNotFitted, "intercept is not finite")
	}

	for i, c := range lr.Coefficients {
		if !isFinite(c) {
			return dferrors.Newf(dferrors.CodeModelNotFitted, "coefficient of %s is not finite", lr.Features[i])
		}
	}

	return nil
}

func (lr *LogisticRegression) checkTrainingData(x [][]float64, y []int) error {
	if len(lr.Features) == 0 {
		return dferrors.New(dferrors.CodeInvalidArgument, "model has no features")
	}

	if len(x) == 0 || len(x) != len(y) {
		return dferrors.Newf(dferrors.CodeInvalidArgument, "got %d rows and %d labels", len(x), len(y))
	}

	var classes [2]int
	for i, row := range x {
		if len(row) != len(lr.Features) {
			return dferrors.Newf(dferrors.CodeInvalidArgument, "row %d has %d values, want %d", i, len(row), len(lr.Features))
		}

		if y[i] != 0 && y[i] != 1 {
			return dferrors.Newf(dferrors.CodeDegenerateLabel, "label %d of row %d is not binary", y[i], i)
		}
		classes[y[i]]++
	}

	if classes[0] == 0 || classes[1] == 0 {
		return dferrors.New(dferrors.CodeDegenerateLabel, "labels contain a single class")
	}

	return nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}

	e := math.Exp(z)
	return e / (1 + e)
}

// softplus returns log(1+exp(t)) without overflow.
func softplus(t float64) float64 {
	if t > 0 {
		return t + math.Log1p(math.Exp(-t))
	}

	return math.Log1p(math.Exp(t))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
