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

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

package training

import (
	"context"

	"github.com/pima-analytics/pima/internal/dferrors"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/trainer/dataset"
	"github.com/pima-analytics/pima/trainer/training/models"
)

// Training defines the interface to train the logistic regression model.
type Training interface {
	// Train splits the dataset and fits a model on the train partition.
	Train(context.Context, *dataset.Dataset) (*Result, error)
}

// Result is the outcome of a training run.
type Result struct {
	// Model is fitted on Train only.
	Model *models.LogisticRegression

	// Partition holds the record indices of both partitions.
	Partition *Partition

	// Train is the training partition.
	Train *dataset.Dataset

	// Test is the held-out partition.
	Test *dataset.Dataset
}

// training implements Training interface.
type training struct {
	options *Options
}

// New returns a new Training.
func New(options ...Option) Training {
	o := defaultOptions()
	for _, opt := range options {
		opt(o)
	}

	return &training{options: o}
}

// Train splits the dataset and fits a model on the train partition.
func (t *training) Train(ctx context.Context, d *dataset.Dataset) (*Result, error) {
	if len(t.options.Features) == 0 {
		return nil, dferrors.New(dferrors.CodeInvalidArgument, "no feature columns")
	}

	for _, name := range t.options.Features {
		if !d.HasColumn(name) {
			return nil, dferrors.Newf(dferrors.CodeMissingColumn, "column %s is absent", name)
		}
	}

	labels := d.Labels()
	for i, label := range labels {
		if label != 0 && label != 1 {
			return nil, dferrors.Newf(dferrors.CodeDegenerateLabel, "label %d of record %d is not binary", label, i)
		}
	}

	partition, err := Split(labels, t.options.TestFraction, t.options.Seed)
	if err != nil {
		return nil, err
	}
	logger.Infof("split %d records into %d train and %d test", d.Len(), len(partition.Train), len(partition.Test))

	train, err := d.Subset(partition.Train)
	if err != nil {
		return nil, err
	}

	test, err := d.Subset(partition.Test)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x, err := train.Features(t.options.Features)
	if err != nil {
		return nil, err
	}

	model := models.NewLogisticRegression(t.options.Features, t.options.Regularization, t.options.MaxIterations)
	if err := model.Fit(x, train.Labels()); err != nil {
		logger.Errorf("fit model failed: %s", err.Error())
		return nil, err
	}

	return &Result{
		Model:     model,
		Partition: partition,
		Train:     train,
		Test:      test,
	}, nil
}
