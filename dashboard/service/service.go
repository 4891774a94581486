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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pima-analytics/pima/dashboard/config"
	"github.com/pima-analytics/pima/dashboard/metrics"
	"github.com/pima-analytics/pima/dashboard/sample"
	"github.com/pima-analytics/pima/dashboard/types"
	"github.com/pima-analytics/pima/internal/dferrors"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/risk"
	"github.com/pima-analytics/pima/trainer/evaluation"
	"github.com/pima-analytics/pima/trainer/storage"
	"github.com/pima-analytics/pima/trainer/training/models"
)

// Service is the read-only view of the trained artifacts and the risk scorer.
type Service interface {
	GetMetrics(context.Context) (evaluation.Summary, error)
	GetModel(context.Context) (*types.Model, error)
	CreateRiskAssessment(context.Context, types.CreateRiskAssessmentRequest) (*types.RiskAssessment, error)
	GetSamples(context.Context, types.GetSamplesQuery) ([]sample.Record, error)
}

type service struct {
	model     *models.LogisticRegression
	metrics   evaluation.Summary
	generator *sample.Generator
}

// New loads the artifact pair once, the service never writes it.
func New(ctx context.Context, storage storage.Storage, generator *sample.Generator) (Service, error) {
	var (
		model   *models.LogisticRegression
		summary evaluation.Summary
	)

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if model, err = storage.LoadModel(storage.ModelHandle()); err != nil {
			return fmt.Errorf("load model: %w", err)
		}

		return nil
	})

	eg.Go(func() error {
		var err error
		if summary, err = storage.LoadMetrics(storage.MetricsHandle()); err != nil {
			return fmt.Errorf("load metrics: %w", err)
		}

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, name := range summary.Names() {
		metrics.ModelMetricGauge.WithLabelValues(name).Set(summary[name])
	}
	logger.WithArtifact(storage.ModelHandle(), storage.MetricsHandle()).Infof("loaded model of %d features", len(model.Features))

	return &service{
		model:     model,
		metrics:   summary,
		generator: generator,
	}, nil
}

func (s *service) GetMetrics(ctx context.Context) (evaluation.Summary, error) {
	summary := make(evaluation.Summary, len(s.metrics))
	for name, value := range s.metrics {
		summary[name] = value
	}

	return summary, nil
}

func (s *service) GetModel(ctx context.Context) (*types.Model, error) {
	oddsRatios := s.model.OddsRatios()
	coefficients := make([]types.Coefficient, len(s.model.Features))
	for i, feature := range s.model.Features {
		coefficients[i] = types.Coefficient{
			Feature:     feature,
			Coefficient: s.model.Coefficients[i],
			OddsRatio:   oddsRatios[i],
		}
	}

	return &types.Model{
		Intercept:    s.model.Intercept,
		Coefficients: coefficients,
		Iterations:   s.model.Iterations,
	}, nil
}

func (s *service) CreateRiskAssessment(ctx context.Context, json types.CreateRiskAssessmentRequest) (*types.RiskAssessment, error) {
	assessment := risk.Assess(json.Patient())
	metrics.AssessmentCount.WithLabelValues(string(assessment.Tier)).Inc()
	logger.WithTier(string(assessment.Tier)).Debugf("assessed score %.4f", assessment.Score)

	return &types.RiskAssessment{
		Score:          assessment.Score,
		Tier:           string(assessment.Tier),
		Recommendation: assessment.Recommendation,
		Method:         risk.Method,
	}, nil
}

func (s *service) GetSamples(ctx context.Context, q types.GetSamplesQuery) ([]sample.Record, error) {
	count := config.DefaultSampleCount
	if q.Count != nil {
		count = *q.Count
	}

	if count > config.MaxSampleCount {
		return nil, dferrors.Newf(dferrors.CodeInvalidArgument, "sample count %d exceeds %d", count, config.MaxSampleCount)
	}

	records, err := s.generator.Generate(count)
	if err != nil {
		return nil, err
	}
	metrics.SampleCount.Add(float64(len(records)))

	return records, nil
}
