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

package service

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pima-analytics/pima/dashboard/config"
	"github.com/pima-analytics/pima/dashboard/sample"
	"github.com/pima-analytics/pima/dashboard/types"
	"github.com/pima-analytics/pima/internal/dferrors"
	"github.com/pima-analytics/pima/pkg/risk"
	"github.com/pima-analytics/pima/trainer/evaluation"
	"github.com/pima-analytics/pima/trainer/storage"
	"github.com/pima-analytics/pima/trainer/storage/mocks"
	"github.com/pima-analytics/pima/trainer/training/models"
)

var (
	mockModel = &models.LogisticRegression{
		Fitted:        true,
		Features:      []string{"Glucose", "BMI"},
		Intercept:     -6.5,
		Coefficients:  []float64{0.035, -0.02},
		C:             models.DefaultC,
		MaxIterations: models.DefaultMaxIterations,
		Iterations:    21,
	}

	mockMetrics = evaluation.Summary{
		evaluation.MetricAccuracy:  0.76,
		evaluation.MetricAUC:       0.82,
		evaluation.MetricPrecision: 0.7,
		evaluation.MetricRecall:    0.58,
		evaluation.MetricF1:        0.63,
	}

	mockModelHandle   = "/var/lib/pima/data/logistic_model.gob"
	mockMetricsHandle = "/var/lib/pima/data/metrics.gob"
)

func newMockService(t *testing.T) Service {
	ctl := gomock.NewController(t)
	s := mocks.NewMockStorage(ctl)
	s.EXPECT().ModelHandle().Return(mockModelHandle).AnyTimes()
	s.EXPECT().MetricsHandle().Return(mockMetricsHandle).AnyTimes()
	s.EXPECT().LoadModel(mockModelHandle).Return(mockModel, nil).Times(1)
	s.EXPECT().LoadMetrics(mockMetricsHandle).Return(mockMetrics, nil).Times(1)

	svc, err := New(context.Background(), s, sample.New(config.DefaultSampleSeed))
	if err != nil {
		t.Fatal(err)
	}

	return svc
}

func TestService_New(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockStorageMockRecorder)
		expect func(t *testing.T, svc Service, err error)
	}{
		{
			name: "load artifacts",
			mock: func(m *mocks.MockStorageMockRecorder) {
				m.ModelHandle().Return(mockModelHandle).AnyTimes()
				m.MetricsHandle().Return(mockMetricsHandle).AnyTimes()
				m.LoadModel(mockModelHandle).Return(mockModel, nil).Times(1)
				m.LoadMetrics(mockMetricsHandle).Return(mockMetrics, nil).Times(1)
			},
			expect: func(t *testing.T, svc Service, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotNil(svc)
			},
		},
		{
			name: "model is missing",
			mock: func(m *mocks.MockStorageMockRecorder) {
				m.ModelHandle().Return(mockModelHandle).AnyTimes()
				m.MetricsHandle().Return(mockMetricsHandle).AnyTimes()
				m.LoadModel(mockModelHandle).Return(nil, os.ErrNotExist).Times(1)
				m.LoadMetrics(mockMetricsHandle).Return(mockMetrics, nil).AnyTimes()
			},
			expect: func(t *testing.T, svc Service, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, os.ErrNotExist)
				assert.Nil(svc)
			},
		},
		{
			name: "metrics are corrupt",
			mock: func(m *mocks.MockStorageMockRecorder) {
				m.ModelHandle().Return(mockModelHandle).AnyTimes()
				m.MetricsHandle().Return(mockMetricsHandle).AnyTimes()
				m.LoadModel(mockModelHandle).Return(mockModel, nil).AnyTimes()
				m.LoadMetrics(mockMetricsHandle).Return(nil, dferrors.New(dferrors.CodeArtifactCorrupt, "foo")).Times(1)
			},
			expect: func(t *testing.T, svc Service, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeArtifactCorrupt))
				assert.Nil(svc)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			s := mocks.NewMockStorage(ctl)
			tc.mock(s.EXPECT())
			svc, err := New(context.Background(), s, sample.New(config.DefaultSampleSeed))
			tc.expect(t, svc, err)
		})
	}
}

func TestService_NewWithStorage(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	s := storage.New(dir, filepath.Join(dir, "artifact.lock"))

	_, err := New(context.Background(), s, sample.New(config.DefaultSampleSeed))
	assert.True(errors.Is(err, os.ErrNotExist))

	_, _, err = s.Save(mockModel, mockMetrics)
	assert.NoError(err)

	svc, err := New(context.Background(), s, sample.New(config.DefaultSampleSeed))
	assert.NoError(err)

	summary, err := svc.GetMetrics(context.Background())
	assert.NoError(err)
	assert.Equal(mockMetrics, summary)
}

func TestService_GetMetrics(t *testing.T) {
	assert := assert.New(t)
	svc := newMockService(t)

	summary, err := svc.GetMetrics(context.Background())
	assert.NoError(err)
	assert.Equal(mockMetrics, summary)

	summary[evaluation.MetricAUC] = 0
	summary, err = svc.GetMetrics(context.Background())
	assert.NoError(err)
	assert.Equal(0.82, summary[evaluation.MetricAUC])
}

func TestService_GetModel(t *testing.T) {
	assert := assert.New(t)
	svc := newMockService(t)

	model, err := svc.GetModel(context.Background())
	assert.NoError(err)
	assert.Equal(-6.5, model.Intercept)
	assert.Equal(21, model.Iterations)
	assert.Len(model.Coefficients, 2)
	assert.Equal("Glucose", model.Coefficients[0].Feature)
	assert.Equal(0.035, model.Coefficients[0].Coefficient)
	assert.InDelta(math.Exp(0.035), model.Coefficients[0].OddsRatio, 1e-12)
	assert.Less(model.Coefficients[1].OddsRatio, 1.0)
}

func TestService_CreateRiskAssessment(t *testing.T) {
	float := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		request types.CreateRiskAssessmentRequest
		expect  func(t *testing.T, assessment *types.RiskAssessment, err error)
	}{
		{
			name: "default optional fields",
			request: types.CreateRiskAssessmentRequest{
				Glucose: float(120),
				BMI:     float(25),
				Age:     float(33),
			},
			expect: func(t *testing.T, assessment *types.RiskAssessment, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.9108, assessment.Score, 1e-9)
				assert.Equal(string(risk.TierHigh), assessment.Tier)
				assert.Equal(risk.TierHigh.Recommendation(), assessment.Recommendation)
				assert.Equal(risk.Method, assessment.Method)
			},
		},
		{
			name: "low risk",
			request: types.CreateRiskAssessmentRequest{
				Glucose:          float(0),
				BMI:              float(10),
				Age:              float(20),
				BloodPressure:    float(70),
				Pregnancies:      float(0),
				Insulin:          float(0),
				SkinThickness:    float(0),
				DiabetesPedigree: float(0),
			},
			expect: func(t *testing.T, assessment *types.RiskAssessment, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(0.31, assessment.Score, 1e-9)
				assert.Equal(string(risk.TierLow), assessment.Tier)
			},
		},
	}

	svc := newMockService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assessment, err := svc.CreateRiskAssessment(context.Background(), tc.request)
			tc.expect(t, assessment, err)
		})
	}
}

func TestService_GetSamples(t *testing.T) {
	count := func(v int) *int { return &v }

	tests := []struct {
		name   string
		query  types.GetSamplesQuery
		expect func(t *testing.T, records []sample.Record, err error)
	}{
		{
			name:  "default count",
			query: types.GetSamplesQuery{},
			expect: func(t *testing.T, records []sample.Record, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(records, config.DefaultSampleCount)
			},
		},
		{
			name:  "explicit count",
			query: types.GetSamplesQuery{Count: count(3)},
			expect: func(t *testing.T, records []sample.Record, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(records, 3)
			},
		},
		{
			name:  "count exceeds limit",
			query: types.GetSamplesQuery{Count: count(config.MaxSampleCount + 1)},
			expect: func(t *testing.T, records []sample.Record, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeInvalidArgument))
			},
		},
		{
			name:  "count is zero",
			query: types.GetSamplesQuery{Count: count(0)},
			expect: func(t *testing.T, records []sample.Record, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeInvalidArgument))
			},
		},
	}

	svc := newMockService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records, err := svc.GetSamples(context.Background(), tc.query)
			tc.expect(t, records, err)
		})
	}
}
