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

package trainer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pima-analytics/pima/internal/dferrors"
	"github.com/pima-analytics/pima/pkg/dfpath"
	"github.com/pima-analytics/pima/trainer/config"
	"github.com/pima-analytics/pima/trainer/dataset"
	"github.com/pima-analytics/pima/trainer/evaluation"
	"github.com/pima-analytics/pima/trainer/metrics"
	"github.com/pima-analytics/pima/trainer/storage"
	storagemocks "github.com/pima-analytics/pima/trainer/storage/mocks"
	"github.com/pima-analytics/pima/trainer/training"
	"github.com/pima-analytics/pima/trainer/training/models"
	trainingmocks "github.com/pima-analytics/pima/trainer/training/mocks"
)

var mockDatasetPath = filepath.Join("dataset", "testdata", "diabetes.csv")

func newConfig(path string) *config.Config {
	cfg := config.New()
	cfg.Dataset.Path = path
	return cfg
}

func TestServer_New(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	d, err := dfpath.New(dfpath.WithWorkHome(dir), dfpath.WithLogDir(filepath.Join(dir, "logs")), dfpath.WithDataDir(filepath.Join(dir, "data")))
	assert.NoError(err)

	cfg := newConfig(mockDatasetPath)
	s, err := New(cfg, d)
	assert.NoError(err)
	assert.NotNil(s.storage)
	assert.NotNil(s.training)
	assert.Nil(s.metricsServer)

	cfg.Metrics.Enable = true
	s, err = New(cfg, d)
	assert.NoError(err)
	assert.Equal(s.metricsServer.Addr, config.DefaultMetricsAddr)
}

func TestServer_Run(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		training func(ctrl *gomock.Controller) training.Training
		mock     func(m *storagemocks.MockStorageMockRecorder)
		expect   func(t *testing.T, output *Output, err error)
	}{
		{
			name:     "run completed",
			path:     mockDatasetPath,
			training: func(_ *gomock.Controller) training.Training { return training.New() },
			mock: func(m *storagemocks.MockStorageMockRecorder) {
				m.Save(gomock.Any(), gomock.Any()).DoAndReturn(func(model *models.LogisticRegression, summary evaluation.Summary) (string, string, error) {
					if err := model.Validate(); err != nil {
						return "", "", err
					}

					return "model", "metrics", summary.Validate()
				}).Times(1)
			},
			expect: func(t *testing.T, output *Output, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(output.ModelHandle, "model")
				assert.Equal(output.MetricsHandle, "metrics")
				assert.Len(output.Report.Labels, 36)
				assert.NoError(output.Report.Summary.Validate())
				assert.Greater(output.Report.Summary[evaluation.MetricAUC], 0.5)
			},
		},
		{
			name:     "dataset not exists",
			path:     filepath.Join("dataset", "testdata", "foo.csv"),
			training: func(_ *gomock.Controller) training.Training { return training.New() },
			mock:     func(m *storagemocks.MockStorageMockRecorder) {},
			expect: func(t *testing.T, output *Output, err error) {
				assert := assert.New(t)
				assert.True(os.IsNotExist(err))
				assert.Nil(output)
			},
		},
		{
			name: "train failed",
			path: mockDatasetPath,
			training: func(ctrl *gomock.Controller) training.Training {
				m := trainingmocks.NewMockTraining(ctrl)
				m.EXPECT().Train(gomock.Any(), gomock.Any()).Return(nil, dferrors.New(dferrors.CodeDegenerateLabel, "foo")).Times(1)
				return m
			},
			mock: func(m *storagemocks.MockStorageMockRecorder) {},
			expect: func(t *testing.T, output *Output, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeDegenerateLabel))
				assert.Nil(output)
			},
		},
		{
			name: "evaluate unfitted model",
			path: mockDatasetPath,
			training: func(ctrl *gomock.Controller) training.Training {
				m := trainingmocks.NewMockTraining(ctrl)
				m.EXPECT().Train(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *dataset.Dataset) (*training.Result, error) {
					return &training.Result{
						Model: models.NewLogisticRegression(training.DefaultFeatures, models.DefaultC, models.DefaultMaxIterations),
						Train: d,
						Test:  d,
					}, nil
				}).Times(1)
				return m
			},
			mock: func(m *storagemocks.MockStorageMockRecorder) {},
			expect: func(t *testing.T, output *Output, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeModelNotFitted))
				assert.Nil(output)
			},
		},
		{
			name:     "save failed",
			path:     mockDatasetPath,
			training: func(_ *gomock.Controller) training.Training { return training.New() },
			mock: func(m *storagemocks.MockStorageMockRecorder) {
				m.Save(gomock.Any(), gomock.Any()).Return("", "", errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, output *Output, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "foo")
				assert.Nil(output)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			store := storagemocks.NewMockStorage(ctl)
			tc.mock(store.EXPECT())

			s := newServer(newConfig(tc.path), store, tc.training(ctl))
			output, err := s.Run(context.Background())
			tc.expect(t, output, err)
		})
	}
}

func TestServer_RunCanceled(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := storagemocks.NewMockStorage(ctl)
	s := newServer(newConfig(mockDatasetPath), store, training.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	before := testutil.ToFloat64(metrics.SaveCount)
	output, err := s.Run(ctx)
	assert := assert.New(t)
	assert.ErrorIs(err, context.Canceled)
	assert.Nil(output)
	assert.Equal(before, testutil.ToFloat64(metrics.SaveCount))
}

func TestServer_RunMetrics(t *testing.T) {
	assert := assert.New(t)
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := storagemocks.NewMockStorage(ctl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", "", errors.New("foo")).Times(1)
	s := newServer(newConfig(mockDatasetPath), store, training.New())

	failures := testutil.ToFloat64(metrics.TrainingFailureCount.WithLabelValues(metrics.StageSave))
	imputed := testutil.ToFloat64(metrics.ImputedValueCount.WithLabelValues("Insulin"))
	_, err := s.Run(context.Background())
	assert.Error(err)
	assert.Equal(failures+1, testutil.ToFloat64(metrics.TrainingFailureCount.WithLabelValues(metrics.StageSave)))
	assert.Equal(imputed+53, testutil.ToFloat64(metrics.ImputedValueCount.WithLabelValues("Insulin")))
	assert.Equal(float64(120), testutil.ToFloat64(metrics.DatasetRecordsGauge))
}

func TestServer_RunWithStorage(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	store := storage.New(dir, filepath.Join(dir, "artifact.lock"))
	s := newServer(newConfig(mockDatasetPath), store, training.New())

	output, err := s.Run(context.Background())
	assert.NoError(err)

	model, err := store.LoadModel(output.ModelHandle)
	assert.NoError(err)
	assert.Equal(model.Features, training.DefaultFeatures)

	summary, err := store.LoadMetrics(output.MetricsHandle)
	assert.NoError(err)
	assert.Equal(summary, output.Report.Summary)
}

func TestServer_ServeAndStop(t *testing.T) {
	cfg := newConfig(mockDatasetPath)
	cfg.Metrics.Enable = true
	cfg.Metrics.Addr = "127.0.0.1:0"

	s := newServer(cfg, nil, nil)
	assert.NoError(t, s.Serve())
	s.Stop()
}
