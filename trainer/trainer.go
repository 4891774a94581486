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
	"net/http"
	"time"

	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/dfpath"
	"github.com/pima-analytics/pima/trainer/config"
	"github.com/pima-analytics/pima/trainer/dataset"
	"github.com/pima-analytics/pima/trainer/evaluation"
	"github.com/pima-analytics/pima/trainer/metrics"
	"github.com/pima-analytics/pima/trainer/storage"
	"github.com/pima-analytics/pima/trainer/training"
)

const (
	// metricsServerShutdownTimeout bounds the shutdown of the metrics server.
	metricsServerShutdownTimeout = 5 * time.Second
)

type Server struct {
	// Server configuration.
	config *config.Config

	// Metrics server.
	metricsServer *http.Server

	// Storage interface.
	storage storage.Storage

	// Training interface.
	training training.Training
}

// Output is the outcome of a run.
type Output struct {
	// Report is the evaluation on the test partition.
	Report *evaluation.Report

	// ModelHandle is the handle of the saved model.
	ModelHandle string

	// MetricsHandle is the handle of the saved metrics.
	MetricsHandle string
}

func New(cfg *config.Config, d dfpath.Dfpath) (*Server, error) {
	// Initialize Storage.
	store := storage.New(d.DataDir(), d.ArtifactLockPath())

	// Initialize training.
	trainer := training.New(
		training.WithFeatures(cfg.Training.Features),
		training.WithTestFraction(cfg.Training.TestFraction),
		training.WithSeed(cfg.Training.Seed),
		training.WithMaxIterations(cfg.Training.MaxIterations),
		training.WithRegularization(cfg.Training.Regularization),
	)

	return newServer(cfg, store, trainer), nil
}

func newServer(cfg *config.Config, storage storage.Storage, training training.Training) *Server {
	s := &Server{
		config:   cfg,
		storage:  storage,
		training: training,
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s
}

func (s *Server) Serve() error {
	// Started metrics server.
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if err == http.ErrServerClosed {
					return
				}

				logger.Fatalf("metrics server closed unexpect: %s", err.Error())
			}
		}()
	}

	return nil
}

// Run loads, cleans, trains, evaluates and saves once.
func (s *Server) Run(ctx context.Context) (*Output, error) {
	metrics.TrainingCount.Inc()
	log := logger.WithDataset(s.config.Dataset.Path)

	d, err := dataset.LoadFile(s.config.Dataset.Path)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(metrics.StageLoad).Inc()
		log.Errorf("load dataset failed: %s", err.Error())
		return nil, err
	}
	metrics.DatasetRecordsGauge.Set(float64(d.Len()))
	log.Infof("loaded %d records", d.Len())

	imputations, err := dataset.ImputeWithStats(d, s.config.Dataset.ZeroAsMissingColumns)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(metrics.StageImpute).Inc()
		log.Errorf("impute dataset failed: %s", err.Error())
		return nil, err
	}

	for _, imputation := range imputations {
		metrics.ImputedValueCount.WithLabelValues(imputation.Column).Add(float64(imputation.Missing))
		log.With("column", imputation.Column).Infof("imputed %d missing values with median %.4f", imputation.Missing, imputation.Median)
	}

	result, err := s.training.Train(ctx, d)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(metrics.StageTrain).Inc()
		log.Errorf("train model failed: %s", err.Error())
		return nil, err
	}

	x, err := result.Test.Features(result.Model.Features)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(metrics.StageEvaluate).Inc()
		return nil, err
	}

	metrics.EvaluateCount.Inc()
	report, err := evaluation.Evaluate(result.Model, x, result.Test.Labels())
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(metrics.StageEvaluate).Inc()
		log.Errorf("evaluate model failed: %s", err.Error())
		return nil, err
	}

	for _, name := range report.Summary.Names() {
		metrics.ModelMetricGauge.WithLabelValues(name).Set(report.Summary[name])
		log.Infof("%s: %.4f", name, report.Summary[name])
	}

	// A canceled run never replaces the artifacts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	modelHandle, metricsHandle, err := s.storage.Save(result.Model, report.Summary)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(metrics.StageSave).Inc()
		log.Errorf("save artifacts failed: %s", err.Error())
		return nil, err
	}
	metrics.SaveCount.Inc()

	return &Output{
		Report:        report,
		ModelHandle:   modelHandle,
		MetricsHandle: metricsHandle,
	}, nil
}

func (s *Server) Stop() {
	// Push metrics of the run.
	if s.config.Metrics.PushGatewayAddr != "" {
		if err := metrics.Push(s.config.Metrics.PushGatewayAddr); err != nil {
			logger.Errorf("push metrics to %s failed %s", s.config.Metrics.PushGatewayAddr, err.Error())
		} else {
			logger.Infof("push metrics to %s completed", s.config.Metrics.PushGatewayAddr)
		}
	}

	// Stop metrics server.
	if s.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsServerShutdownTimeout)
		defer cancel()

		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		} else {
			logger.Info("metrics server closed under request")
		}
	}
}
