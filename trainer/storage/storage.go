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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/hashicorp/go-multierror"

	"github.com/pima-analytics/pima/internal/dferrors"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/trainer/evaluation"
	"github.com/pima-analytics/pima/trainer/training/models"
)

const (
	// ModelFilePrefix is prefix of model file name.
	ModelFilePrefix = "logistic_model"

	// MetricsFilePrefix is prefix of metrics file name.
	MetricsFilePrefix = "metrics"

	// GobFileExt is extension of file name.
	GobFileExt = "gob"

	// TempFileExt is extension of files being written.
	TempFileExt = "tmp"
)

// Storage is the interface used for storage.
type Storage interface {
	// Save writes the model and its metrics, it returns the handles of both artifacts.
	Save(*models.LogisticRegression, evaluation.Summary) (string, string, error)

	// LoadModel reads the model of the given handle.
	LoadModel(string) (*models.LogisticRegression, error)

	// LoadMetrics reads the metrics of the given handle.
	LoadMetrics(string) (evaluation.Summary, error)

	// ModelHandle returns the handle of the model artifact.
	ModelHandle() string

	// MetricsHandle returns the handle of the metrics artifact.
	MetricsHandle() string

	// Clear removes all artifacts.
	Clear() error
}

type storage struct {
	baseDir  string
	lockPath string
}

// New returns a new Storage instance, writers serialize on the file lock at lockPath.
func New(baseDir, lockPath string) Storage {
	return &storage{
		baseDir:  baseDir,
		lockPath: lockPath,
	}
}

// Save writes the model and its metrics, it returns the handles of both artifacts.
// Each artifact is replaced atomically, a reader sees either the prior or the new file.
func (s *storage) Save(model *models.LogisticRegression, metrics evaluation.Summary) (string, string, error) {
	if err := model.Validate(); err != nil {
		return "", "", err
	}

	if err := metrics.Validate(); err != nil {
		return "", "", err
	}

	lock := flock.New(s.lockPath)
	if err := lock.Lock(); err != nil {
		return "", "", fmt.Errorf("lock %s: %w", s.lockPath, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warnf("unlock %s failed: %s", s.lockPath, err.Error())
		}
	}()

	modelTemp, err := s.writeTemp(ModelFilePrefix, model)
	if err != nil {
		return "", "", err
	}

	metricsTemp, err := s.writeTemp(MetricsFilePrefix, metrics)
	if err != nil {
		return "", "", removeAll(err, modelTemp)
	}

	if err := os.Rename(modelTemp, s.ModelHandle()); err != nil {
		return "", "", removeAll(err, modelTemp, metricsTemp)
	}

	if err := os.Rename(metricsTemp, s.MetricsHandle()); err != nil {
		return "", "", removeAll(err, metricsTemp)
	}

	logger.WithArtifact(s.ModelHandle(), s.MetricsHandle()).Info("artifacts saved")
	return s.ModelHandle(), s.MetricsHandle(), nil
}

// LoadModel reads the model of the given handle.
func (s *storage) LoadModel(handle string) (*models.LogisticRegression, error) {
	file, err := os.Open(handle)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var model models.LogisticRegression
	if err := gob.NewDecoder(file).Decode(&model); err != nil {
		return nil, dferrors.Newf(dferrors.CodeArtifactCorrupt, "decode model %s: %s", handle, err)
	}

	if err := model.Validate(); err != nil {
		return nil, dferrors.Newf(dferrors.CodeArtifactCorrupt, "model %s: %s", handle, err)
	}

	return &model, nil
}

// LoadMetrics reads the metrics of the given handle.
func (s *storage) LoadMetrics(handle string) (evaluation.Summary, error) {
	file, err := os.Open(handle)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var metrics evaluation.Summary
	if err := gob.NewDecoder(file).Decode(&metrics); err != nil {
		return nil, dferrors.Newf(dferrors.CodeArtifactCorrupt, "decode metrics %s: %s", handle, err)
	}

	if err := metrics.Validate(); err != nil {
		return nil, dferrors.Newf(dferrors.CodeArtifactCorrupt, "metrics %s: %s", handle, err)
	}

	return metrics, nil
}

// ModelHandle returns the handle of the model artifact.
func (s *storage) ModelHandle() string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s.%s", ModelFilePrefix, GobFileExt))
}

// MetricsHandle returns the handle of the metrics artifact.
func (s *storage) MetricsHandle() string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s.%s", MetricsFilePrefix, GobFileExt))
}

// Clear removes all artifacts and leftover temporary files.
func (s *storage) Clear() error {
	lock := flock.New(s.lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.lockPath, err)
	}
	defer lock.Unlock()

	temps, err := filepath.Glob(filepath.Join(s.baseDir, fmt.Sprintf("*.%s", TempFileExt)))
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, name := range append([]string{s.ModelHandle(), s.MetricsHandle()}, temps...) {
		if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}

// writeTemp encodes v into a synced temporary file next to the artifacts.
func (s *storage) writeTemp(prefix string, v any) (string, error) {
	file, err := os.CreateTemp(s.baseDir, fmt.Sprintf("%s-*.%s", prefix, TempFileExt))
	if err != nil {
		return "", err
	}

	if err := gob.NewEncoder(file).Encode(v); err != nil {
		file.Close()
		return "", removeAll(err, file.Name())
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return "", removeAll(err, file.Name())
	}

	if err := file.Close(); err != nil {
		return "", removeAll(err, file.Name())
	}

	return file.Name(), nil
}

// removeAll removes names and returns cause together with any removal failure.
func removeAll(cause error, names ...string) error {
	var errs *multierror.Error
	for _, name := range names {
		if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = multierror.Append(errs, err)
		}
	}

	if errs == nil {
		return cause
	}

	return multierror.Append(cause, errs.Errors...)
}
