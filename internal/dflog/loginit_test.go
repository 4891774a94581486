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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

var mockRotateConfig = LogRotateConfig{
	MaxSize:    DefaultLogRotateMaxSize,
	MaxAge:     DefaultLogRotateMaxAge,
	MaxBackups: DefaultLogRotateMaxBackups,
}

func TestInitTrainer(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		console bool
		expect  func(t *testing.T, dir string, err error)
	}{
		{
			name:    "console logger",
			console: true,
			expect: func(t *testing.T, dir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.False(IsDebug())
			},
		},
		{
			name:    "verbose console logger",
			verbose: true,
			console: true,
			expect: func(t *testing.T, dir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.True(IsDebug())
			},
		},
		{
			name: "file logger",
			expect: func(t *testing.T, dir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				Infof("training dataset %s", "foo")
				WithDataset("foo").Info("loaded")
				_ = CoreLogger.Sync()

				_, err = os.Stat(filepath.Join(dir, "trainer", CoreLogFileName))
				assert.NoError(err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			tc.expect(t, dir, InitTrainer(tc.verbose, tc.console, dir, mockRotateConfig))
		})
	}
}

func TestInitDashboard(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	assert.NoError(InitDashboard(true, false, dir, mockRotateConfig))
	assert.True(IsDebug())

	GinLogger.Info("request")
	_ = GinLogger.Sync()
	_, err := os.Stat(filepath.Join(dir, "dashboard", GinLogFileName))
	assert.NoError(err)

	SetLevel(zapcore.InfoLevel)
	assert.False(IsDebug())
}
