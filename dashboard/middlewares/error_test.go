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

package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pima-analytics/pima/internal/dferrors"
)

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		expect  func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:    "no error",
			handler: func(c *gin.Context) { c.Status(http.StatusOK) },
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, w.Code)
			},
		},
		{
			name: "bind error",
			handler: func(c *gin.Context) {
				c.Error(errors.New("foo")).SetType(gin.ErrorTypeBind) // nolint: errcheck
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
				assert.Contains(w.Body.String(), "foo")
			},
		},
		{
			name: "invalid argument",
			handler: func(c *gin.Context) {
				c.Error(fmt.Errorf("samples: %w", dferrors.New(dferrors.CodeInvalidArgument, "bar"))) // nolint: errcheck
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.Contains(w.Body.String(), "bar")
			},
		},
		{
			name: "artifact corrupt",
			handler: func(c *gin.Context) {
				c.Error(dferrors.New(dferrors.CodeArtifactCorrupt, "baz")) // nolint: errcheck
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
				assert.NotContains(w.Body.String(), "baz")
			},
		},
		{
			name: "unknown error",
			handler: func(c *gin.Context) {
				c.Error(errors.New("foo")) // nolint: errcheck
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Error())
			r.GET("/", tc.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			tc.expect(t, w)
		})
	}
}
