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

package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pima-analytics/pima/dashboard/config"
	"github.com/pima-analytics/pima/dashboard/metrics"
	"github.com/pima-analytics/pima/dashboard/router"
	"github.com/pima-analytics/pima/dashboard/sample"
	"github.com/pima-analytics/pima/dashboard/service"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/dfpath"
	"github.com/pima-analytics/pima/trainer/storage"
)

type Server struct {
	// Server configuration.
	config *config.Config

	// REST server.
	restServer *http.Server
}

func New(ctx context.Context, cfg *config.Config, d dfpath.Dfpath) (*Server, error) {
	// Initialize read-only view of the artifacts.
	svc, err := service.New(ctx, storage.New(d.DataDir(), d.ArtifactLockPath()), sample.New(cfg.Sample.Seed))
	if err != nil {
		return nil, err
	}

	return newServer(cfg, router.Init(cfg, svc)), nil
}

func newServer(cfg *config.Config, handler *gin.Engine) *Server {
	metrics.Init()

	return &Server{
		config: cfg,
		restServer: &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: handler,
		},
	}
}

func (s *Server) Serve() error {
	// Started REST server.
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if err == http.ErrServerClosed {
			return nil
		}

		logger.Errorf("rest server closed unexpect: %s", err.Error())
		return err
	}

	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	// Stop REST server.
	if err := s.restServer.Shutdown(ctx); err != nil {
		logger.Errorf("rest server failed to stop: %s", err.Error())
	} else {
		logger.Info("rest server closed under request")
	}
}
