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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	"github.com/pima-analytics/pima/dashboard/config"
	"github.com/pima-analytics/pima/dashboard/handlers"
	"github.com/pima-analytics/pima/dashboard/middlewares"
	"github.com/pima-analytics/pima/dashboard/service"
	logger "github.com/pima-analytics/pima/internal/dflog"
)

const (
	PrometheusSubsystemName = "pima_dashboard"
)

func Init(cfg *config.Config, service service.Service) *gin.Engine {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	if cfg.Metrics.Enable {
		p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
		// URL removes query string.
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.Request.URL.Path
		}
		p.Use(r)
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Health Check.
	r.GET("/healthy", h.GetHealth)

	// Router
	apiv1 := r.Group("/api/v1")

	// Artifacts
	apiv1.GET("/metrics", h.GetMetrics)
	apiv1.GET("/model", h.GetModel)

	// Risk assessment
	ra := apiv1.Group("/risk-assessments")
	ra.POST("", h.CreateRiskAssessment)

	// Synthetic samples
	apiv1.GET("/samples", h.GetSamples)

	return r
}
