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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pima-analytics/pima/dashboard/types"
)

// @Summary Create Risk Assessment
// @Description Score a patient with the heuristic risk formula
// @Tags RiskAssessment
// @Accept json
// @Produce json
// @Param RiskAssessment body types.CreateRiskAssessmentRequest true "RiskAssessment"
// @Success 200 {object} types.RiskAssessment
// @Failure 422
// @Failure 500
// @Router /api/v1/risk-assessments [post]
func (h *Handlers) CreateRiskAssessment(ctx *gin.Context) {
	var json types.CreateRiskAssessmentRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	assessment, err := h.service.CreateRiskAssessment(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, assessment)
}
