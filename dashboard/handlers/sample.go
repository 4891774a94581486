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

// @Summary Get Samples
// @Description Get synthetic samples for charts
// @Tags Sample
// @Accept json
// @Produce json
// @Param count query int false "count, default 500"
// @Success 200 {object} []sample.Record
// @Failure 422
// @Failure 500
// @Router /api/v1/samples [get]
func (h *Handlers) GetSamples(ctx *gin.Context) {
	var query types.GetSamplesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
		return
	}

	records, err := h.service.GetSamples(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, records)
}
