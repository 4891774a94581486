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

package dataset

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/pima-analytics/pima/internal/dferrors"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/types"
)

// DefaultZeroAsMissingColumns are the columns whose zero values are
// biologically implausible.
var DefaultZeroAsMissingColumns = []string{
	types.ColumnGlucose,
	types.ColumnBloodPressure,
	types.ColumnSkinThickness,
	types.ColumnInsulin,
	types.ColumnBMI,
}

// Imputation describes the repair of a single column.
type Imputation struct {
	Column  string
	Missing int
	Median  float64
}

// Impute replaces zero and NaN values of each column with the median of
// the column's remaining values.
func Impute(d *Dataset, columns []string) error {
	_, err := ImputeWithStats(d, columns)
	return err
}

// ImputeWithStats is Impute returning what was repaired per column. The
// dataset is left untouched when any column fails.
func ImputeWithStats(d *Dataset, columns []string) ([]Imputation, error) {
	imputations := make([]Imputation, 0, len(columns))
	repaired := make([][]float64, 0, len(columns))
	for _, name := range columns {
		values, err := d.Column(name)
		if err != nil {
			return nil, err
		}

		// Mark missing before computing the median.
		var (
			missing []int
			present stats.Float64Data
		)
		for i, v := range values {
			if isMissing(v) {
				missing = append(missing, i)
				continue
			}
			present = append(present, v)
		}

		if len(present) == 0 {
			return nil, dferrors.Newf(dferrors.CodeImputationImpossible, "column %s has no non-missing values", name)
		}

		median, err := stats.Median(present)
		if err != nil {
			return nil, err
		}

		for _, i := range missing {
			values[i] = median
		}

		imputations = append(imputations, Imputation{Column: name, Missing: len(missing), Median: median})
		repaired = append(repaired, values)
	}

	for i, imputation := range imputations {
		if err := d.SetColumn(imputation.Column, repaired[i]); err != nil {
			return nil, err
		}
		logger.WithColumn(imputation.Column).Debugf("imputed %d values with median %.4f", imputation.Missing, imputation.Median)
	}

	return imputations, nil
}

func isMissing(v float64) bool {
	return v == 0 || math.IsNaN(v)
}
