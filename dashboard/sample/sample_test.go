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

package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/pima-analytics/pima/internal/dferrors"
)

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		expect func(t *testing.T, records []Record, err error)
	}{
		{
			name:  "generate default count",
			count: 500,
			expect: func(t *testing.T, records []Record, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(records, 500)
				for _, record := range records {
					assert.True(record.Synthetic)
					assert.Contains([]int{0, 1}, record.Diabetes)
				}
			},
		},
		{
			name:  "generate population",
			count: 5000,
			expect: func(t *testing.T, records []Record, err error) {
				assert := assert.New(t)
				assert.NoError(err)

				var glucose, bmi, age, diabetes []float64
				for _, record := range records {
					glucose = append(glucose, record.Glucose)
					bmi = append(bmi, record.BMI)
					age = append(age, record.Age)
					diabetes = append(diabetes, float64(record.Diabetes))
				}

				assert.InDelta(glucoseMean, stat.Mean(glucose, nil), 3)
				assert.InDelta(bmiMean, stat.Mean(bmi, nil), 1)
				assert.InDelta(ageMean, stat.Mean(age, nil), 1.5)
				assert.InDelta(diabetesProbability, stat.Mean(diabetes, nil), 0.04)
			},
		},
		{
			name:  "count is zero",
			count: 0,
			expect: func(t *testing.T, records []Record, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeInvalidArgument))
				assert.Nil(records)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records, err := New(42).Generate(tc.count)
			tc.expect(t, records, err)
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	assert := assert.New(t)
	g := New(42)

	first, err := g.Generate(100)
	assert.NoError(err)
	second, err := g.Generate(100)
	assert.NoError(err)
	assert.Equal(first, second)

	prefix, err := g.Generate(10)
	assert.NoError(err)
	assert.Equal(first[:10], prefix)

	other, err := New(7).Generate(100)
	assert.NoError(err)
	assert.NotEqual(first, other)
}
