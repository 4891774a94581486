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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pima-analytics/pima/pkg/risk"
)

func TestCreateRiskAssessmentRequest_Patient(t *testing.T) {
	float := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		request CreateRiskAssessmentRequest
		expect  risk.Patient
	}{
		{
			name: "optional fields absent",
			request: CreateRiskAssessmentRequest{
				Glucose: float(150),
				BMI:     float(35),
				Age:     float(50),
			},
			expect: risk.Patient{
				Glucose:          150,
				BMI:              35,
				Age:              50,
				BloodPressure:    DefaultBloodPressure,
				Pregnancies:      DefaultPregnancies,
				Insulin:          DefaultInsulin,
				SkinThickness:    DefaultSkinThickness,
				DiabetesPedigree: DefaultDiabetesPedigree,
			},
		},
		{
			name: "zero is kept",
			request: CreateRiskAssessmentRequest{
				Glucose:          float(0),
				BMI:              float(10),
				Age:              float(20),
				BloodPressure:    float(0),
				Pregnancies:      float(0),
				Insulin:          float(0),
				SkinThickness:    float(0),
				DiabetesPedigree: float(0),
			},
			expect: risk.Patient{
				BMI: 10,
				Age: 20,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.request.Patient())
		})
	}
}
