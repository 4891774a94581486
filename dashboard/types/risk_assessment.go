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
	"github.com/pima-analytics/pima/pkg/risk"
)

// Defaults of the optional patient fields.
const (
	DefaultBloodPressure    = 72
	DefaultPregnancies      = 2
	DefaultInsulin          = 80
	DefaultSkinThickness    = 23
	DefaultDiabetesPedigree = 0.5
)

type CreateRiskAssessmentRequest struct {
	Glucose          *float64 `json:"glucose" binding:"required,gte=0,lte=200"`
	BMI              *float64 `json:"bmi" binding:"required,gte=10,lte=60"`
	Age              *float64 `json:"age" binding:"required,gte=20,lte=80"`
	BloodPressure    *float64 `json:"blood_pressure" binding:"omitempty,gte=0,lte=130"`
	Pregnancies      *float64 `json:"pregnancies" binding:"omitempty,gte=0,lte=15"`
	Insulin          *float64 `json:"insulin" binding:"omitempty,gte=0,lte=850"`
	SkinThickness    *float64 `json:"skin_thickness" binding:"omitempty,gte=0,lte=100"`
	DiabetesPedigree *float64 `json:"diabetes_pedigree" binding:"omitempty,gte=0,lte=2.5"`
}

// Patient fills absent optional fields with their defaults.
func (r CreateRiskAssessmentRequest) Patient() risk.Patient {
	return risk.Patient{
		Glucose:          valueOr(r.Glucose, 0),
		BMI:              valueOr(r.BMI, 0),
		Age:              valueOr(r.Age, 0),
		BloodPressure:    valueOr(r.BloodPressure, DefaultBloodPressure),
		Pregnancies:      valueOr(r.Pregnancies, DefaultPregnancies),
		Insulin:          valueOr(r.Insulin, DefaultInsulin),
		SkinThickness:    valueOr(r.SkinThickness, DefaultSkinThickness),
		DiabetesPedigree: valueOr(r.DiabetesPedigree, DefaultDiabetesPedigree),
	}
}

type RiskAssessment struct {
	Score          float64 `json:"score"`
	Tier           string  `json:"tier"`
	Recommendation string  `json:"recommendation"`
	Method         string  `json:"method"`
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}

	return *v
}
