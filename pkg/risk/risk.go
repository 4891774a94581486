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

// Package risk implements the hand-tuned heuristic used by the dashboard
// to score a new patient. It does not use the trained logistic regression
// coefficients.
package risk

import "math"

// Tier is the discrete risk category of a score.
type Tier string

const (
	TierLow    Tier = "LOW"
	TierMedium Tier = "MEDIUM"
	TierHigh   Tier = "HIGH"
)

const (
	// HighThreshold is the exclusive lower bound of the HIGH tier.
	HighThreshold = 0.7

	// MediumThreshold is the exclusive lower bound of the MEDIUM tier.
	MediumThreshold = 0.4

	// Method names the scoring method in responses.
	Method = "heuristic"
)

const (
	weightGlucose          = 0.0012
	weightBMI              = 0.015
	weightAge              = 0.008
	weightPregnancies      = 0.025
	weightBloodPressure    = 0.002
	weightInsulin          = 0.00001
	weightSkinThickness    = 0.001
	weightDiabetesPedigree = 0.1

	// baselineBloodPressure is subtracted from the blood pressure
	// before weighting.
	baselineBloodPressure = 70
)

var recommendations = map[Tier]string{
	TierHigh:   "Consult a doctor promptly for further examination.",
	TierMedium: "Routine monitoring and lifestyle changes are recommended.",
	TierLow:    "Maintain a healthy lifestyle.",
}

// Patient holds the raw fields entered for a new patient. Values are
// expected to be range validated by the caller.
type Patient struct {
	Glucose          float64
	BMI              float64
	Age              float64
	Pregnancies      float64
	BloodPressure    float64
	Insulin          float64
	SkinThickness    float64
	DiabetesPedigree float64
}

// Assessment is the scored result of a patient.
type Assessment struct {
	Score          float64
	Tier           Tier
	Recommendation string
}

// Score returns the clamped weighted score of the patient in [0, 1].
func Score(p Patient) float64 {
	return clamp01(weightGlucose*p.Glucose +
		weightBMI*p.BMI +
		weightAge*p.Age +
		weightPregnancies*p.Pregnancies +
		weightBloodPressure*(p.BloodPressure-baselineBloodPressure) +
		weightInsulin*p.Insulin +
		weightSkinThickness*p.SkinThickness +
		weightDiabetesPedigree*p.DiabetesPedigree)
}

// TierOf maps a score to its tier, thresholds are exclusive.
func TierOf(score float64) Tier {
	switch {
	case score > HighThreshold:
		return TierHigh
	case score > MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Recommendation returns the fixed advice text of the tier.
func (t Tier) Recommendation() string {
	return recommendations[t]
}

// Assess scores the patient and resolves tier and recommendation.
func Assess(p Patient) Assessment {
	score := Score(p)
	tier := TierOf(score)
	return Assessment{
		Score:          score,
		Tier:           tier,
		Recommendation: tier.Recommendation(),
	}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}

	return math.Min(math.Max(x, 0), 1)
}
