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

// Package sample generates the synthetic population shown by the dashboard
// charts. Samples are never used for scoring.
package sample

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pima-analytics/pima/internal/dferrors"
)

const (
	glucoseMean   = 120
	glucoseStdDev = 30

	bmiMean   = 32
	bmiStdDev = 7

	ageMean   = 33
	ageStdDev = 12

	// diabetesProbability is the share of positive outcomes.
	diabetesProbability = 0.35
)

// Record is a synthetic patient.
type Record struct {
	Glucose   float64 `json:"glucose"`
	BMI       float64 `json:"bmi"`
	Age       float64 `json:"age"`
	Diabetes  int     `json:"diabetes"`
	Synthetic bool    `json:"synthetic"`
}

// Generator draws records from a fixed seed, every call starts the stream over.
type Generator struct {
	seed uint64
}

func New(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// Generate returns the first count records of the seeded stream.
func (g *Generator) Generate(count int) ([]Record, error) {
	if count <= 0 {
		return nil, dferrors.Newf(dferrors.CodeInvalidArgument, "sample count %d is not positive", count)
	}

	src := rand.NewPCG(g.seed, g.seed)
	glucose := distuv.Normal{Mu: glucoseMean, Sigma: glucoseStdDev, Src: src}
	bmi := distuv.Normal{Mu: bmiMean, Sigma: bmiStdDev, Src: src}
	age := distuv.Normal{Mu: ageMean, Sigma: ageStdDev, Src: src}
	diabetes := distuv.Bernoulli{P: diabetesProbability, Src: src}

	records := make([]Record, count)
	for i := range records {
		records[i] = Record{
			Glucose:   glucose.Rand(),
			BMI:       bmi.Rand(),
			Age:       age.Rand(),
			Diabetes:  int(diabetes.Rand()),
			Synthetic: true,
		}
	}

	return records, nil
}
