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
	"fmt"

	"github.com/pima-analytics/pima/internal/dferrors"
	"github.com/pima-analytics/pima/pkg/types"
)

// Record is a row of the Pima Indians Diabetes dataset.
type Record struct {
	Pregnancies              float64 `csv:"Pregnancies"`
	Glucose                  float64 `csv:"Glucose"`
	BloodPressure            float64 `csv:"BloodPressure"`
	SkinThickness            float64 `csv:"SkinThickness"`
	Insulin                  float64 `csv:"Insulin"`
	BMI                      float64 `csv:"BMI"`
	DiabetesPedigreeFunction float64 `csv:"DiabetesPedigreeFunction"`
	Age                      float64 `csv:"Age"`
	Outcome                  int     `csv:"Outcome"`
}

type accessor struct {
	get func(r *Record) float64
	set func(r *Record, v float64)
}

// accessors holds the numeric feature columns by header name.
var accessors = map[string]accessor{
	types.ColumnPregnancies: {
		get: func(r *Record) float64 { return r.Pregnancies },
		set: func(r *Record, v float64) { r.Pregnancies = v },
	},
	types.ColumnGlucose: {
		get: func(r *Record) float64 { return r.Glucose },
		set: func(r *Record, v float64) { r.Glucose = v },
	},
	types.ColumnBloodPressure: {
		get: func(r *Record) float64 { return r.BloodPressure },
		set: func(r *Record, v float64) { r.BloodPressure = v },
	},
	types.ColumnSkinThickness: {
		get: func(r *Record) float64 { return r.SkinThickness },
		set: func(r *Record, v float64) { r.SkinThickness = v },
	},
	types.ColumnInsulin: {
		get: func(r *Record) float64 { return r.Insulin },
		set: func(r *Record, v float64) { r.Insulin = v },
	},
	types.ColumnBMI: {
		get: func(r *Record) float64 { return r.BMI },
		set: func(r *Record, v float64) { r.BMI = v },
	},
	types.ColumnDiabetesPedigreeFunction: {
		get: func(r *Record) float64 { return r.DiabetesPedigreeFunction },
		set: func(r *Record, v float64) { r.DiabetesPedigreeFunction = v },
	},
	types.ColumnAge: {
		get: func(r *Record) float64 { return r.Age },
		set: func(r *Record, v float64) { r.Age = v },
	},
}

// RequiredColumns are the header names every input file must carry.
var RequiredColumns = []string{
	types.ColumnGlucose,
	types.ColumnBloodPressure,
	types.ColumnSkinThickness,
	types.ColumnInsulin,
	types.ColumnBMI,
	types.ColumnAge,
	types.ColumnPregnancies,
	types.ColumnDiabetesPedigreeFunction,
	types.ColumnOutcome,
}

// Dataset is an ordered sequence of records.
type Dataset struct {
	records []Record
}

// New returns a dataset holding a copy of records.
func New(records []Record) *Dataset {
	d := &Dataset{records: make([]Record, len(records))}
	copy(d.records, records)
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records.
func (d *Dataset) Records() []Record {
	records := make([]Record, len(d.records))
	copy(records, d.records)
	return records
}

// HasColumn reports whether name is a numeric feature column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := accessors[name]
	return ok
}

// Column returns the values of a feature column in record order.
func (d *Dataset) Column(name string) ([]float64, error) {
	a, ok := accessors[name]
	if !ok {
		return nil, dferrors.Newf(dferrors.CodeMissingColumn, "column %s is absent", name)
	}

	values := make([]float64, len(d.records))
	for i := range d.records {
		values[i] = a.get(&d.records[i])
	}

	return values, nil
}

// SetColumn replaces the values of a feature column.
func (d *Dataset) SetColumn(name string, values []float64) error {
	a, ok := accessors[name]
	if !ok {
		return dferrors.Newf(dferrors.CodeMissingColumn, "column %s is absent", name)
	}

	if len(values) != len(d.records) {
		return dferrors.Newf(dferrors.CodeInvalidArgument, "column %s has %d values, want %d", name, len(values), len(d.records))
	}

	for i := range d.records {
		a.set(&d.records[i], values[i])
	}

	return nil
}

// Labels returns the Outcome column.
func (d *Dataset) Labels() []int {
	labels := make([]int, len(d.records))
	for i, r := range d.records {
		labels[i] = r.Outcome
	}

	return labels
}

// Features returns the row-major matrix of the given columns.
func (d *Dataset) Features(columns []string) ([][]float64, error) {
	getters := make([]func(r *Record) float64, len(columns))
	for i, name := range columns {
		a, ok := accessors[name]
		if !ok {
			return nil, dferrors.Newf(dferrors.CodeMissingColumn, "column %s is absent", name)
		}
		getters[i] = a.get
	}

	x := make([][]float64, len(d.records))
	for i := range d.records {
		row := make([]float64, len(getters))
		for j, get := range getters {
			row[j] = get(&d.records[i])
		}
		x[i] = row
	}

	return x, nil
}

// Subset returns a new dataset with copies of the records at indices.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	records := make([]Record, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(d.records) {
			return nil, dferrors.Newf(dferrors.CodeInvalidArgument, "index %d out of range [0, %d)", i, len(d.records))
		}
		records = append(records, d.records[i])
	}

	return &Dataset{records: records}, nil
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(%d records)", len(d.records))
}
