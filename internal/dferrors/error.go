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

package dferrors

import (
	"errors"
	"fmt"
)

// Code classifies failures of the training and scoring pipeline.
type Code int

const (
	CodeUnknown Code = iota

	// CodeMissingColumn means a required field is absent from the input.
	CodeMissingColumn

	// CodeDegenerateLabel means the label column has fewer than two classes.
	CodeDegenerateLabel

	// CodeImputationImpossible means a cleaned column has no non-missing values.
	CodeImputationImpossible

	// CodeArtifactCorrupt means a stored model or metrics cannot be deserialized.
	CodeArtifactCorrupt

	// CodeUndefinedMetric means a metric was requested on a single-class partition.
	CodeUndefinedMetric

	// CodeInvalidFormat means the input file is not a ';' separated table.
	CodeInvalidFormat

	// CodeInvalidArgument means a caller supplied an unusable parameter.
	CodeInvalidArgument

	// CodeModelNotFitted means a prediction was requested from an unfitted model.
	CodeModelNotFitted
)

var codeNames = map[Code]string{
	CodeUnknown:              "Unknown",
	CodeMissingColumn:        "MissingColumn",
	CodeDegenerateLabel:      "DegenerateLabel",
	CodeImputationImpossible: "ImputationImpossible",
	CodeArtifactCorrupt:      "ArtifactCorrupt",
	CodeUndefinedMetric:      "UndefinedMetric",
	CodeInvalidFormat:        "InvalidFormat",
	CodeInvalidArgument:      "InvalidArgument",
	CodeModelNotFitted:       "ModelNotFitted",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Code(%d)", int(c))
}

type DfError struct {
	Code    Code
	Message string
}

func (s *DfError) Error() string {
	return fmt.Sprintf("[%s]%s", s.Code, s.Message)
}

func New(code Code, msg string) *DfError {
	return &DfError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code Code, format string, a ...any) *DfError {
	return &DfError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// CheckError reports whether err, or any error it wraps, is a DfError with the given code.
func CheckError(err error, code Code) bool {
	if err == nil {
		return false
	}

	var e *DfError
	return errors.As(err, &e) && e.Code == code
}
