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
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/pima-analytics/pima/internal/dferrors"
)

const (
	// Separator is the field separator of input files.
	Separator = ';'

	utf8BOM = "\ufeff"
)

// LoadFile loads a dataset from the file at path.
func LoadFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

// Load reads a ';' separated table with a header row into a dataset.
func Load(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	header, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	if err := checkHeader(header); err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = Separator
	reader.TrimLeadingSpace = true

	var records []Record
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, dferrors.Newf(dferrors.CodeInvalidFormat, "decode records: %s", err)
	}

	if len(records) == 0 {
		return nil, dferrors.New(dferrors.CodeInvalidFormat, "dataset has no records")
	}

	return &Dataset{records: records}, nil
}

func readHeader(data []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}

		return "", dferrors.New(dferrors.CodeInvalidFormat, "input is empty")
	}

	header := strings.TrimSpace(scanner.Text())
	if !strings.ContainsRune(header, Separator) {
		return "", dferrors.Newf(dferrors.CodeInvalidFormat, "header %q is not separated by %q", header, Separator)
	}

	return header, nil
}

func checkHeader(header string) error {
	present := make(map[string]struct{})
	for _, name := range strings.Split(header, string(Separator)) {
		present[strings.Trim(strings.TrimSpace(name), `"`)] = struct{}{}
	}

	for _, name := range RequiredColumns {
		if _, ok := present[name]; !ok {
			return dferrors.Newf(dferrors.CodeMissingColumn, "column %s is absent", name)
		}
	}

	return nil
}
