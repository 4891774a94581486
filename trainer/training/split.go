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

package training

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pima-analytics/pima/internal/dferrors"
)

// Partition holds disjoint record indices of a stratified split.
type Partition struct {
	Train []int
	Test  []int
}

// Split partitions record indices into train and test so that both keep
// the class proportions of labels. The test partition holds
// ceil(testFraction*len(labels)) records, spread over classes by largest
// remainder.
func Split(labels []int, testFraction float64, seed int64) (*Partition, error) {
	if !(testFraction > 0 && testFraction < 1) {
		return nil, dferrors.Newf(dferrors.CodeInvalidArgument, "test fraction %v is not in (0, 1)", testFraction)
	}

	groups := make(map[int][]int)
	for i, label := range labels {
		groups[label] = append(groups[label], i)
	}

	if len(groups) < 2 {
		return nil, dferrors.Newf(dferrors.CodeDegenerateLabel, "labels contain %d class, want at least 2", len(groups))
	}

	classes := make([]int, 0, len(groups))
	for class := range groups {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	n := len(labels)
	nTest := int(math.Ceil(testFraction * float64(n)))
	if nTest >= n {
		return nil, dferrors.Newf(dferrors.CodeInvalidArgument, "test fraction %v leaves no training records out of %d", testFraction, n)
	}

	quotas := allocate(nTest, n, classes, groups)

	rng := rand.New(rand.NewSource(seed))
	partition := &Partition{
		Train: make([]int, 0, n-nTest),
		Test:  make([]int, 0, nTest),
	}
	for _, class := range classes {
		indices := append([]int(nil), groups[class]...)
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		partition.Test = append(partition.Test, indices[:quotas[class]]...)
		partition.Train = append(partition.Train, indices[quotas[class]:]...)
	}

	sort.Ints(partition.Train)
	sort.Ints(partition.Test)
	return partition, nil
}

// allocate spreads nTest over classes proportionally to their sizes.
func allocate(nTest, n int, classes []int, groups map[int][]int) map[int]int {
	type remainder struct {
		class int
		value float64
	}

	quotas := make(map[int]int, len(classes))
	remainders := make([]remainder, 0, len(classes))
	allocated := 0
	for _, class := range classes {
		exact := float64(nTest) * float64(len(groups[class])) / float64(n)
		quotas[class] = int(math.Floor(exact))
		allocated += quotas[class]
		remainders = append(remainders, remainder{class: class, value: exact - math.Floor(exact)})
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].value > remainders[j].value
	})

	for i := 0; allocated < nTest; i++ {
		quotas[remainders[i%len(remainders)].class]++
		allocated++
	}

	return quotas
}
