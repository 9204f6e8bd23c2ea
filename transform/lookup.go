// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transform

import (
	"slices"

	"github.com/pebble-dev/pdc-tools/pdc"
)

// IndexLookupByDistance is a precomputed ordering of point indices by
// ascending distance from a pivot. It only assigns stagger delays; the
// command list itself is never reordered.
type IndexLookupByDistance struct {
	indices []int // point indices, nearest first
	ranks   []int // ranks[pointIndex] = position in indices
}

// NewIndexLookupByDistance orders the indices of points by squared distance
// from pivot. Points at equal distance keep their original relative order.
func NewIndexLookupByDistance(points []pdc.PrecisePoint, pivot pdc.PrecisePoint) *IndexLookupByDistance {
	distances := make([]int64, len(points))
	for i, p := range points {
		dx := int64(p.X - pivot.X)
		dy := int64(p.Y - pivot.Y)
		distances[i] = dx*dx + dy*dy
	}
	lookup := &IndexLookupByDistance{
		indices: make([]int, len(points)),
		ranks:   make([]int, len(points)),
	}
	for i := range lookup.indices {
		lookup.indices[i] = i
	}
	slices.SortStableFunc(lookup.indices, func(a, b int) int {
		switch {
		case distances[a] < distances[b]:
			return -1
		case distances[a] > distances[b]:
			return 1
		}
		return 0
	})
	for rank, index := range lookup.indices {
		lookup.ranks[index] = rank
	}
	return lookup
}

// Len returns the number of points in the lookup.
func (l *IndexLookupByDistance) Len() int {
	if l == nil {
		return 0
	}
	return len(l.indices)
}

// Index returns the point index at the given distance rank, nearest first.
func (l *IndexLookupByDistance) Index(rank int) int {
	return l.indices[rank]
}

// Rank returns the distance rank of a point index: 0 for the point nearest
// the pivot.
func (l *IndexLookupByDistance) Rank(index int) int {
	return l.ranks[index]
}
