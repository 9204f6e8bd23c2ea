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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebble-dev/pdc-tools/pdc"
)

func squareTestImage() *pdc.DrawCommandImage {
	return &pdc.DrawCommandImage{
		Version: pdc.FormatVersion,
		ViewBox: pdc.ViewBox{Width: 16, Height: 16},
		CommandList: pdc.DrawCommandList{Commands: []pdc.DrawCommand{
			{
				Type:          pdc.DrawCommandTypePrecisePath,
				StrokeColor:   pdc.ColorBlack,
				StrokeWidth:   1,
				PrecisePoints: []pdc.PrecisePoint{precise(3, 8), precise(8, 2), precise(8, 8), precise(13, 9)},
			},
		}},
	}
}

func onOutline(t *testing.T, p pdc.PrecisePoint, right, bottom pdc.Fixed) bool {
	t.Helper()
	return p.X == 0 || p.X == right || p.Y == 0 || p.Y == bottom
}

func TestAttractToSquareZeroProgressIsIdentity(t *testing.T) {
	source := squareTestImage()
	working := source.Clone()
	AttractToSquare(working, 0, nil)
	assert.True(t, pdc.CommandListsEqual(&working.CommandList, &source.CommandList))
}

func TestAttractToSquareFullProgressReachesOutline(t *testing.T) {
	working := squareTestImage().Clone()
	AttractToSquare(working, NormalizedMax, nil)
	right := pdc.FixedFromInt(16)
	bottom := pdc.FixedFromInt(16)
	for i, p := range working.CommandList.Commands[0].PrecisePoints {
		assert.True(t, onOutline(t, p, right, bottom), "point %d = %v not on outline", i, p)
	}
}

func TestAttractToSquareSnapsToNearestEdge(t *testing.T) {
	working := squareTestImage().Clone()
	AttractToSquare(working, NormalizedMax, nil)
	points := working.CommandList.Commands[0].PrecisePoints
	// (3,8) is nearest the left edge, (8,2) the top, (13,9) the right.
	assert.Equal(t, pdc.PrecisePoint{X: 0, Y: precise(0, 8).Y}, points[0])
	assert.Equal(t, pdc.PrecisePoint{X: precise(8, 0).X, Y: 0}, points[1])
	assert.Equal(t, pdc.PrecisePoint{X: pdc.FixedFromInt(16), Y: precise(0, 9).Y}, points[3])
}

func TestAttractToSquareIntermediateProgressMovesMonotonically(t *testing.T) {
	source := squareTestImage()
	half := source.Clone()
	AttractToSquare(half, NormalizedMax/2, nil)
	full := source.Clone()
	AttractToSquare(full, NormalizedMax, nil)
	for i := range source.CommandList.Commands[0].PrecisePoints {
		start := source.CommandList.Commands[0].PrecisePoints[i]
		mid := half.CommandList.Commands[0].PrecisePoints[i]
		end := full.CommandList.Commands[0].PrecisePoints[i]
		assert.True(t, between(mid.X, start.X, end.X), "point %d X %v not between %v and %v", i, mid.X, start.X, end.X)
		assert.True(t, between(mid.Y, start.Y, end.Y), "point %d Y %v not between %v and %v", i, mid.Y, start.Y, end.Y)
	}
}

func TestAttractToSquareCustomCurve(t *testing.T) {
	// A curve that saturates instantly collapses the image at any t > 0.
	instant := func(t Normalized) Normalized {
		if t > 0 {
			return NormalizedMax
		}
		return 0
	}
	working := squareTestImage().Clone()
	AttractToSquare(working, 1, instant)
	right := pdc.FixedFromInt(16)
	bottom := pdc.FixedFromInt(16)
	for i, p := range working.CommandList.Commands[0].PrecisePoints {
		require.True(t, onOutline(t, p, right, bottom), "point %d = %v not on outline", i, p)
	}
}

func TestAttractToSquarePlainPointsRoundToPixels(t *testing.T) {
	image := &pdc.DrawCommandImage{
		Version: pdc.FormatVersion,
		ViewBox: pdc.ViewBox{Width: 10, Height: 10},
		CommandList: pdc.DrawCommandList{Commands: []pdc.DrawCommand{
			{Type: pdc.DrawCommandTypePath, Points: []pdc.Point{{X: 2, Y: 5}, {X: 5, Y: 9}}},
		}},
	}
	working := image.Clone()
	AttractToSquare(working, NormalizedMax, nil)
	assert.Equal(t, pdc.Point{X: 0, Y: 5}, working.CommandList.Commands[0].Points[0])
	assert.Equal(t, pdc.Point{X: 5, Y: 10}, working.CommandList.Commands[0].Points[1])
}

func between(v, a, b pdc.Fixed) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
