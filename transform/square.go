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
	"github.com/pebble-dev/pdc-tools/pdc"
)

// AttractToSquare pulls every point of the image toward the outline of its
// viewbox rectangle. Each point's target is its projection onto the nearest
// edge, so at t=0 the image is unchanged and at t=NormalizedMax it has
// collapsed onto the outline. curve may be nil for linear progress.
//
// The image is mutated in place and must be an owned clone; replaying from
// t=0 requires re-cloning the unmodified source.
func AttractToSquare(image *pdc.DrawCommandImage, t Normalized, curve Curve) {
	if image == nil {
		return
	}
	if curve == nil {
		curve = Linear
	}
	t = curve(clampProgress(t))
	right := pdc.FixedFromInt(int(image.ViewBox.Width))
	bottom := pdc.FixedFromInt(int(image.ViewBox.Height))
	mapImagePoints(image, func(_ int, p pdc.PrecisePoint) pdc.PrecisePoint {
		target := snapToOutline(p, right, bottom)
		return lerpPoint(p, target, t)
	})
}

// snapToOutline projects p onto the nearest edge of the rectangle spanning
// (0,0)..(right,bottom). Points outside the rectangle clamp onto it first.
func snapToOutline(p pdc.PrecisePoint, right, bottom pdc.Fixed) pdc.PrecisePoint {
	x := clampFixed(p.X, 0, right)
	y := clampFixed(p.Y, 0, bottom)
	toLeft := x
	toRight := right - x
	toTop := y
	toBottom := bottom - y
	switch min(toLeft, toRight, toTop, toBottom) {
	case toLeft:
		return pdc.PrecisePoint{X: 0, Y: y}
	case toRight:
		return pdc.PrecisePoint{X: right, Y: y}
	case toTop:
		return pdc.PrecisePoint{X: x, Y: 0}
	default:
		return pdc.PrecisePoint{X: x, Y: bottom}
	}
}

func clampFixed(v, lo, hi pdc.Fixed) pdc.Fixed {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
