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

// Package transform animates the point data of draw command images with
// fixed-point interpolation. Transforms mutate their input destructively,
// so callers apply them to an owned clone of the source image and re-clone
// to replay from the start; resource-backed originals are never written.
package transform

import (
	"github.com/pebble-dev/pdc-tools/pdc"
)

// Normalized is animation progress on a fixed-point scale from 0 to
// NormalizedMax.
type Normalized int32

// NormalizedMax is full progress.
const NormalizedMax Normalized = 65535

// Curve reshapes progress. It must be monotonic and map 0 to 0 and
// NormalizedMax to NormalizedMax so transforms reproduce their start and
// end poses exactly.
type Curve func(t Normalized) Normalized

// Linear is the identity curve, the default for every transform.
func Linear(t Normalized) Normalized {
	return t
}

// EaseInOut is a quadratic curve that accelerates through the first half
// and decelerates through the second.
func EaseInOut(t Normalized) Normalized {
	t = clampProgress(t)
	half := NormalizedMax / 2
	if t <= half {
		return Normalized(2 * int64(t) * int64(t) / int64(NormalizedMax))
	}
	inv := int64(NormalizedMax - t)
	return NormalizedMax - Normalized(2*inv*inv/int64(NormalizedMax))
}

func clampProgress(t Normalized) Normalized {
	if t < 0 {
		return 0
	}
	if t > NormalizedMax {
		return NormalizedMax
	}
	return t
}

// lerpFixed interpolates between fixed-point coordinates entirely in 64
// bits. Both the to-from span and the product run widened, so neither can
// wrap at the extremes of the Fixed range.
func lerpFixed(from, to pdc.Fixed, t Normalized) pdc.Fixed {
	return pdc.Fixed(int64(from) + (int64(to)-int64(from))*int64(t)/int64(NormalizedMax))
}

func lerpPoint(from, to pdc.PrecisePoint, t Normalized) pdc.PrecisePoint {
	return pdc.PrecisePoint{
		X: lerpFixed(from.X, to.X, t),
		Y: lerpFixed(from.Y, to.Y, t),
	}
}
