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

// ImagePoints flattens every point of the image in command order, promoted
// to eighth-pixel precision. The flat index space is shared with
// IndexLookupByDistance and the per-point stagger of ScaleSegmented.
func ImagePoints(image *pdc.DrawCommandImage) []pdc.PrecisePoint {
	if image == nil {
		return nil
	}
	var points []pdc.PrecisePoint
	for _, command := range image.CommandList.All() {
		if command.Type == pdc.DrawCommandTypePrecisePath {
			points = append(points, command.PrecisePoints...)
			continue
		}
		for _, p := range command.Points {
			points = append(points, p.Precise())
		}
	}
	return points
}

// mapImagePoints rewrites every point of the image through fn, which
// receives the point in eighth-pixel precision and its flat index. Plain
// points round back to whole pixels, so repeated mapping of a plain-point
// image accumulates rounding; transforms therefore always run against a
// fresh clone.
func mapImagePoints(image *pdc.DrawCommandImage, fn func(index int, p pdc.PrecisePoint) pdc.PrecisePoint) {
	if image == nil {
		return
	}
	index := 0
	for _, command := range image.CommandList.All() {
		if command.Type == pdc.DrawCommandTypePrecisePath {
			for i, p := range command.PrecisePoints {
				command.PrecisePoints[i] = fn(index, p)
				index++
			}
			continue
		}
		for i, p := range command.Points {
			command.Points[i] = fn(index, p.Precise()).Round()
			index++
		}
	}
}
