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

// Rect is a whole-pixel rectangle.
type Rect struct {
	X, Y int16
	W, H uint16
}

type fixedRect struct {
	x, y, w, h pdc.Fixed
}

func (r Rect) fixed() fixedRect {
	return fixedRect{
		x: pdc.FixedFromInt(int(r.X)),
		y: pdc.FixedFromInt(int(r.Y)),
		w: pdc.FixedFromInt(int(r.W)),
		h: pdc.FixedFromInt(int(r.H)),
	}
}

// ScaleConfig describes a segmented scale-to animation. Points are assumed
// to start in From-relative coordinates and end mapped into To. Lookup and
// Delay stagger the motion: the point nearest the lookup's pivot starts
// immediately, the farthest starts after the Delay fraction of the progress
// window has passed, and every point finishes by NormalizedMax.
type ScaleConfig struct {
	From, To Rect
	// Lookup orders points for the stagger. Nil disables staggering.
	Lookup *IndexLookupByDistance
	// Delay is the fraction of total progress consumed by start offsets,
	// on the Normalized scale. Must be below NormalizedMax.
	Delay Normalized
	// Curve reshapes each point's local progress. Nil means linear.
	Curve Curve
}

// ScaleSegmented scales and translates the image's points from From to To,
// staggered per point by distance rank. The image is mutated in place and
// must be an owned clone; replaying from t=0 requires re-cloning the
// unmodified source.
func ScaleSegmented(image *pdc.DrawCommandImage, cfg ScaleConfig, t Normalized) {
	if image == nil {
		return
	}
	curve := cfg.Curve
	if curve == nil {
		curve = Linear
	}
	delay := clampProgress(cfg.Delay)
	if delay >= NormalizedMax {
		delay = NormalizedMax - 1
	}
	window := int64(NormalizedMax - delay)
	t = clampProgress(t)
	count := cfg.Lookup.Len()
	from := cfg.From.fixed()
	to := cfg.To.fixed()
	mapImagePoints(image, func(index int, p pdc.PrecisePoint) pdc.PrecisePoint {
		local := int64(t)
		if cfg.Lookup != nil && count > 1 && index < count {
			start := int64(delay) * int64(cfg.Lookup.Rank(index)) / int64(count-1)
			local = (int64(t) - start) * int64(NormalizedMax) / window
			if local < 0 {
				local = 0
			}
			if local > int64(NormalizedMax) {
				local = int64(NormalizedMax)
			}
		}
		u := curve(Normalized(local))
		dst := fixedRect{
			x: lerpFixed(from.x, to.x, u),
			y: lerpFixed(from.y, to.y, u),
			w: lerpFixed(from.w, to.w, u),
			h: lerpFixed(from.h, to.h, u),
		}
		return pdc.PrecisePoint{
			X: scaleCoord(p.X, from.x, from.w, dst.x, dst.w),
			Y: scaleCoord(p.Y, from.y, from.h, dst.y, dst.h),
		}
	})
}

// scaleCoord maps v from the source span to the destination span. The
// v-srcOrigin offset and the offset-times-size product both run in 64 bits,
// so the mapping is safe at the extremes of the Fixed range whether the
// caller thinks of it as scale-then-translate or translate-then-scale.
func scaleCoord(v, srcOrigin, srcSize, dstOrigin, dstSize pdc.Fixed) pdc.Fixed {
	if srcSize == 0 {
		return dstOrigin
	}
	return pdc.Fixed(int64(dstOrigin) + (int64(v)-int64(srcOrigin))*int64(dstSize)/int64(srcSize))
}
