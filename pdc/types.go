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

// Package pdc implements the Pebble Draw Command vector-graphics format:
// the binary codec, the structural validator, and the size/clone accounting
// used by renderers and transforms.
package pdc

// FormatVersion is the only supported PDC format version.
const FormatVersion = 1

// PlayCountInfinite makes a sequence loop forever. A play count of zero
// freezes a sequence on its last frame.
const PlayCountInfinite = 0xFFFF

// Fixed is a fixed-point coordinate in eighth-pixel units (three fractional
// bits), the precision used by precise paths.
type Fixed int32

// FixedFromInt converts a whole-pixel coordinate to Fixed.
func FixedFromInt(v int) Fixed {
	return Fixed(v << 3)
}

// Round returns the nearest whole-pixel coordinate. Runs in 64 bits so
// negating the most negative Fixed cannot wrap.
func (f Fixed) Round() int {
	v := int64(f)
	if v < 0 {
		return -int((-v + 4) >> 3)
	}
	return int((v + 4) >> 3)
}

// Float returns the coordinate in pixels.
func (f Fixed) Float() float64 {
	return float64(f) / 8
}

// Point is a whole-pixel point, as stored by Path and Circle commands.
type Point struct {
	X, Y int16
}

// Precise converts the point to eighth-pixel precision.
func (p Point) Precise() PrecisePoint {
	return PrecisePoint{X: FixedFromInt(int(p.X)), Y: FixedFromInt(int(p.Y))}
}

// PrecisePoint is an eighth-pixel point, as stored by PrecisePath commands.
// It takes twice the storage of a plain Point on the wire.
type PrecisePoint struct {
	X, Y Fixed
}

// Round returns the nearest whole-pixel point.
func (p PrecisePoint) Round() Point {
	return Point{X: int16(p.X.Round()), Y: int16(p.Y.Round())}
}

// ViewBox is the bounding size of an image or sequence.
type ViewBox struct {
	Width, Height uint16
}

const (
	DrawCommandTypeInvalid     = 0
	DrawCommandTypePath        = 1
	DrawCommandTypeCircle      = 2
	DrawCommandTypePrecisePath = 3
)

const (
	DrawCommandFlagHidden = 1 << 0
)

// The path-open bit lives in the low bit of the radius field, which circles
// use for their actual radius.
const pathOpenMask = 1 << 0

// DrawCommand is one drawable primitive. Path and Circle commands carry
// whole-pixel Points; PrecisePath commands carry PrecisePoints. Exactly one
// of the two slices is populated, matching Type.
type DrawCommand struct {
	Type          uint8
	Flags         uint8
	StrokeColor   Color
	StrokeWidth   uint8
	FillColor     Color
	Radius        uint16
	Points        []Point
	PrecisePoints []PrecisePoint
}

// Hidden reports whether the command is skipped when drawing.
func (c *DrawCommand) Hidden() bool {
	return c.Flags&DrawCommandFlagHidden != 0
}

// SetHidden marks the command hidden or visible.
func (c *DrawCommand) SetHidden(hidden bool) {
	if hidden {
		c.Flags |= DrawCommandFlagHidden
	} else {
		c.Flags &^= DrawCommandFlagHidden
	}
}

// PathOpen reports whether a path command is stroked open rather than
// closed. Meaningless for circles, which use the shared field as a radius.
func (c *DrawCommand) PathOpen() bool {
	return c.Type != DrawCommandTypeCircle && c.Radius&pathOpenMask != 0
}

// SetPathOpen sets the open-path bit on a path command.
func (c *DrawCommand) SetPathOpen(open bool) {
	if c.Type == DrawCommandTypeCircle {
		return
	}
	if open {
		c.Radius |= pathOpenMask
	} else {
		c.Radius &^= pathOpenMask
	}
}

// PointCount returns the number of points the command carries.
func (c *DrawCommand) PointCount() int {
	if c.Type == DrawCommandTypePrecisePath {
		return len(c.PrecisePoints)
	}
	return len(c.Points)
}

type DrawCommandList struct {
	Commands []DrawCommand
}

type DrawCommandFrame struct {
	DurationMs  uint16
	CommandList DrawCommandList
}

type DrawCommandImage struct {
	Version     uint8
	Reserved    uint8
	ViewBox     ViewBox
	CommandList DrawCommandList
}

type DrawCommandSequence struct {
	Version   uint8
	Reserved  uint8
	ViewBox   ViewBox
	PlayCount uint16
	Frames    []DrawCommandFrame
}

func CommandListsEqual(a, b *DrawCommandList) bool {
	if len(a.Commands) != len(b.Commands) {
		return false
	}
	for i := range a.Commands {
		if !commandsEqual(&a.Commands[i], &b.Commands[i]) {
			return false
		}
	}
	return true
}

func commandsEqual(a, b *DrawCommand) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Flags != b.Flags {
		return false
	}
	if a.StrokeColor != b.StrokeColor {
		return false
	}
	if a.StrokeWidth != b.StrokeWidth {
		return false
	}
	if a.FillColor != b.FillColor {
		return false
	}
	if a.Radius != b.Radius {
		return false
	}
	if len(a.Points) != len(b.Points) {
		return false
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			return false
		}
	}
	if len(a.PrecisePoints) != len(b.PrecisePoints) {
		return false
	}
	for i := range a.PrecisePoints {
		if a.PrecisePoints[i] != b.PrecisePoints[i] {
			return false
		}
	}
	return true
}
