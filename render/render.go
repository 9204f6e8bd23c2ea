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

// Package render walks draw command lists and dispatches each visible
// command to a stroke/fill primitive layer. It performs no rasterization
// and no allocation beyond per-command point staging.
package render

import (
	"github.com/pebble-dev/pdc-tools/pdc"
)

// Canvas is the primitive layer the dispatcher draws through. Point
// coordinates arrive in eighth-pixel precision with the draw offset already
// applied; implementations only rasterize.
type Canvas interface {
	StrokePath(points []pdc.PrecisePoint, closed bool, color pdc.Color, width uint8)
	FillPath(points []pdc.PrecisePoint, color pdc.Color)
	StrokeCircle(center pdc.PrecisePoint, radius uint16, color pdc.Color, width uint8)
	FillCircle(center pdc.PrecisePoint, radius uint16, color pdc.Color)
}

// Processor inspects or rewrites a command before it is drawn. It receives
// a copy; the source list is never mutated through it.
type Processor func(command *pdc.DrawCommand, index int)

// DrawCommand draws a single command at an offset. Hidden commands draw
// nothing. A transparent stroke color suppresses the stroke regardless of
// width, and a transparent fill color suppresses the fill; a command may
// legitimately draw nothing at all.
func DrawCommand(canvas Canvas, command *pdc.DrawCommand, at pdc.Point) {
	if command == nil || command.Hidden() {
		return
	}
	strokeWidth := command.StrokeWidth
	if command.StrokeColor.Transparent() {
		strokeWidth = 0
	}
	fill := !command.FillColor.Transparent()
	if !fill && strokeWidth == 0 {
		return
	}
	switch command.Type {
	case pdc.DrawCommandTypePath, pdc.DrawCommandTypePrecisePath:
		points := offsetPoints(command, at)
		if len(points) == 0 {
			return
		}
		if fill {
			canvas.FillPath(points, command.FillColor)
		}
		if strokeWidth > 0 {
			canvas.StrokePath(points, !command.PathOpen(), command.StrokeColor, strokeWidth)
		}
	case pdc.DrawCommandTypeCircle:
		if len(command.Points) == 0 {
			return
		}
		center := offsetPoint(command.Points[0].Precise(), at)
		if fill {
			canvas.FillCircle(center, command.Radius, command.FillColor)
		}
		if strokeWidth > 0 {
			canvas.StrokeCircle(center, command.Radius, command.StrokeColor, strokeWidth)
		}
	}
}

// DrawList draws every command in list order at an offset. Later commands
// draw over earlier ones.
func DrawList(canvas Canvas, list *pdc.DrawCommandList, at pdc.Point) {
	if list == nil {
		return
	}
	for _, command := range list.All() {
		DrawCommand(canvas, command, at)
	}
}

// DrawListProcessed draws like DrawList but hands a copy of each command to
// processor first, letting the caller override style or points for a single
// draw without touching the shared list.
func DrawListProcessed(canvas Canvas, list *pdc.DrawCommandList, at pdc.Point, processor Processor) {
	if list == nil {
		return
	}
	if processor == nil {
		DrawList(canvas, list, at)
		return
	}
	for i, command := range list.All() {
		copied := command.Clone()
		processor(copied, i)
		DrawCommand(canvas, copied, at)
	}
}

// DrawImage draws a still image at an offset.
func DrawImage(canvas Canvas, image *pdc.DrawCommandImage, at pdc.Point) {
	if image == nil {
		return
	}
	DrawList(canvas, &image.CommandList, at)
}

// DrawFrame draws one frame of a sequence at an offset.
func DrawFrame(canvas Canvas, frame *pdc.DrawCommandFrame, at pdc.Point) {
	if frame == nil {
		return
	}
	DrawList(canvas, &frame.CommandList, at)
}

func offsetPoint(p pdc.PrecisePoint, at pdc.Point) pdc.PrecisePoint {
	return pdc.PrecisePoint{
		X: p.X + pdc.FixedFromInt(int(at.X)),
		Y: p.Y + pdc.FixedFromInt(int(at.Y)),
	}
}

func offsetPoints(command *pdc.DrawCommand, at pdc.Point) []pdc.PrecisePoint {
	if command.Type == pdc.DrawCommandTypePrecisePath {
		points := make([]pdc.PrecisePoint, len(command.PrecisePoints))
		for i, p := range command.PrecisePoints {
			points[i] = offsetPoint(p, at)
		}
		return points
	}
	points := make([]pdc.PrecisePoint, len(command.Points))
	for i, p := range command.Points {
		points[i] = offsetPoint(p.Precise(), at)
	}
	return points
}
