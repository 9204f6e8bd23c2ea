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

// Package raster renders draw command images to raster output through the
// gg software renderer.
package raster

import (
	"github.com/gogpu/gg"

	"github.com/pebble-dev/pdc-tools/pdc"
	"github.com/pebble-dev/pdc-tools/render"
)

// Canvas implements render.Canvas on a gg drawing context. Strokes use
// round caps and joins, matching the firmware's stroke primitives.
type Canvas struct {
	dc  *gg.Context
	err error
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas wraps an existing drawing context.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Err returns the first error any primitive reported, if any.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) record(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func (c *Canvas) buildPath(points []pdc.PrecisePoint, closed bool) {
	c.dc.ClearPath()
	for i, p := range points {
		if i == 0 {
			c.dc.MoveTo(p.X.Float(), p.Y.Float())
			continue
		}
		c.dc.LineTo(p.X.Float(), p.Y.Float())
	}
	if closed {
		c.dc.ClosePath()
	}
}

func (c *Canvas) StrokePath(points []pdc.PrecisePoint, closed bool, color pdc.Color, width uint8) {
	if len(points) == 0 {
		return
	}
	c.buildPath(points, closed)
	c.dc.SetColor(color)
	c.dc.SetLineWidth(float64(width))
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.record(c.dc.Stroke())
}

func (c *Canvas) FillPath(points []pdc.PrecisePoint, color pdc.Color) {
	if len(points) == 0 {
		return
	}
	c.buildPath(points, true)
	c.dc.SetColor(color)
	c.record(c.dc.Fill())
}

func (c *Canvas) StrokeCircle(center pdc.PrecisePoint, radius uint16, color pdc.Color, width uint8) {
	c.dc.ClearPath()
	c.dc.DrawCircle(center.X.Float(), center.Y.Float(), float64(radius))
	c.dc.SetColor(color)
	c.dc.SetLineWidth(float64(width))
	c.record(c.dc.Stroke())
}

func (c *Canvas) FillCircle(center pdc.PrecisePoint, radius uint16, color pdc.Color) {
	c.dc.ClearPath()
	c.dc.DrawCircle(center.X.Float(), center.Y.Float(), float64(radius))
	c.dc.SetColor(color)
	c.record(c.dc.Fill())
}
