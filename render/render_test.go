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

package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebble-dev/pdc-tools/pdc"
)

// recordingCanvas captures primitive invocations as readable strings.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) StrokePath(points []pdc.PrecisePoint, closed bool, color pdc.Color, width uint8) {
	c.calls = append(c.calls, fmt.Sprintf("strokePath n=%d closed=%t color=%02x width=%d p0=%v", len(points), closed, uint8(color), width, points[0]))
}

func (c *recordingCanvas) FillPath(points []pdc.PrecisePoint, color pdc.Color) {
	c.calls = append(c.calls, fmt.Sprintf("fillPath n=%d color=%02x p0=%v", len(points), uint8(color), points[0]))
}

func (c *recordingCanvas) StrokeCircle(center pdc.PrecisePoint, radius uint16, color pdc.Color, width uint8) {
	c.calls = append(c.calls, fmt.Sprintf("strokeCircle c=%v r=%d color=%02x width=%d", center, radius, uint8(color), width))
}

func (c *recordingCanvas) FillCircle(center pdc.PrecisePoint, radius uint16, color pdc.Color) {
	c.calls = append(c.calls, fmt.Sprintf("fillCircle c=%v r=%d color=%02x", center, radius, uint8(color)))
}

func pathCommand() *pdc.DrawCommand {
	return &pdc.DrawCommand{
		Type:        pdc.DrawCommandTypePath,
		StrokeColor: pdc.ColorBlack,
		StrokeWidth: 2,
		FillColor:   pdc.ColorWhite,
		Points:      []pdc.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}},
	}
}

func TestDrawCommandFillAndStroke(t *testing.T) {
	canvas := &recordingCanvas{}
	DrawCommand(canvas, pathCommand(), pdc.Point{})
	require.Len(t, canvas.calls, 2)
	assert.Contains(t, canvas.calls[0], "fillPath")
	assert.Contains(t, canvas.calls[1], "strokePath")
	assert.Contains(t, canvas.calls[1], "closed=true")
}

func TestDrawCommandStrokeOnly(t *testing.T) {
	command := pathCommand()
	command.FillColor = pdc.ColorClear
	command.SetPathOpen(true)
	canvas := &recordingCanvas{}
	DrawCommand(canvas, command, pdc.Point{})
	require.Len(t, canvas.calls, 1)
	assert.Contains(t, canvas.calls[0], "strokePath")
	assert.Contains(t, canvas.calls[0], "closed=false")
}

func TestDrawCommandFillOnly(t *testing.T) {
	// Width zero and transparent stroke color both suppress the stroke.
	for _, mutate := range []func(*pdc.DrawCommand){
		func(c *pdc.DrawCommand) { c.StrokeWidth = 0 },
		func(c *pdc.DrawCommand) { c.StrokeColor = pdc.ColorClear },
	} {
		command := pathCommand()
		mutate(command)
		canvas := &recordingCanvas{}
		DrawCommand(canvas, command, pdc.Point{})
		require.Len(t, canvas.calls, 1)
		assert.Contains(t, canvas.calls[0], "fillPath")
	}
}

func TestDrawCommandNothingToDraw(t *testing.T) {
	command := pathCommand()
	command.FillColor = pdc.ColorClear
	command.StrokeColor = pdc.ColorClear
	canvas := &recordingCanvas{}
	DrawCommand(canvas, command, pdc.Point{})
	assert.Empty(t, canvas.calls)
}

func TestDrawCommandHidden(t *testing.T) {
	command := pathCommand()
	command.SetHidden(true)
	canvas := &recordingCanvas{}
	DrawCommand(canvas, command, pdc.Point{})
	assert.Empty(t, canvas.calls)
}

// Hiding a command and then revealing it again must reproduce the original
// draw calls exactly.
func TestHiddenToggleIsIdempotent(t *testing.T) {
	command := pathCommand()
	before := &recordingCanvas{}
	DrawCommand(before, command, pdc.Point{})

	command.SetHidden(true)
	hidden := &recordingCanvas{}
	DrawCommand(hidden, command, pdc.Point{})
	require.Empty(t, hidden.calls)

	command.SetHidden(false)
	after := &recordingCanvas{}
	DrawCommand(after, command, pdc.Point{})
	assert.Equal(t, before.calls, after.calls)
}

func TestDrawCircle(t *testing.T) {
	command := &pdc.DrawCommand{
		Type:        pdc.DrawCommandTypeCircle,
		StrokeColor: pdc.ColorBlack,
		StrokeWidth: 1,
		FillColor:   pdc.ColorWhite,
		Radius:      6,
		Points:      []pdc.Point{{X: 10, Y: 10}},
	}
	canvas := &recordingCanvas{}
	DrawCommand(canvas, command, pdc.Point{})
	require.Len(t, canvas.calls, 2)
	assert.Contains(t, canvas.calls[0], "fillCircle")
	assert.Contains(t, canvas.calls[0], "r=6")
	assert.Contains(t, canvas.calls[1], "strokeCircle")
}

func TestDrawOffsetIsApplied(t *testing.T) {
	command := pathCommand()
	canvas := &recordingCanvas{}
	DrawCommand(canvas, command, pdc.Point{X: 3, Y: 5})
	require.NotEmpty(t, canvas.calls)
	// 3 and 5 pixels in eighth-pixel units.
	assert.Contains(t, canvas.calls[0], fmt.Sprintf("p0=%v", pdc.PrecisePoint{X: 24, Y: 40}))
	// The source command is untouched.
	assert.Equal(t, pdc.Point{X: 0, Y: 0}, command.Points[0])
}

func TestDrawListOrder(t *testing.T) {
	list := &pdc.DrawCommandList{Commands: []pdc.DrawCommand{*pathCommand(), *pathCommand()}}
	list.Commands[1].FillColor = pdc.ColorBlack
	list.Commands[1].StrokeColor = pdc.ColorClear
	canvas := &recordingCanvas{}
	DrawList(canvas, list, pdc.Point{})
	require.Len(t, canvas.calls, 3)
	assert.Contains(t, canvas.calls[2], fmt.Sprintf("color=%02x", uint8(pdc.ColorBlack)))
}

func TestDrawListProcessedCopies(t *testing.T) {
	list := &pdc.DrawCommandList{Commands: []pdc.DrawCommand{*pathCommand()}}
	canvas := &recordingCanvas{}
	DrawListProcessed(canvas, list, pdc.Point{}, func(command *pdc.DrawCommand, index int) {
		command.StrokeColor = pdc.ColorWhite
		command.Points[0].X = 7
	})
	require.Len(t, canvas.calls, 2)
	assert.Contains(t, canvas.calls[1], fmt.Sprintf("color=%02x", uint8(pdc.ColorWhite)))
	// The processor saw a copy; the list still has the original style and
	// points.
	assert.Equal(t, pdc.ColorBlack, list.Commands[0].StrokeColor)
	assert.Equal(t, pdc.Point{X: 0, Y: 0}, list.Commands[0].Points[0])
}

func TestDrawPrecisePathKeepsSubpixelCoordinates(t *testing.T) {
	command := &pdc.DrawCommand{
		Type:          pdc.DrawCommandTypePrecisePath,
		StrokeColor:   pdc.ColorBlack,
		StrokeWidth:   1,
		FillColor:     pdc.ColorClear,
		PrecisePoints: []pdc.PrecisePoint{{X: 12, Y: 4}, {X: 20, Y: 28}},
	}
	canvas := &recordingCanvas{}
	DrawCommand(canvas, command, pdc.Point{})
	require.Len(t, canvas.calls, 1)
	assert.Contains(t, canvas.calls[0], fmt.Sprintf("p0=%v", pdc.PrecisePoint{X: 12, Y: 4}))
}
