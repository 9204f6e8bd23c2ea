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

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebble-dev/pdc-tools/pdc"
)

func markerList(marker int16) pdc.DrawCommandList {
	return pdc.DrawCommandList{Commands: []pdc.DrawCommand{{
		Type:        pdc.DrawCommandTypePath,
		StrokeColor: pdc.ColorBlack,
		StrokeWidth: 1,
		Points:      []pdc.Point{{X: marker, Y: 0}, {X: marker, Y: 1}},
	}}}
}

// marker identifies which frame a selector returned.
func marker(t *testing.T, frame *pdc.DrawCommandFrame) int16 {
	t.Helper()
	require.NotNil(t, frame)
	return frame.CommandList.Commands[0].Points[0].X
}

func twoFrameSequence(playCount uint16) *pdc.DrawCommandSequence {
	return &pdc.DrawCommandSequence{
		Version:   pdc.FormatVersion,
		ViewBox:   pdc.ViewBox{Width: 10, Height: 10},
		PlayCount: playCount,
		Frames: []pdc.DrawCommandFrame{
			{DurationMs: 15, CommandList: markerList(0)},
			{DurationMs: 30, CommandList: markerList(1)},
		},
	}
}

func TestFrameByElapsedSinglePlay(t *testing.T) {
	seq := twoFrameSequence(1)
	for _, elapsed := range []uint32{0, 7, 14} {
		assert.EqualValues(t, 0, marker(t, FrameByElapsed(seq, elapsed)), "elapsed=%d", elapsed)
	}
	for _, elapsed := range []uint32{15, 30, 44} {
		assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, elapsed)), "elapsed=%d", elapsed)
	}
	// Past the end of a single play, clamp to the last frame.
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 45)))
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 1000)))
}

func TestFrameByElapsedFinitePlayCount(t *testing.T) {
	seq := twoFrameSequence(2)
	// Second loop.
	for _, elapsed := range []uint32{45, 50, 59} {
		assert.EqualValues(t, 0, marker(t, FrameByElapsed(seq, elapsed)), "elapsed=%d", elapsed)
	}
	for _, elapsed := range []uint32{60, 89} {
		assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, elapsed)), "elapsed=%d", elapsed)
	}
	// Played out: clamp to the last frame forever.
	for _, elapsed := range []uint32{90, 91, 10000} {
		assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, elapsed)), "elapsed=%d", elapsed)
	}
}

func TestFrameByElapsedInfinite(t *testing.T) {
	seq := twoFrameSequence(pdc.PlayCountInfinite)
	// 225 = 5 full loops; the sixth starts at frame 0.
	assert.EqualValues(t, 0, marker(t, FrameByElapsed(seq, 225)))
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 225+15)))
}

func TestFrameByElapsedFreeze(t *testing.T) {
	seq := twoFrameSequence(0)
	for _, elapsed := range []uint32{0, 1, 44, 500} {
		assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, elapsed)), "elapsed=%d", elapsed)
	}
}

func TestFrameByElapsedSkipsZeroDurationFrames(t *testing.T) {
	seq := &pdc.DrawCommandSequence{
		Version:   pdc.FormatVersion,
		PlayCount: 1,
		Frames: []pdc.DrawCommandFrame{
			{DurationMs: 0, CommandList: markerList(0)},
			{DurationMs: 20, CommandList: markerList(1)},
			{DurationMs: 0, CommandList: markerList(2)},
		},
	}
	// Never frame 0, even at elapsed 0; never frame 2, even when clamping
	// to "the last frame".
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 0)))
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 19)))
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 20)))
	assert.EqualValues(t, 1, marker(t, FrameByElapsed(seq, 999)))
}

func TestFrameByElapsedAllZeroDurations(t *testing.T) {
	seq := &pdc.DrawCommandSequence{
		Version:   pdc.FormatVersion,
		PlayCount: 1,
		Frames:    []pdc.DrawCommandFrame{{DurationMs: 0, CommandList: markerList(0)}},
	}
	assert.Nil(t, FrameByElapsed(seq, 0))
}

func TestFrameByIndex(t *testing.T) {
	seq := twoFrameSequence(1)
	require.NotNil(t, FrameByIndex(seq, 0))
	assert.EqualValues(t, 0, marker(t, FrameByIndex(seq, 0)))
	assert.EqualValues(t, 1, marker(t, FrameByIndex(seq, 1)))
	assert.Nil(t, FrameByIndex(seq, -1))
	assert.Nil(t, FrameByIndex(seq, 2))
	assert.Nil(t, FrameByIndex(nil, 0))
}

func TestDurations(t *testing.T) {
	seq := twoFrameSequence(2)
	assert.EqualValues(t, 45, SinglePlayDuration(seq))
	total, infinite := TotalDuration(seq)
	assert.False(t, infinite)
	assert.EqualValues(t, 90, total)

	_, infinite = TotalDuration(twoFrameSequence(pdc.PlayCountInfinite))
	assert.True(t, infinite)

	total, infinite = TotalDuration(twoFrameSequence(0))
	assert.False(t, infinite)
	assert.Zero(t, total)
}

func TestConstructMergesEqualFrames(t *testing.T) {
	listA := markerList(0)
	listB := markerList(1)
	images := []*pdc.DrawCommandImage{
		{Version: pdc.FormatVersion, ViewBox: pdc.ViewBox{Width: 10, Height: 10}, CommandList: *listA.Clone()},
		{Version: pdc.FormatVersion, ViewBox: pdc.ViewBox{Width: 10, Height: 10}, CommandList: *listA.Clone()},
		{Version: pdc.FormatVersion, ViewBox: pdc.ViewBox{Width: 10, Height: 10}, CommandList: *listB.Clone()},
	}
	seq, err := Construct(images, 33, 1)
	require.NoError(t, err)
	require.Len(t, seq.Frames, 2)
	assert.EqualValues(t, 66, seq.Frames[0].DurationMs)
	assert.EqualValues(t, 33, seq.Frames[1].DurationMs)
}

func TestConstructRejectsMismatchedViewboxes(t *testing.T) {
	list := markerList(0)
	images := []*pdc.DrawCommandImage{
		{Version: pdc.FormatVersion, ViewBox: pdc.ViewBox{Width: 10, Height: 10}, CommandList: *list.Clone()},
		{Version: pdc.FormatVersion, ViewBox: pdc.ViewBox{Width: 12, Height: 10}, CommandList: *list.Clone()},
	}
	_, err := Construct(images, 33, 1)
	assert.Error(t, err)
}
