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
	"github.com/pebble-dev/pdc-tools/pdc"
)

// SinglePlayDuration returns the duration of one loop of the sequence in
// milliseconds. Zero-duration frames are skipped during playback and
// contribute nothing.
func SinglePlayDuration(seq *pdc.DrawCommandSequence) uint32 {
	if seq == nil {
		return 0
	}
	var total uint32
	for i := range seq.Frames {
		total += uint32(seq.Frames[i].DurationMs)
	}
	return total
}

// TotalDuration returns the duration of the full animation. A sequence that
// loops forever reports infinite=true; a play count of zero freezes on the
// last frame and reports zero.
func TotalDuration(seq *pdc.DrawCommandSequence) (durationMs uint32, infinite bool) {
	if seq == nil {
		return 0, false
	}
	switch seq.PlayCount {
	case 0:
		return 0, false
	case pdc.PlayCountInfinite:
		return 0, true
	}
	return SinglePlayDuration(seq) * uint32(seq.PlayCount), false
}

// FrameByIndex returns the i'th frame, or nil when i is out of range.
func FrameByIndex(seq *pdc.DrawCommandSequence, i int) *pdc.DrawCommandFrame {
	if seq == nil || i < 0 || i >= len(seq.Frames) {
		return nil
	}
	return &seq.Frames[i]
}

// FrameByElapsed resolves which frame is current after elapsedMs of
// animation time. A play count of zero freezes on the last frame, the
// infinite sentinel loops forever, and a finite play count clamps to the
// last frame once the animation has played out. Frames with zero duration
// are never current. Returns nil only when no frame has a nonzero duration.
func FrameByElapsed(seq *pdc.DrawCommandSequence, elapsedMs uint32) *pdc.DrawCommandFrame {
	if seq == nil || len(seq.Frames) == 0 {
		return nil
	}
	singlePlay := SinglePlayDuration(seq)
	if singlePlay == 0 {
		return nil
	}
	if seq.PlayCount == 0 {
		return lastSelectable(seq)
	}
	if seq.PlayCount != pdc.PlayCountInfinite {
		total := uint64(singlePlay) * uint64(seq.PlayCount)
		if uint64(elapsedMs) >= total {
			return lastSelectable(seq)
		}
	}
	t := elapsedMs % singlePlay
	var accumulated uint32
	for i := range seq.Frames {
		duration := uint32(seq.Frames[i].DurationMs)
		if duration == 0 {
			continue
		}
		if t < accumulated+duration {
			return &seq.Frames[i]
		}
		accumulated += duration
	}
	// Unreachable: t < singlePlay and the windows cover [0, singlePlay).
	return lastSelectable(seq)
}

func lastSelectable(seq *pdc.DrawCommandSequence) *pdc.DrawCommandFrame {
	for i := len(seq.Frames) - 1; i >= 0; i-- {
		if seq.Frames[i].DurationMs != 0 {
			return &seq.Frames[i]
		}
	}
	return nil
}
