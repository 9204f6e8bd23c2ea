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

package pdc

import (
	"iter"
	"slices"
)

// Wire sizes. Commands pack back-to-back with no padding, so every size
// below must be re-derivable from counts alone.
const (
	fileHeaderSize     = 8 // magic + u32 payload size
	commandHeaderSize  = 9
	listHeaderSize     = 2
	imageHeaderSize    = 6
	frameHeaderSize    = 2
	sequenceHeaderSize = 10
	pointSize          = 4
	precisePointSize   = 8
)

func pointSizeForType(commandType uint8) int {
	if commandType == DrawCommandTypePrecisePath {
		return precisePointSize
	}
	return pointSize
}

// DataSize returns the command's exact wire footprint in bytes, recomputed
// from its point count.
func (c *DrawCommand) DataSize() int {
	if c == nil {
		return 0
	}
	return commandHeaderSize + c.PointCount()*pointSizeForType(c.Type)
}

// DataSize returns the list's exact wire footprint in bytes.
func (l *DrawCommandList) DataSize() int {
	if l == nil {
		return 0
	}
	size := listHeaderSize
	for i := range l.Commands {
		size += l.Commands[i].DataSize()
	}
	return size
}

// MaxCommandSize returns the wire footprint of the largest command in the
// list, or zero for an empty list.
func (l *DrawCommandList) MaxCommandSize() int {
	max := 0
	for i := range l.Commands {
		if size := l.Commands[i].DataSize(); size > max {
			max = size
		}
	}
	return max
}

// All iterates the list's commands in draw order. The yielded pointers alias
// the list's storage.
func (l *DrawCommandList) All() iter.Seq2[int, *DrawCommand] {
	return func(yield func(int, *DrawCommand) bool) {
		for i := range l.Commands {
			if !yield(i, &l.Commands[i]) {
				return
			}
		}
	}
}

// DataSize returns the image's exact wire footprint in bytes, excluding the
// file header.
func (i *DrawCommandImage) DataSize() int {
	if i == nil {
		return 0
	}
	return imageHeaderSize + i.CommandList.DataSize()
}

// DataSize returns the frame's exact wire footprint in bytes.
func (f *DrawCommandFrame) DataSize() int {
	if f == nil {
		return 0
	}
	return frameHeaderSize + f.CommandList.DataSize()
}

// DataSize returns the sequence's exact wire footprint in bytes, excluding
// the file header.
func (s *DrawCommandSequence) DataSize() int {
	if s == nil {
		return 0
	}
	size := sequenceHeaderSize
	for i := range s.Frames {
		size += s.Frames[i].DataSize()
	}
	return size
}

// Clone deep-copies the command. Cloning nil returns nil.
func (c *DrawCommand) Clone() *DrawCommand {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Points = slices.Clone(c.Points)
	clone.PrecisePoints = slices.Clone(c.PrecisePoints)
	return &clone
}

// Clone deep-copies the list. Cloning nil returns nil.
func (l *DrawCommandList) Clone() *DrawCommandList {
	if l == nil {
		return nil
	}
	clone := &DrawCommandList{Commands: make([]DrawCommand, len(l.Commands))}
	for i := range l.Commands {
		clone.Commands[i] = *l.Commands[i].Clone()
	}
	return clone
}

// Clone deep-copies the image. A shared image must be cloned before any
// style edit or transform; resource-backed data is never mutated in place.
// Cloning nil returns nil.
func (i *DrawCommandImage) Clone() *DrawCommandImage {
	if i == nil {
		return nil
	}
	clone := *i
	clone.CommandList = *i.CommandList.Clone()
	return &clone
}

// Clone deep-copies the frame. Cloning nil returns nil.
func (f *DrawCommandFrame) Clone() *DrawCommandFrame {
	if f == nil {
		return nil
	}
	clone := *f
	clone.CommandList = *f.CommandList.Clone()
	return &clone
}

// Clone deep-copies the sequence. Cloning nil returns nil.
func (s *DrawCommandSequence) Clone() *DrawCommandSequence {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Frames = make([]DrawCommandFrame, len(s.Frames))
	for i := range s.Frames {
		clone.Frames[i] = *s.Frames[i].Clone()
	}
	return &clone
}
