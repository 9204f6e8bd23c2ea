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
	"errors"
	"fmt"
)

// ErrCorrupt is the root of every validation failure. Callers that only
// care about valid/invalid can errors.Is against it.
var ErrCorrupt = errors.New("corrupt draw command data")

// ResourceKind identifies the payload behind a file magic.
type ResourceKind int

const (
	KindUnknown ResourceKind = iota
	KindImage
	KindSequence
)

// KindOf inspects the magic of a raw PDC resource.
func KindOf(data []byte) ResourceKind {
	if len(data) < 4 {
		return KindUnknown
	}
	switch string(data[:4]) {
	case imageMagic:
		return KindImage
	case sequenceMagic:
		return KindSequence
	}
	return KindUnknown
}

// ValidateResource checks a complete PDC file: magic, size prefix, and the
// full payload structure. The declared payload size must match the actual
// byte count exactly; trailing garbage is rejected.
func ValidateResource(data []byte) error {
	if len(data) < fileHeaderSize {
		return fmt.Errorf("%w: %d bytes is too short for a file header", ErrCorrupt, len(data))
	}
	declared := int(byteOrder.Uint32(data[4:8]))
	payload := data[fileHeaderSize:]
	if declared != len(payload) {
		return fmt.Errorf("%w: declared payload size %d, actual %d", ErrCorrupt, declared, len(payload))
	}
	switch KindOf(data) {
	case KindImage:
		return ValidateImage(payload)
	case KindSequence:
		return ValidateSequence(payload)
	}
	return fmt.Errorf("%w: unknown magic %q", ErrCorrupt, string(data[:4]))
}

// ValidateImage checks a raw image payload against its byte length. The
// required size is re-derived bottom-up from the declared counts; the
// buffer is valid only if it matches exactly. Never trusts a count before
// bounds-checking the bytes that hold it, so validation itself cannot read
// out of range.
func ValidateImage(data []byte) error {
	if len(data) < imageHeaderSize {
		return fmt.Errorf("%w: %d bytes is too short for an image header", ErrCorrupt, len(data))
	}
	if data[0] != FormatVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[0])
	}
	if data[1] != 0 {
		return fmt.Errorf("%w: reserved byte is %d (must be 0)", ErrCorrupt, data[1])
	}
	end, err := validateCommandList(data, imageHeaderSize)
	if err != nil {
		return err
	}
	if end != len(data) {
		return fmt.Errorf("%w: image is %d bytes but its contents need %d", ErrCorrupt, len(data), end)
	}
	return nil
}

// ValidateSequence checks a raw sequence payload against its byte length,
// with the same exact-size contract as ValidateImage.
func ValidateSequence(data []byte) error {
	if len(data) < sequenceHeaderSize {
		return fmt.Errorf("%w: %d bytes is too short for a sequence header", ErrCorrupt, len(data))
	}
	if data[0] != FormatVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[0])
	}
	if data[1] != 0 {
		return fmt.Errorf("%w: reserved byte is %d (must be 0)", ErrCorrupt, data[1])
	}
	frameCount := int(byteOrder.Uint16(data[8:10]))
	if frameCount == 0 {
		return fmt.Errorf("%w: sequence has no frames", ErrCorrupt)
	}
	offset := sequenceHeaderSize
	for i := range frameCount {
		if len(data)-offset < frameHeaderSize {
			return fmt.Errorf("%w: frame %d header out of bounds", ErrCorrupt, i)
		}
		end, err := validateCommandList(data, offset+frameHeaderSize)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		offset = end
	}
	if offset != len(data) {
		return fmt.Errorf("%w: sequence is %d bytes but its contents need %d", ErrCorrupt, len(data), offset)
	}
	return nil
}

// validateCommandList walks a packed command list starting at offset and
// returns the offset just past it.
func validateCommandList(data []byte, offset int) (int, error) {
	if len(data)-offset < listHeaderSize {
		return 0, fmt.Errorf("%w: command list header out of bounds", ErrCorrupt)
	}
	commandCount := int(byteOrder.Uint16(data[offset:]))
	if commandCount == 0 {
		return 0, fmt.Errorf("%w: command list is empty", ErrCorrupt)
	}
	offset += listHeaderSize
	for i := range commandCount {
		next, err := validateCommand(data, offset)
		if err != nil {
			return 0, fmt.Errorf("command %d: %w", i, err)
		}
		offset = next
	}
	return offset, nil
}

// validateCommand checks one command at offset and returns the offset just
// past its point payload.
func validateCommand(data []byte, offset int) (int, error) {
	if len(data)-offset < commandHeaderSize {
		return 0, fmt.Errorf("%w: command header out of bounds", ErrCorrupt)
	}
	commandType := data[offset]
	switch commandType {
	case DrawCommandTypePath, DrawCommandTypeCircle, DrawCommandTypePrecisePath:
	default:
		return 0, fmt.Errorf("%w: unknown command type %d", ErrCorrupt, commandType)
	}
	pointCount := int(byteOrder.Uint16(data[offset+7:]))
	if pointCount == 0 {
		return 0, fmt.Errorf("%w: command has no points", ErrCorrupt)
	}
	if commandType == DrawCommandTypeCircle && pointCount != 1 {
		return 0, fmt.Errorf("%w: circle has %d points (must be 1)", ErrCorrupt, pointCount)
	}
	payload := pointCount * pointSizeForType(commandType)
	if len(data)-offset-commandHeaderSize < payload {
		return 0, fmt.Errorf("%w: %d points of type %d overrun the buffer", ErrCorrupt, pointCount, commandType)
	}
	return offset + commandHeaderSize + payload, nil
}
