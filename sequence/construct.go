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

// Package sequence selects frames for playback and assembles sequences from
// individual images.
package sequence

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pebble-dev/pdc-tools/pdc"
)

type inputFile struct {
	filename string
	image    *pdc.DrawCommandImage
}

// Construct builds a sequence from still images, in input order. Every
// image must share a viewbox. Consecutive images with identical command
// lists collapse into one longer frame.
func Construct(images []*pdc.DrawCommandImage, frameDurationMs, playCount uint16) (*pdc.DrawCommandSequence, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no input images")
	}
	viewBox := images[0].ViewBox
	for i, image := range images {
		if image.ViewBox != viewBox {
			return nil, fmt.Errorf("image %d has a different viewbox (%d, %d) to image 0 (%d, %d)", i, image.ViewBox.Width, image.ViewBox.Height, viewBox.Width, viewBox.Height)
		}
	}
	seq := &pdc.DrawCommandSequence{
		Version:   pdc.FormatVersion,
		ViewBox:   viewBox,
		PlayCount: playCount,
	}
	for _, image := range images {
		if len(seq.Frames) > 0 {
			last := &seq.Frames[len(seq.Frames)-1]
			if pdc.CommandListsEqual(&last.CommandList, &image.CommandList) {
				last.DurationMs += frameDurationMs
				continue
			}
		}
		seq.Frames = append(seq.Frames, pdc.DrawCommandFrame{
			DurationMs:  frameDurationMs,
			CommandList: *image.CommandList.Clone(),
		})
	}
	return seq, nil
}

// ConstructFromGlob loads every PDCI matching pattern, joins them with
// Construct, and writes the resulting PDCS to output. Progress is reported
// on report; pass io.Discard to silence it.
func ConstructFromGlob(report io.Writer, pattern, output string, frameDurationMs, playCount uint16) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no files found matching %q", pattern)
	}
	inputs, err := loadInputs(matches)
	if err != nil {
		return err
	}

	fmt.Fprintln(report, "Input images:")
	images := make([]*pdc.DrawCommandImage, len(inputs))
	for i, input := range inputs {
		fmt.Fprintf(report, "%02d) %s\n", i, input.filename)
		images[i] = input.image
	}

	seq, err := Construct(images, frameDurationMs, playCount)
	if err != nil {
		return err
	}

	fmt.Fprintln(report, "Result sequence:")
	fmt.Fprintf(report, "  View box: %d x %d\n", seq.ViewBox.Width, seq.ViewBox.Height)
	fmt.Fprintf(report, "  Play count: %d\n", seq.PlayCount)
	for i, frame := range seq.Frames {
		fmt.Fprintf(report, "  Frame %02d: %d ms\n", i, frame.DurationMs)
	}

	outputFile, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", output, err)
	}
	defer outputFile.Close()
	if err := pdc.WriteImageSequence(outputFile, seq); err != nil {
		return fmt.Errorf("failed to write sequence to %q: %w", output, err)
	}
	return nil
}

func loadInputs(filenames []string) ([]inputFile, error) {
	var inputs []inputFile
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open image %q: %w", filename, err)
		}
		image, err := pdc.ParseImageFile(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse image %q: %w", filename, err)
		}
		inputs = append(inputs, inputFile{filename: filename, image: image})
	}
	return inputs, nil
}
