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

// pdc2png renders a Pebble Draw Command file to raster output: a PNG for a
// PDCI, numbered PNGs or an animated GIF for a PDCS. Files are validated in
// full before anything is rendered.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/pebble-dev/pdc-tools/pdc"
	"github.com/pebble-dev/pdc-tools/raster"
)

type Options struct {
	Input  string
	Output string
	Scale  uint
	GIF    bool
}

func parseFlags() Options {
	o := Options{}
	flag.StringVar(&o.Input, "in", "", "PDC file to render")
	flag.StringVar(&o.Output, "out", "", "Output filename (default: input with the extension replaced)")
	flag.UintVar(&o.Scale, "scale", 1, "Integer upscaling factor")
	flag.BoolVar(&o.GIF, "gif", false, "Render a sequence to one animated GIF instead of numbered PNGs")
	flag.Parse()

	if o.Input == "" {
		fmt.Fprintf(os.Stderr, "Input filename must be specified\n")
		os.Exit(1)
	}
	if o.Scale == 0 || o.Scale > 32 {
		fmt.Fprintf(os.Stderr, "Scale must be between 1 and 32\n")
		os.Exit(1)
	}
	return o
}

func main() {
	options := parseFlags()
	if err := run(options); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render %s: %v\n", options.Input, err)
		os.Exit(1)
	}
}

func run(options Options) error {
	data, err := os.ReadFile(options.Input)
	if err != nil {
		return err
	}
	if err := pdc.ValidateResource(data); err != nil {
		return err
	}
	switch pdc.KindOf(data) {
	case pdc.KindImage:
		return renderImage(options, data)
	case pdc.KindSequence:
		return renderSequence(options, data)
	}
	return fmt.Errorf("unknown magic")
}

func renderImage(options Options, data []byte) error {
	image, err := pdc.ParseImageFile(bytes.NewReader(data))
	if err != nil {
		return err
	}
	rendered, err := raster.RenderImage(image, int(options.Scale))
	if err != nil {
		return err
	}
	output := options.Output
	if output == "" {
		output = stripExtension(options.Input) + ".png"
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, rendered)
}

func renderSequence(options Options, data []byte) error {
	seq, err := pdc.ParseImageSequence(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if options.GIF {
		output := options.Output
		if output == "" {
			output = stripExtension(options.Input) + ".gif"
		}
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		return raster.EncodeSequenceGIF(f, seq, int(options.Scale))
	}
	base := options.Output
	if base == "" {
		base = stripExtension(options.Input)
	} else {
		base = stripExtension(base)
	}
	for i := range seq.Frames {
		rendered, err := raster.RenderFrame(seq, &seq.Frames[i], int(options.Scale))
		if err != nil {
			return err
		}
		output := fmt.Sprintf("%s_%03d.png", base, i)
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := png.Encode(f, rendered); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func stripExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
