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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/pebble-dev/pdc-tools/pdc"
	"github.com/pebble-dev/pdc-tools/render"
	"github.com/pebble-dev/pdc-tools/sequence"
)

// RenderList rasterizes a command list into a fresh image of the given
// viewbox, upscaled by scale (watch assets are tiny; scale 1 means native
// size). The background is transparent.
func RenderList(list *pdc.DrawCommandList, viewBox pdc.ViewBox, scale int) (image.Image, error) {
	if viewBox.Width == 0 || viewBox.Height == 0 {
		return nil, fmt.Errorf("empty viewbox %dx%d", viewBox.Width, viewBox.Height)
	}
	if scale < 1 {
		scale = 1
	}
	dc := gg.NewContext(int(viewBox.Width), int(viewBox.Height))
	defer dc.Close()
	canvas := NewCanvas(dc)
	render.DrawList(canvas, list, pdc.Point{})
	if err := canvas.Err(); err != nil {
		return nil, fmt.Errorf("failed to rasterize command list: %w", err)
	}
	// Flush any accelerated draws before reading pixels back.
	_ = dc.FlushGPU()
	return upscale(dc.Image(), scale), nil
}

// RenderImage rasterizes a still image.
func RenderImage(img *pdc.DrawCommandImage, scale int) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	return RenderList(&img.CommandList, img.ViewBox, scale)
}

// RenderFrame rasterizes one frame of a sequence.
func RenderFrame(seq *pdc.DrawCommandSequence, frame *pdc.DrawCommandFrame, scale int) (image.Image, error) {
	if seq == nil || frame == nil {
		return nil, fmt.Errorf("nil sequence or frame")
	}
	return RenderList(&frame.CommandList, seq.ViewBox, scale)
}

// EncodeSequenceGIF renders every playable frame of a sequence into an
// animated GIF. Zero-duration frames are skipped, matching playback. The
// GIF loops forever for an infinite play count, plays play-count times for
// a finite one, and shows only the last frame when the play count is zero.
func EncodeSequenceGIF(w io.Writer, seq *pdc.DrawCommandSequence, scale int) error {
	if seq == nil || len(seq.Frames) == 0 {
		return fmt.Errorf("nil or empty sequence")
	}
	anim := &gif.GIF{LoopCount: loopCount(seq.PlayCount)}
	if seq.PlayCount == 0 {
		frame := sequence.FrameByElapsed(seq, 0)
		if frame == nil {
			return fmt.Errorf("sequence has no playable frames")
		}
		if err := appendGIFFrame(anim, seq, frame, scale); err != nil {
			return err
		}
		return gif.EncodeAll(w, anim)
	}
	for i := range seq.Frames {
		if seq.Frames[i].DurationMs == 0 {
			continue
		}
		if err := appendGIFFrame(anim, seq, &seq.Frames[i], scale); err != nil {
			return err
		}
	}
	if len(anim.Image) == 0 {
		return fmt.Errorf("sequence has no playable frames")
	}
	return gif.EncodeAll(w, anim)
}

func appendGIFFrame(anim *gif.GIF, seq *pdc.DrawCommandSequence, frame *pdc.DrawCommandFrame, scale int) error {
	rendered, err := RenderFrame(seq, frame, scale)
	if err != nil {
		return err
	}
	bounds := rendered.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	// Composite over white; GIF palettes carry no alpha.
	draw.Draw(paletted, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(paletted, bounds, rendered, bounds.Min, draw.Over)
	anim.Image = append(anim.Image, paletted)
	// GIF delays tick in hundredths of a second.
	anim.Delay = append(anim.Delay, int(frame.DurationMs)/10)
	return nil
}

func loopCount(playCount uint16) int {
	switch playCount {
	case pdc.PlayCountInfinite:
		return 0 // loop forever
	case 0, 1:
		return -1 // show once
	}
	// The GIF loop count is the number of repeats after the first play.
	return int(playCount) - 1
}

func upscale(src image.Image, scale int) image.Image {
	if scale <= 1 {
		return src
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}
