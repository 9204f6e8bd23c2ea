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

// Color is an 8-bit Pebble color with two bits per channel, laid out
// aarrggbb. An alpha of zero is fully transparent.
type Color uint8

const (
	ColorClear Color = 0x00
	ColorBlack Color = 0xC0
	ColorWhite Color = 0xFF
)

// Alpha returns the two-bit alpha channel (0..3).
func (c Color) Alpha() uint8 {
	return uint8(c>>6) & 3
}

// Transparent reports whether the color draws nothing.
func (c Color) Transparent() bool {
	return c.Alpha() == 0
}

// RGBA implements image/color.Color, expanding each two-bit channel to the
// full 16-bit range with alpha premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	expand := func(v uint32) uint32 {
		// 0, 1/3, 2/3, 1 of full scale.
		return v * 0xFFFF / 3
	}
	a = expand(uint32(c>>6) & 3)
	r = expand(uint32(c>>4)&3) * a / 0xFFFF
	g = expand(uint32(c>>2)&3) * a / 0xFFFF
	b = expand(uint32(c)&3) * a / 0xFFFF
	return
}
