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

import "testing"

func TestColorAlpha(t *testing.T) {
	if !ColorClear.Transparent() {
		t.Fatal("clear is not transparent")
	}
	if ColorBlack.Transparent() || ColorWhite.Transparent() {
		t.Fatal("opaque color reads as transparent")
	}
	// Any color with zero alpha bits is transparent no matter its channels.
	if !Color(0x3F).Transparent() {
		t.Fatal("alpha 0 with color bits set reads as opaque")
	}
	if ColorBlack.Alpha() != 3 {
		t.Fatalf("black alpha = %d, want 3", ColorBlack.Alpha())
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ColorWhite.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Fatalf("white RGBA = %d %d %d %d", r, g, b, a)
	}
	r, g, b, a = ColorBlack.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("black RGBA = %d %d %d %d", r, g, b, a)
	}
	if _, _, _, a := ColorClear.RGBA(); a != 0 {
		t.Fatalf("clear alpha = %d, want 0", a)
	}
}
