// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestSplitRunes(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"ab", []string{"a", "b"}},
		{"世界", []string{"世", "界"}},
		{"a\xffb", []string{"a", "\xff", "b"}},
		{"\xe4\xb8", []string{"\xe4", "\xb8"}},
		{"\xef\xbf\xbd\xff", []string{"\uFFFD", "\xff"}},
	}
	for _, tt := range tests {
		got := SplitRunes(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitRunes(%q) result is different [-want,+got]:\n%s", tt.in, diff)
		}
	}
}

func TestEncodeRunes(t *testing.T) {
	tests := []struct {
		name string
		x, y string
	}{
		{"empty", "", ""},
		{"ascii", "foo bar", "foo baz"},
		{"invalid", "foo\xffbar", "foo\xfebar"},
		{"replacement-char", "\xef\xbf\xbd", "\xff"},
		{"mixed", "caf\xe9", "caf\xc3\xa9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, ey, elems := EncodeRunes(tt.x, tt.y)
			if !utf8.ValidString(ex) || !utf8.ValidString(ey) {
				t.Errorf("EncodeRunes(%q, %q) = %q, %q, want valid UTF-8", tt.x, tt.y, ex, ey)
			}
			if got, want := utf8.RuneCountInString(ex), len(SplitRunes(tt.x)); got != want {
				t.Errorf("encoded x has %d runes, want %d", got, want)
			}
			if got := elems.Decode(ex); got != tt.x {
				t.Errorf("Decode(ex) = %q, want %q", got, tt.x)
			}
			if got := elems.Decode(ey); got != tt.y {
				t.Errorf("Decode(ey) = %q, want %q", got, tt.y)
			}
		})
	}
}

func TestEncodeRunesDistinct(t *testing.T) {
	// U+FFFD and an invalid byte must not compare equal after encoding.
	ex, ey, _ := EncodeRunes("\xef\xbf\xbd", "\xff")
	if ex == ey {
		t.Errorf("EncodeRunes maps U+FFFD and \\xff to the same rune %q", ex)
	}
	ex, ey, _ = EncodeRunes("a\xff", "\xffa")
	if want := string([]rune(ex)[1]) + string([]rune(ex)[0]); ey != want {
		t.Errorf("EncodeRunes(\"a\\xff\", \"\\xffa\") = %q, %q, want equal elements to share a rune", ex, ey)
	}
}

func TestIndexRune(t *testing.T) {
	for _, i := range []int{0, 1, surrogateMin - 1, surrogateMin, surrogateMin + 1, 0xffff, 0x10ffff - surrogateLen} {
		r := indexRune(i)
		if !utf8.ValidRune(r) {
			t.Errorf("indexRune(%#x) = %#x, not a valid rune", i, r)
			continue
		}
		if got := runeIndex(r); got != i {
			t.Errorf("runeIndex(indexRune(%#x)) = %#x", i, got)
		}
	}
}

func TestDecodeSegments(t *testing.T) {
	ex, ey, elems := EncodeRunes("a\xffb", "a\xfeb")
	rx, ry := []rune(ex), []rune(ey)
	segs := []Segment{
		{Match, string(rx[0])},
		{Delete, string(rx[1])},
		{Insert, string(ry[1])},
		{Match, string(rx[2])},
	}
	want := []Segment{
		{Match, "a"},
		{Delete, "\xff"},
		{Insert, "\xfe"},
		{Match, "b"},
	}
	got := elems.DecodeSegments(segs)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeSegments(...) result is different [-want,+got]:\n%s", diff)
	}
	if err := Check("a\xffb", "a\xfeb", got); err != nil {
		t.Errorf("Check(...) = %v", err)
	}
}
