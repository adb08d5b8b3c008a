package datefmt

import (
	"errors"
	"testing"
)

func TestCompileLayout(t *testing.T) {
	items, err := compileLayout("%Y-%m-%d at %-H o'clock %%")
	if err != nil {
		t.Fatalf("compileLayout: %v", err)
	}

	want := []layoutItem{
		{spec: 'Y'},
		{literal: "-"},
		{spec: 'm'},
		{literal: "-"},
		{spec: 'd'},
		{literal: " at "},
		{spec: 'H', pad: PaddingNone, padSet: true},
		{literal: " o'clock "},
		{literal: "%"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i, it := range items {
		if it != want[i] {
			t.Fatalf("item %d = %+v, want %+v", i, it, want[i])
		}
	}
}

func TestCompileLayoutPaddingModifiers(t *testing.T) {
	tests := []struct {
		layout string
		pad    Padding
	}{
		{layout: "%-d", pad: PaddingNone},
		{layout: "%_d", pad: PaddingSpace},
		{layout: "%0e", pad: PaddingZero},
	}

	for _, tc := range tests {
		items, err := compileLayout(tc.layout)
		if err != nil {
			t.Fatalf("compileLayout(%q): %v", tc.layout, err)
		}
		if len(items) != 1 || !items[0].padSet || items[0].pad != tc.pad {
			t.Fatalf("compileLayout(%q) = %+v, want padding %v", tc.layout, items, tc.pad)
		}
	}
}

func TestCompileLayoutErrors(t *testing.T) {
	tests := []struct {
		layout string
		want   error
	}{
		{layout: "%Q", want: ErrUnknownDirective},
		{layout: "abc%", want: ErrBadLayout},
		{layout: "abc%-", want: ErrBadLayout},
		{layout: "%-%", want: ErrBadLayout},
	}

	for _, tc := range tests {
		if _, err := compileLayout(tc.layout); !errors.Is(err, tc.want) {
			t.Fatalf("compileLayout(%q) err = %v, want %v", tc.layout, err, tc.want)
		}
	}
}
