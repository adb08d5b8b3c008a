package datefmt

import "fmt"

// layoutItem is one token of a compiled layout: a literal run when spec is
// zero, otherwise a directive with an optional padding override.
type layoutItem struct {
	literal string
	spec    byte
	pad     Padding
	padSet  bool
}

// compileLayout splits a layout into literal runs and directive tokens.
// A modifier between % and the specifier forces the padding: '-' none,
// '_' space, '0' zero. %% compiles to a literal percent sign.
func compileLayout(layout string) ([]layoutItem, error) {
	items := make([]layoutItem, 0, len(layout)/2+1)
	start := 0
	i := 0
	for i < len(layout) {
		if layout[i] != '%' {
			i++
			continue
		}
		if start < i {
			items = append(items, layoutItem{literal: layout[start:i]})
		}
		i++
		if i == len(layout) {
			return nil, fmt.Errorf("%w: dangling %% in %q", ErrBadLayout, layout)
		}

		var pad Padding
		padSet := false
		switch layout[i] {
		case '-':
			pad, padSet = PaddingNone, true
			i++
		case '_':
			pad, padSet = PaddingSpace, true
			i++
		case '0':
			pad, padSet = PaddingZero, true
			i++
		}
		if i == len(layout) {
			return nil, fmt.Errorf("%w: padding modifier without specifier in %q", ErrBadLayout, layout)
		}

		spec := layout[i]
		i++
		if spec == '%' {
			if padSet {
				return nil, fmt.Errorf("%w: padding modifier on %%%% in %q", ErrBadLayout, layout)
			}
			items = append(items, layoutItem{literal: "%"})
			start = i
			continue
		}
		if _, ok := directives[spec]; !ok {
			return nil, fmt.Errorf("%w: %%%c in %q", ErrUnknownDirective, spec, layout)
		}
		items = append(items, layoutItem{spec: spec, pad: pad, padSet: padSet})
		start = i
	}
	if start < len(layout) {
		items = append(items, layoutItem{literal: layout[start:]})
	}
	return items, nil
}
