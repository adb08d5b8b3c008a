package datefmt

import "strings"

// scanner is the cursor every parse function advances over the remaining
// input. Each consume method either succeeds and shrinks rem, or reports no
// match and leaves rem untouched; callers turn absence into their directive's
// typed error.
type scanner struct {
	rem string
}

func newScanner(input string) *scanner {
	return &scanner{rem: input}
}

func (sc *scanner) empty() bool {
	return len(sc.rem) == 0
}

func (sc *scanner) rest() string {
	return sc.rem
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// consumeLiteral advances past lit when it prefixes the remaining input.
func (sc *scanner) consumeLiteral(lit string) bool {
	if !strings.HasPrefix(sc.rem, lit) {
		return false
	}
	sc.rem = sc.rem[len(lit):]
	return true
}

// consumePadding skips up to width copies of the fill character and reports
// how many were skipped. PaddingNone skips nothing.
func (sc *scanner) consumePadding(pad Padding, width int) int {
	fill := pad.fill()
	if fill == 0 {
		return 0
	}
	n := 0
	for n < width && n < len(sc.rem) && sc.rem[n] == fill {
		n++
	}
	sc.rem = sc.rem[n:]
	return n
}

// consumeDigits greedily takes between min and max digit characters,
// stopping at the first non-digit, and parses the run as decimal.
func (sc *scanner) consumeDigits(min, max int) (int, bool) {
	n := 0
	for n < max && n < len(sc.rem) && isDigit(sc.rem[n]) {
		n++
	}
	if n < min {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(sc.rem[i]-'0')
	}
	sc.rem = sc.rem[n:]
	return v, true
}

// consumeDigitsInRange is consumeDigits plus an inclusive value check.
func (sc *scanner) consumeDigitsInRange(min, max, lo, hi int) (int, bool) {
	save := sc.rem
	v, ok := sc.consumeDigits(min, max)
	if !ok {
		return 0, false
	}
	if v < lo || v > hi {
		sc.rem = save
		return 0, false
	}
	return v, true
}

// consumeExactDigits requires exactly n digit characters.
func (sc *scanner) consumeExactDigits(n int) (int, bool) {
	return sc.consumeDigits(n, n)
}

// consumeExactDigitsInRange requires exactly n digits within an inclusive
// value range.
func (sc *scanner) consumeExactDigitsInRange(n, lo, hi int) (int, bool) {
	return sc.consumeDigitsInRange(n, n, lo, hi)
}

// consumePaddedDigits applies a directive's padding to an n-digit field:
// space padding skips up to n-1 fill characters and requires the remaining
// digits exactly, no padding takes any 1..n digit run, zero padding requires
// all n digits (zeros count as digits).
func (sc *scanner) consumePaddedDigits(pad Padding, n int) (int, bool) {
	switch pad {
	case PaddingSpace:
		skipped := sc.consumePadding(pad, n-1)
		return sc.consumeExactDigits(n - skipped)
	case PaddingNone:
		return sc.consumeDigits(1, n)
	default:
		return sc.consumeExactDigits(n)
	}
}

// consumePaddedDigitsInRange is consumePaddedDigits plus an inclusive value
// check.
func (sc *scanner) consumePaddedDigitsInRange(pad Padding, n, lo, hi int) (int, bool) {
	save := sc.rem
	v, ok := sc.consumePaddedDigits(pad, n)
	if !ok {
		return 0, false
	}
	if v < lo || v > hi {
		sc.rem = save
		return 0, false
	}
	return v, true
}

// candidate pairs a literal with the value consumeFirstMatch yields for it.
type candidate struct {
	text  string
	value int
}

// consumeFirstMatch advances past the first candidate whose text prefixes the
// remaining input, trying candidates in declared order. Tables must never
// place a strict prefix of a later entry before it, or the later entry can
// never win.
func (sc *scanner) consumeFirstMatch(cands []candidate) (int, bool) {
	for _, c := range cands {
		if c.text == "" {
			continue
		}
		if strings.HasPrefix(sc.rem, c.text) {
			sc.rem = sc.rem[len(c.text):]
			return c.value, true
		}
	}
	return 0, false
}

var signCandidates = []candidate{
	{text: "+", value: 1},
	{text: "-", value: -1},
}

// consumeSign advances past an optional leading sign, defaulting positive.
func (sc *scanner) consumeSign() int {
	if v, ok := sc.consumeFirstMatch(signCandidates); ok {
		return v
	}
	return 1
}

// consumeRequiredSign advances past a mandatory leading sign.
func (sc *scanner) consumeRequiredSign() (int, bool) {
	return sc.consumeFirstMatch(signCandidates)
}
