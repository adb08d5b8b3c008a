package datefmt

import "fmt"

// formatValue carries whichever components the formatted value provides.
// A directive fetches the component it reads and fails with
// ErrMissingComponent when the value lacks it.
type formatValue struct {
	date   *Date
	time   *Time
	offset *UTCOffset
	lang   Language
}

func (v *formatValue) language() Language {
	if v.lang == nil {
		return English
	}
	return v.lang
}

func (v *formatValue) dateComponent() (Date, error) {
	if v.date == nil {
		return Date{}, fmt.Errorf("%w: no date", ErrMissingComponent)
	}
	return *v.date, nil
}

func (v *formatValue) timeComponent() (Time, error) {
	if v.time == nil {
		return Time{}, fmt.Errorf("%w: no time of day", ErrMissingComponent)
	}
	return *v.time, nil
}

func (v *formatValue) offsetComponent() (UTCOffset, error) {
	if v.offset == nil {
		return UTCOffset{}, fmt.Errorf("%w: no offset", ErrMissingComponent)
	}
	return *v.offset, nil
}

// formatFn appends one directive's text for a fully known value.
type formatFn func(dst []byte, v *formatValue, pad Padding) ([]byte, error)

// parseFn consumes one directive's text, validating it and recording what it
// found in the accumulator.
type parseFn func(sc *scanner, items *ParsedItems, lang Language, pad Padding) error

// directive pairs the two functions a specifier dispatches to, plus the
// directive's default padding.
type directive struct {
	pad    Padding
	format formatFn
	parse  parseFn
}

// directives is the dispatch table, keyed by specifier byte. Built in init
// because the composite directives re-enter the engine, which reads the
// table back.
var directives map[byte]directive

func init() {
	directives = map[byte]directive{
		'A': {pad: PaddingNone, format: fmtWeekdayName, parse: parseWeekdayName},
		'a': {pad: PaddingNone, format: fmtShortWeekdayName, parse: parseShortWeekdayName},
		'B': {pad: PaddingNone, format: fmtMonthName, parse: parseMonthName},
		'b': {pad: PaddingNone, format: fmtShortMonthName, parse: parseShortMonthName},
		'C': {pad: PaddingZero, format: fmtCentury, parse: parseCentury},
		'c': {pad: PaddingNone, format: fmtDateTimeText, parse: parseDateTimeText},
		'D': {pad: PaddingNone, format: fmtSlashDate, parse: parseSlashDate},
		'd': {pad: PaddingZero, format: fmtDay, parse: parseDay},
		'e': {pad: PaddingSpace, format: fmtDay, parse: parseDay},
		'F': {pad: PaddingNone, format: fmtISODate, parse: parseISODate},
		'G': {pad: PaddingZero, format: fmtWeekYear, parse: parseWeekYear},
		'g': {pad: PaddingZero, format: fmtWeekYearShort, parse: parseWeekYearShort},
		'H': {pad: PaddingZero, format: fmtHour, parse: parseHour},
		'I': {pad: PaddingZero, format: fmtHour12, parse: parseHour12},
		'j': {pad: PaddingZero, format: fmtOrdinalDay, parse: parseOrdinalDay},
		'M': {pad: PaddingZero, format: fmtMinute, parse: parseMinute},
		'm': {pad: PaddingZero, format: fmtMonthNumber, parse: parseMonthNumber},
		'N': {pad: PaddingZero, format: fmtNanosecond, parse: parseNanosecond},
		'P': {pad: PaddingNone, format: fmtAmPmLower, parse: parseAmPmLower},
		'p': {pad: PaddingNone, format: fmtAmPm, parse: parseAmPm},
		'R': {pad: PaddingNone, format: fmtHourMinute, parse: parseHourMinute},
		'r': {pad: PaddingNone, format: fmtClock12, parse: parseClock12},
		'S': {pad: PaddingZero, format: fmtSecond, parse: parseSecond},
		'T': {pad: PaddingNone, format: fmtClock, parse: parseClock},
		'U': {pad: PaddingZero, format: fmtSundayWeek, parse: parseSundayWeek},
		'u': {pad: PaddingNone, format: fmtISOWeekdayNumber, parse: parseISOWeekdayNumber},
		'V': {pad: PaddingZero, format: fmtISOWeek, parse: parseISOWeek},
		'W': {pad: PaddingZero, format: fmtMondayWeek, parse: parseMondayWeek},
		'w': {pad: PaddingNone, format: fmtUSWeekdayNumber, parse: parseUSWeekdayNumber},
		'Y': {pad: PaddingZero, format: fmtYear, parse: parseYear},
		'y': {pad: PaddingZero, format: fmtYearShort, parse: parseYearShort},
		'z': {pad: PaddingZero, format: fmtOffset, parse: parseOffset},
	}
}

// Sub-layouts the composite directives delegate to. The composite's own
// padding modifier is ignored; each component keeps its default.
const (
	layoutDateTimeText = "%a %b %-d %-H:%M:%S %-Y"
	layoutSlashDate    = "%m/%d/%y"
	layoutISODate      = "%Y-%m-%d"
	layoutClock12      = "%I:%M:%S %p"
	layoutHourMinute   = "%H:%M"
	layoutClock        = "%H:%M:%S"
)

// appendLayout is the format side of the engine: literals are copied,
// directives dispatch through the table with their resolved padding.
func appendLayout(dst []byte, layout string, v *formatValue) ([]byte, error) {
	items, err := compileLayout(layout)
	if err != nil {
		return dst, err
	}
	return runFormat(dst, items, v)
}

func runFormat(dst []byte, items []layoutItem, v *formatValue) ([]byte, error) {
	var err error
	for _, it := range items {
		if it.spec == 0 {
			dst = append(dst, it.literal...)
			continue
		}
		dir := directives[it.spec]
		dst, err = dir.format(dst, v, resolvePadding(it.pad, it.padSet, dir.pad))
		if err != nil {
			return dst, fmt.Errorf("directive %%%c: %w", it.spec, err)
		}
	}
	return dst, nil
}

// ParseItems parses value against layout and returns the raw accumulator,
// leaving resolution to the caller. A nil lang means English. Most callers
// want ParseDate, ParseTime, ParseDateTime or ParseOffset, which finalize
// the accumulator into a concrete value.
func ParseItems(value, layout string, lang Language) (ParsedItems, error) {
	if lang == nil {
		lang = English
	}

	items, err := compileLayout(layout)
	if err != nil {
		return ParsedItems{}, err
	}

	sc := newScanner(value)
	var parsed ParsedItems
	if err := runParse(sc, items, &parsed, lang); err != nil {
		return ParsedItems{}, err
	}
	if !sc.empty() {
		return ParsedItems{}, fmt.Errorf("%w: trailing input %q", ErrUnexpectedCharacter, clipInput(sc.rest()))
	}
	return parsed, nil
}

func runParse(sc *scanner, items []layoutItem, parsed *ParsedItems, lang Language) error {
	for _, it := range items {
		if it.spec == 0 {
			if err := matchLiteral(sc, it.literal); err != nil {
				return err
			}
			continue
		}
		dir := directives[it.spec]
		if err := dir.parse(sc, parsed, lang, resolvePadding(it.pad, it.padSet, dir.pad)); err != nil {
			return fmt.Errorf("directive %%%c: %w", it.spec, err)
		}
	}
	return nil
}

// parseLayoutInto re-enters the parser for a composite's sub-layout, sharing
// the caller's scanner and accumulator.
func parseLayoutInto(sc *scanner, layout string, parsed *ParsedItems, lang Language) error {
	items, err := compileLayout(layout)
	if err != nil {
		return err
	}
	return runParse(sc, items, parsed, lang)
}

func matchLiteral(sc *scanner, lit string) error {
	if sc.consumeLiteral(lit) {
		return nil
	}
	if sc.empty() {
		return fmt.Errorf("%w: want %q", ErrUnexpectedEnd, lit)
	}
	return fmt.Errorf("%w: want %q, have %q", ErrUnexpectedCharacter, lit, clipInput(sc.rest()))
}

// clipInput bounds input echoed into error messages.
func clipInput(s string) string {
	const max = 16
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
