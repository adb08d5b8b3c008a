package datefmt

// Composite directives expand to a fixed sub-layout and re-enter the engine,
// so both directions stay in lockstep with the component directives. Padding
// modifiers on the composite itself are ignored.

func fmtComposite(layout string) formatFn {
	return func(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
		return appendLayout(dst, layout, v)
	}
}

func parseComposite(layout string) parseFn {
	return func(sc *scanner, items *ParsedItems, lang Language, _ Padding) error {
		return parseLayoutInto(sc, layout, items, lang)
	}
}

// %c
var (
	fmtDateTimeText   = fmtComposite(layoutDateTimeText)
	parseDateTimeText = parseComposite(layoutDateTimeText)
)

// %D
var (
	fmtSlashDate   = fmtComposite(layoutSlashDate)
	parseSlashDate = parseComposite(layoutSlashDate)
)

// %F
var (
	fmtISODate   = fmtComposite(layoutISODate)
	parseISODate = parseComposite(layoutISODate)
)

// %r
var (
	fmtClock12   = fmtComposite(layoutClock12)
	parseClock12 = parseComposite(layoutClock12)
)

// %R
var (
	fmtHourMinute   = fmtComposite(layoutHourMinute)
	parseHourMinute = parseComposite(layoutHourMinute)
)

// %T
var (
	fmtClock   = fmtComposite(layoutClock)
	parseClock = parseComposite(layoutClock)
)
