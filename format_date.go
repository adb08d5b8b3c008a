package datefmt

import "strconv"

// Date directives. Every specifier is one fmt/parse pair; the engine hands
// each the padding already resolved against the directive's default.

// %a
func fmtShortWeekdayName(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	names := v.language().ShortWeekdayNames()
	return append(dst, names[date.Weekday()]...), nil
}

func parseShortWeekdayName(sc *scanner, items *ParsedItems, lang Language, _ Padding) error {
	v, ok := sc.consumeFirstMatch(weekdayCandidates(lang.ShortWeekdayNames()))
	if !ok {
		return ErrInvalidDayOfWeek
	}
	items.Weekday = weekdayRef(Weekday(v))
	return nil
}

// %A
func fmtWeekdayName(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	names := v.language().WeekdayNames()
	return append(dst, names[date.Weekday()]...), nil
}

func parseWeekdayName(sc *scanner, items *ParsedItems, lang Language, _ Padding) error {
	v, ok := sc.consumeFirstMatch(weekdayCandidates(lang.WeekdayNames()))
	if !ok {
		return ErrInvalidDayOfWeek
	}
	items.Weekday = weekdayRef(Weekday(v))
	return nil
}

// %b
func fmtShortMonthName(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	names := v.language().ShortMonthNames()
	return append(dst, names[date.Month()-1]...), nil
}

func parseShortMonthName(sc *scanner, items *ParsedItems, lang Language, _ Padding) error {
	v, ok := sc.consumeFirstMatch(monthCandidates(lang.ShortMonthNames()))
	if !ok {
		return ErrInvalidMonth
	}
	items.Month = intRef(v)
	return nil
}

// %B
func fmtMonthName(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	names := v.language().MonthNames()
	return append(dst, names[date.Month()-1]...), nil
}

func parseMonthName(sc *scanner, items *ParsedItems, lang Language, _ Padding) error {
	v, ok := sc.consumeFirstMatch(monthCandidates(lang.MonthNames()))
	if !ok {
		return ErrInvalidMonth
	}
	items.Month = intRef(v)
	return nil
}

// %C: year divided by 100, truncated toward zero.
func fmtCentury(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, date.Year()/100, 2), nil
}

// The century can run to three digits, so the width window shifts with how
// much padding was skipped.
func parseCentury(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	skipped := sc.consumePadding(pad, 1)
	century, ok := sc.consumeDigits(2-skipped, 3-skipped)
	if !ok {
		return ErrInvalidYear
	}
	items.SetCentury(century)
	return nil
}

// %d and %e share these; the table gives %e a space default.
func fmtDay(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, date.Day(), 2), nil
}

func parseDay(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	day, ok := sc.consumePaddedDigits(pad, 2)
	if !ok || day == 0 {
		return ErrInvalidDayOfMonth
	}
	items.Day = intRef(day)
	return nil
}

// %g: last two digits of the week-based year.
func fmtWeekYearShort(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	isoYear, _ := date.ISOWeek()
	return pad.appendInt(dst, floorMod(isoYear, 100), 2), nil
}

func parseWeekYearShort(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	v, ok := sc.consumePaddedDigits(pad, 2)
	if !ok {
		return ErrInvalidYear
	}
	items.SetWeekYearLastTwo(v)
	return nil
}

// %G: full week-based year.
func fmtWeekYear(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	isoYear, _ := date.ISOWeek()
	return pad.appendInt(dst, isoYear, 4), nil
}

func parseWeekYear(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	sign := sc.consumeSign()
	sc.consumePadding(pad, 3)
	v, ok := sc.consumeDigitsInRange(1, 6, 0, -MinYear)
	if !ok {
		return ErrInvalidYear
	}
	items.WeekBasedYear = intRef(sign * v)
	return nil
}

// %j
func fmtOrdinalDay(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, date.Ordinal(), 3), nil
}

func parseOrdinalDay(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	ordinal, ok := sc.consumePaddedDigits(pad, 3)
	if !ok || ordinal == 0 {
		return ErrInvalidDayOfYear
	}
	items.OrdinalDay = intRef(ordinal)
	return nil
}

// %m
func fmtMonthNumber(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, date.Month(), 2), nil
}

func parseMonthNumber(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	month, ok := sc.consumePaddedDigitsInRange(pad, 2, 1, 12)
	if !ok {
		return ErrInvalidMonth
	}
	items.Month = intRef(month)
	return nil
}

// %u: ISO weekday number, Monday=1 through Sunday=7. Padding does not apply.
func fmtISOWeekdayNumber(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return strconv.AppendInt(dst, int64(date.Weekday().ISONumber()), 10), nil
}

func parseISOWeekdayNumber(sc *scanner, items *ParsedItems, _ Language, _ Padding) error {
	cands := make([]candidate, len(weekdayOrder))
	for i, wd := range weekdayOrder {
		cands[i] = candidate{text: strconv.Itoa(i + 1), value: int(wd)}
	}
	v, ok := sc.consumeFirstMatch(cands)
	if !ok {
		return ErrInvalidDayOfWeek
	}
	items.Weekday = weekdayRef(Weekday(v))
	return nil
}

// %U
func fmtSundayWeek(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, date.SundayWeek(), 2), nil
}

func parseSundayWeek(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	week, ok := sc.consumePaddedDigitsInRange(pad, 2, 0, 53)
	if !ok {
		return ErrInvalidWeek
	}
	items.SundayWeek = intRef(week)
	return nil
}

// %V
func fmtISOWeek(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	_, week := date.ISOWeek()
	return pad.appendInt(dst, week, 2), nil
}

func parseISOWeek(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	week, ok := sc.consumePaddedDigitsInRange(pad, 2, 1, 53)
	if !ok {
		return ErrInvalidWeek
	}
	items.ISOWeek = intRef(week)
	return nil
}

// %w: US weekday number, Sunday=0 through Saturday=6. The candidate table is
// the canonical order viewed Sunday-first; the canonical array itself is
// never touched.
func fmtUSWeekdayNumber(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return strconv.AppendInt(dst, int64(date.Weekday().USNumber()), 10), nil
}

func parseUSWeekdayNumber(sc *scanner, items *ParsedItems, _ Language, _ Padding) error {
	rotated := sundayFirstOrder()
	cands := make([]candidate, len(rotated))
	for i, wd := range rotated {
		cands[i] = candidate{text: strconv.Itoa(i), value: int(wd)}
	}
	v, ok := sc.consumeFirstMatch(cands)
	if !ok {
		return ErrInvalidDayOfWeek
	}
	items.Weekday = weekdayRef(Weekday(v))
	return nil
}

// %W
func fmtMondayWeek(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, date.MondayWeek(), 2), nil
}

func parseMondayWeek(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	week, ok := sc.consumePaddedDigitsInRange(pad, 2, 0, 53)
	if !ok {
		return ErrInvalidWeek
	}
	items.MondayWeek = intRef(week)
	return nil
}

// %y: last two digits of the year, always non-negative.
func fmtYearShort(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, floorMod(date.Year(), 100), 2), nil
}

func parseYearShort(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	v, ok := sc.consumePaddedDigits(pad, 2)
	if !ok {
		return ErrInvalidYear
	}
	items.SetYearLastTwo(v)
	return nil
}

// %Y: full year. The leading + marks extended-range years; a zero year never
// renders a sign.
func fmtYear(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	date, err := v.dateComponent()
	if err != nil {
		return dst, err
	}
	year := date.Year()
	if year >= 10000 {
		dst = append(dst, '+')
	}
	return pad.appendInt(dst, year, 4), nil
}

// The padding skip stops one short of the width so a fully padded zero year
// still leaves a digit to consume.
func parseYear(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	sign := sc.consumeSign()
	sc.consumePadding(pad, 3)
	v, ok := sc.consumeDigitsInRange(1, 6, 0, MaxYear)
	if !ok {
		return ErrInvalidYear
	}
	items.Year = intRef(sign * v)
	return nil
}
