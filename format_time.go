package datefmt

// Time-of-day directives. All numeric fields are two digits zero-padded by
// default; %N is nine.

// %H
func fmtHour(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, t.Hour(), 2), nil
}

func parseHour(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	hour, ok := sc.consumePaddedDigitsInRange(pad, 2, 0, 23)
	if !ok {
		return ErrInvalidHour
	}
	items.Hour24 = intRef(hour)
	return nil
}

// %I
func fmtHour12(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	hour, _ := t.Hour12()
	return pad.appendInt(dst, hour, 2), nil
}

func parseHour12(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	hour, ok := sc.consumePaddedDigitsInRange(pad, 2, 1, 12)
	if !ok {
		return ErrInvalidHour
	}
	items.Hour12 = intRef(hour)
	return nil
}

// %M
func fmtMinute(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, t.Minute(), 2), nil
}

func parseMinute(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	minute, ok := sc.consumePaddedDigitsInRange(pad, 2, 0, 59)
	if !ok {
		return ErrInvalidMinute
	}
	items.Minute = intRef(minute)
	return nil
}

// %S
func fmtSecond(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, t.Second(), 2), nil
}

func parseSecond(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	second, ok := sc.consumePaddedDigitsInRange(pad, 2, 0, 59)
	if !ok {
		return ErrInvalidSecond
	}
	items.Second = intRef(second)
	return nil
}

// %N: the full nanosecond count, not a truncated fraction.
func fmtNanosecond(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	return pad.appendInt(dst, t.Nanosecond(), 9), nil
}

func parseNanosecond(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	nanos, ok := sc.consumePaddedDigits(pad, 9)
	if !ok {
		return ErrInvalidNanosecond
	}
	items.Nanosecond = intRef(nanos)
	return nil
}

var (
	meridiemUpper = []candidate{
		{text: "AM", value: int(AM)},
		{text: "PM", value: int(PM)},
	}
	meridiemLower = []candidate{
		{text: "am", value: int(AM)},
		{text: "pm", value: int(PM)},
	}
)

// %p
func fmtAmPm(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	_, m := t.Hour12()
	return append(dst, meridiemUpper[m].text...), nil
}

func parseAmPm(sc *scanner, items *ParsedItems, _ Language, _ Padding) error {
	v, ok := sc.consumeFirstMatch(meridiemUpper)
	if !ok {
		return ErrInvalidAmPm
	}
	items.Meridiem = meridiemRef(Meridiem(v))
	return nil
}

// %P
func fmtAmPmLower(dst []byte, v *formatValue, _ Padding) ([]byte, error) {
	t, err := v.timeComponent()
	if err != nil {
		return dst, err
	}
	_, m := t.Hour12()
	return append(dst, meridiemLower[m].text...), nil
}

func parseAmPmLower(sc *scanner, items *ParsedItems, _ Language, _ Padding) error {
	v, ok := sc.consumeFirstMatch(meridiemLower)
	if !ok {
		return ErrInvalidAmPm
	}
	items.Meridiem = meridiemRef(Meridiem(v))
	return nil
}
