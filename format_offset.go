package datefmt

// %z: sign, two-digit hours, two-digit minutes. A zero offset always renders
// with a plus, and both "+0000" and "-0000" parse to UTC. The sign is never
// optional on parse.
func fmtOffset(dst []byte, v *formatValue, pad Padding) ([]byte, error) {
	off, err := v.offsetComponent()
	if err != nil {
		return dst, err
	}

	seconds := off.Seconds()
	if seconds < 0 {
		dst = append(dst, '-')
		seconds = -seconds
	} else {
		dst = append(dst, '+')
	}
	dst = pad.appendInt(dst, seconds/3600, 2)
	return pad.appendInt(dst, seconds%3600/60, 2), nil
}

func parseOffset(sc *scanner, items *ParsedItems, _ Language, pad Padding) error {
	sign, ok := sc.consumeRequiredSign()
	if !ok {
		return ErrInvalidOffset
	}
	hours, ok := sc.consumePaddedDigits(pad, 2)
	if !ok {
		return ErrInvalidOffset
	}
	minutes, ok := sc.consumeExactDigitsInRange(2, 0, 59)
	if !ok {
		return ErrInvalidOffset
	}
	items.Offset = offsetRef(OffsetSeconds(sign * (hours*3600 + minutes*60)))
	return nil
}
