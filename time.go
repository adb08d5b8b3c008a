package datefmt

import (
	"fmt"
	gotime "time"
)

// Time is a clock time with nanosecond precision and no date or offset
// attached. The zero value is midnight.
type Time struct {
	hour       int
	minute     int
	second     int
	nanosecond int
}

// NewTime builds a time of day, validating each part.
func NewTime(hour, minute, second, nanosecond int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("%w: %d", ErrInvalidMinute, minute)
	}
	if second < 0 || second > 59 {
		return Time{}, fmt.Errorf("%w: %d", ErrInvalidSecond, second)
	}
	if nanosecond < 0 || nanosecond > 999999999 {
		return Time{}, fmt.Errorf("%w: %d", ErrInvalidNanosecond, nanosecond)
	}
	return Time{hour: hour, minute: minute, second: second, nanosecond: nanosecond}, nil
}

// TimeOf projects the clock time of t in t's location.
func TimeOf(t gotime.Time) Time {
	return Time{hour: t.Hour(), minute: t.Minute(), second: t.Second(), nanosecond: t.Nanosecond()}
}

func (t Time) Hour() int       { return t.hour }
func (t Time) Minute() int     { return t.minute }
func (t Time) Second() int     { return t.second }
func (t Time) Nanosecond() int { return t.nanosecond }

// Hour12 reports the hour on the 12-hour clock and its meridiem. Midnight is
// 12 AM, noon is 12 PM.
func (t Time) Hour12() (int, Meridiem) {
	m := AM
	hour := t.hour
	if hour >= 12 {
		m = PM
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return hour, m
}

// Format renders the time against layout with English names.
func (t Time) Format(layout string) (string, error) {
	return t.FormatLanguage(layout, English)
}

// FormatLanguage renders the time against layout using lang's name tables.
func (t Time) FormatLanguage(layout string, lang Language) (string, error) {
	out, err := t.AppendFormat(nil, layout, lang)
	return string(out), err
}

// AppendFormat appends the formatted time to dst.
func (t Time) AppendFormat(dst []byte, layout string, lang Language) ([]byte, error) {
	return appendLayout(dst, layout, &formatValue{time: &t, lang: lang})
}

// String renders the %H:%M:%S form.
func (t Time) String() string {
	out, _ := t.Format(layoutClock)
	return out
}

// ParseTime parses value against layout with English names.
func ParseTime(value, layout string) (Time, error) {
	return ParseTimeLanguage(value, layout, English)
}

// ParseTimeLanguage parses value against layout using lang's name tables.
func ParseTimeLanguage(value, layout string, lang Language) (Time, error) {
	items, err := ParseItems(value, layout, lang)
	if err != nil {
		return Time{}, err
	}
	return timeFromItems(&items)
}

// timeFromItems resolves the accumulator into a clock time. The hour comes
// from the 24-hour field when present, else from the 12-hour field and its
// meridiem; the minute is required; second and nanosecond default to zero.
func timeFromItems(items *ParsedItems) (Time, error) {
	var hour int
	switch {
	case items.Hour24 != nil:
		hour = *items.Hour24
	case items.Hour12 != nil && items.Meridiem != nil:
		hour = *items.Hour12 % 12
		if *items.Meridiem == PM {
			hour += 12
		}
	default:
		return Time{}, fmt.Errorf("%w: no hour in layout", ErrInsufficientInformation)
	}

	if items.Minute == nil {
		return Time{}, fmt.Errorf("%w: no minute in layout", ErrInsufficientInformation)
	}

	second := 0
	if items.Second != nil {
		second = *items.Second
	}
	nanosecond := 0
	if items.Nanosecond != nil {
		nanosecond = *items.Nanosecond
	}
	return NewTime(hour, *items.Minute, second, nanosecond)
}
