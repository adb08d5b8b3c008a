package datefmt

import (
	"fmt"
	"strconv"
)

// Padding selects the fill character a directive uses to reach its minimum
// width. Every directive declares its own default; a layout modifier
// overrides it for one token.
type Padding int

const (
	// PaddingZero fills with '0'.
	PaddingZero Padding = iota
	// PaddingSpace fills with ' '.
	PaddingSpace
	// PaddingNone disables the minimum width entirely.
	PaddingNone
)

func (p Padding) String() string {
	switch p {
	case PaddingZero:
		return "zero"
	case PaddingSpace:
		return "space"
	case PaddingNone:
		return "none"
	default:
		return "Padding(" + strconv.Itoa(int(p)) + ")"
	}
}

// fill returns the pad character, or 0 when the padding never skips anything.
func (p Padding) fill() byte {
	switch p {
	case PaddingZero:
		return '0'
	case PaddingSpace:
		return ' '
	default:
		return 0
	}
}

// appendInt appends v in decimal, padded to width. Width counts the sign, so
// zero padding of a negative value fills between the sign and the digits.
func (p Padding) appendInt(dst []byte, v, width int) []byte {
	switch p {
	case PaddingZero:
		return fmt.Appendf(dst, "%0*d", width, v)
	case PaddingSpace:
		return fmt.Appendf(dst, "%*d", width, v)
	default:
		return strconv.AppendInt(dst, int64(v), 10)
	}
}

// resolvePadding picks the layout override when one was given, otherwise the
// directive's default.
func resolvePadding(override Padding, ok bool, def Padding) Padding {
	if ok {
		return override
	}
	return def
}

// Weekday names a day of the week. The canonical order is Monday-first,
// matching the order of every language's weekday tables.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayOrder is the canonical Monday-first sequence used to zip name tables
// with their values.
var weekdayOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// sundayFirstOrder returns the canonical sequence rotated so Sunday leads,
// matching the US 0..6 numbering. Always a fresh copy; the canonical array is
// never mutated.
func sundayFirstOrder() [7]Weekday {
	var out [7]Weekday
	out[0] = Sunday
	copy(out[1:], weekdayOrder[:6])
	return out
}

// ISONumber reports the ISO 8601 weekday number, Monday=1 through Sunday=7.
func (w Weekday) ISONumber() int {
	return int(w) + 1
}

// USNumber reports the US-convention weekday number, Sunday=0 through
// Saturday=6.
func (w Weekday) USNumber() int {
	return (int(w) + 1) % 7
}

// String returns the English full name.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	names := English.WeekdayNames()
	return names[w]
}

// Meridiem distinguishes the two halves of the 12-hour clock.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}
