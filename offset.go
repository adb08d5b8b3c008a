package datefmt

import (
	"fmt"
	gotime "time"
)

// UTCOffset is a signed offset from UTC in seconds, positive east of the
// prime meridian. The zero value is UTC.
type UTCOffset struct {
	seconds int
}

// UTC is the zero offset.
var UTC = UTCOffset{}

// OffsetSeconds builds an offset from a signed second count.
func OffsetSeconds(seconds int) UTCOffset {
	return UTCOffset{seconds: seconds}
}

// OffsetMinutes builds an offset from a signed minute count.
func OffsetMinutes(minutes int) UTCOffset {
	return UTCOffset{seconds: minutes * 60}
}

// OffsetHours builds an offset from a signed hour count.
func OffsetHours(hours int) UTCOffset {
	return UTCOffset{seconds: hours * 3600}
}

// EastHours is OffsetHours for offsets east of UTC.
func EastHours(hours int) UTCOffset {
	return OffsetHours(hours)
}

// WestHours is OffsetHours for offsets west of UTC.
func WestHours(hours int) UTCOffset {
	return OffsetHours(-hours)
}

// OffsetOf projects the UTC offset of t's location at t.
func OffsetOf(t gotime.Time) UTCOffset {
	_, seconds := t.Zone()
	return UTCOffset{seconds: seconds}
}

// Seconds reports the whole offset as signed seconds.
func (o UTCOffset) Seconds() int { return o.seconds }

// Minutes reports the offset as signed whole minutes, truncated.
func (o UTCOffset) Minutes() int { return o.seconds / 60 }

// Hours reports the offset as signed whole hours, truncated.
func (o UTCOffset) Hours() int { return o.seconds / 3600 }

// Format renders the offset against layout. Offsets carry no locale names,
// so the language is fixed to English.
func (o UTCOffset) Format(layout string) (string, error) {
	out, err := o.AppendFormat(nil, layout)
	return string(out), err
}

// AppendFormat appends the formatted offset to dst.
func (o UTCOffset) AppendFormat(dst []byte, layout string) ([]byte, error) {
	return appendLayout(dst, layout, &formatValue{offset: &o})
}

// String renders the %z form.
func (o UTCOffset) String() string {
	out, _ := o.Format("%z")
	return out
}

// ParseOffset parses value against layout. The language is fixed to English
// for the same reason Format's is.
func ParseOffset(value, layout string) (UTCOffset, error) {
	items, err := ParseItems(value, layout, English)
	if err != nil {
		return UTCOffset{}, err
	}
	return offsetFromItems(&items)
}

// offsetFromItems projects the one field an offset needs.
func offsetFromItems(items *ParsedItems) (UTCOffset, error) {
	if items.Offset == nil {
		return UTCOffset{}, fmt.Errorf("%w: no offset in layout", ErrInsufficientInformation)
	}
	return *items.Offset, nil
}
