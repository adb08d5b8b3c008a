package datefmt

import (
	"fmt"
	gotime "time"
)

// DateTime pairs a calendar date with a clock time. It carries no offset; an
// offset directive in a DateTime layout fails with ErrMissingComponent.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines an already validated date and time.
func NewDateTime(date Date, time Time) DateTime {
	return DateTime{date: date, time: time}
}

// DateTimeOf projects the wall-clock date and time of t in t's location.
func DateTimeOf(t gotime.Time) DateTime {
	return DateTime{date: DateOf(t), time: TimeOf(t)}
}

func (dt DateTime) Date() Date { return dt.date }
func (dt DateTime) Time() Time { return dt.time }

// Format renders the datetime against layout with English names.
func (dt DateTime) Format(layout string) (string, error) {
	return dt.FormatLanguage(layout, English)
}

// FormatLanguage renders the datetime against layout using lang's name
// tables.
func (dt DateTime) FormatLanguage(layout string, lang Language) (string, error) {
	out, err := dt.AppendFormat(nil, layout, lang)
	return string(out), err
}

// AppendFormat appends the formatted datetime to dst.
func (dt DateTime) AppendFormat(dst []byte, layout string, lang Language) ([]byte, error) {
	return appendLayout(dst, layout, &formatValue{date: &dt.date, time: &dt.time, lang: lang})
}

// String renders the %Y-%m-%d %H:%M:%S form.
func (dt DateTime) String() string {
	out, _ := dt.Format(layoutISODate + " " + layoutClock)
	return out
}

// ParseDateTime parses value against layout with English names.
func ParseDateTime(value, layout string) (DateTime, error) {
	return ParseDateTimeLanguage(value, layout, English)
}

// ParseDateTimeLanguage parses value against layout using lang's name
// tables.
func ParseDateTimeLanguage(value, layout string, lang Language) (DateTime, error) {
	items, err := ParseItems(value, layout, lang)
	if err != nil {
		return DateTime{}, err
	}
	date, err := dateFromItems(&items)
	if err != nil {
		return DateTime{}, fmt.Errorf("date: %w", err)
	}
	t, err := timeFromItems(&items)
	if err != nil {
		return DateTime{}, fmt.Errorf("time: %w", err)
	}
	return DateTime{date: date, time: t}, nil
}
