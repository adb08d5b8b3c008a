package datefmt

import (
	"fmt"
	"time"
)

// Date is a calendar date in the proleptic Gregorian calendar, stored as a
// year and a 1-based ordinal day. Month and day are derived views. The zero
// value is invalid; use a constructor.
type Date struct {
	year    int
	ordinal int
}

// NewDate builds a date from a year, month and day, validating each part.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %d-%02d has no day %d", ErrInvalidDayOfMonth, year, month, day)
	}
	return Date{year: year, ordinal: monthDayToOrdinal(year, month, day)}, nil
}

// NewDateFromOrdinal builds a date from a year and a 1-based day of year.
func NewDateFromOrdinal(year, ordinal int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if ordinal < 1 || ordinal > daysInYear(year) {
		return Date{}, fmt.Errorf("%w: %d has no day %d", ErrInvalidDayOfYear, year, ordinal)
	}
	return Date{year: year, ordinal: ordinal}, nil
}

// NewDateFromISOWeek builds a date from an ISO 8601 week date: the week-based
// year, the week number, and the weekday. The calendar year of the result can
// differ from isoYear at the year boundaries.
func NewDateFromISOWeek(isoYear, week int, weekday Weekday) (Date, error) {
	if isoYear < MinYear || isoYear > MaxYear {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidYear, isoYear)
	}
	if weekday < Monday || weekday > Sunday {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, int(weekday))
	}
	if week < 1 || week > weeksInISOYear(isoYear) {
		return Date{}, fmt.Errorf("%w: %d has no week %d", ErrInvalidWeek, isoYear, week)
	}
	year, ordinal := ordinalOfISOWeek(isoYear, week, weekday)
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return Date{year: year, ordinal: ordinal}, nil
}

// DateOf projects the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), ordinal: t.YearDay()}
}

// Today is DateOf for the current local time.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) Year() int { return d.year }

func (d Date) Month() int {
	month, _ := ordinalToMonthDay(d.year, d.ordinal)
	return month
}

func (d Date) Day() int {
	_, day := ordinalToMonthDay(d.year, d.ordinal)
	return day
}

// Ordinal reports the 1-based day of year.
func (d Date) Ordinal() int { return d.ordinal }

func (d Date) Weekday() Weekday {
	return weekdayOf(d.year, d.ordinal)
}

// ISOWeek reports the ISO 8601 week-based year and week number.
func (d Date) ISOWeek() (year, week int) {
	return isoYearWeek(d.year, d.ordinal)
}

// SundayWeek reports the week number under the convention that week 1 starts
// on the year's first Sunday; days before that are week 0.
func (d Date) SundayWeek() int {
	return sundayWeek(d.year, d.ordinal)
}

// MondayWeek is SundayWeek with weeks starting on Monday.
func (d Date) MondayWeek() int {
	return mondayWeek(d.year, d.ordinal)
}

// Format renders the date against layout with English names.
func (d Date) Format(layout string) (string, error) {
	return d.FormatLanguage(layout, English)
}

// FormatLanguage renders the date against layout using lang's name tables.
func (d Date) FormatLanguage(layout string, lang Language) (string, error) {
	out, err := d.AppendFormat(nil, layout, lang)
	return string(out), err
}

// AppendFormat appends the formatted date to dst.
func (d Date) AppendFormat(dst []byte, layout string, lang Language) ([]byte, error) {
	return appendLayout(dst, layout, &formatValue{date: &d, lang: lang})
}

// String renders the ISO %Y-%m-%d form.
func (d Date) String() string {
	out, _ := d.Format(layoutISODate)
	return out
}

// ParseDate parses value against layout with English names.
func ParseDate(value, layout string) (Date, error) {
	return ParseDateLanguage(value, layout, English)
}

// ParseDateLanguage parses value against layout using lang's name tables.
func ParseDateLanguage(value, layout string, lang Language) (Date, error) {
	items, err := ParseItems(value, layout, lang)
	if err != nil {
		return Date{}, err
	}
	return dateFromItems(&items)
}

// dateFromItems resolves the accumulator into a date. When a layout carries
// more than one complete representation, year/month/day wins over
// year/ordinal, which wins over the ISO week triple.
func dateFromItems(items *ParsedItems) (Date, error) {
	switch {
	case items.Year != nil && items.Month != nil && items.Day != nil:
		return NewDate(*items.Year, *items.Month, *items.Day)
	case items.Year != nil && items.OrdinalDay != nil:
		return NewDateFromOrdinal(*items.Year, *items.OrdinalDay)
	case items.WeekBasedYear != nil && items.ISOWeek != nil && items.Weekday != nil:
		return NewDateFromISOWeek(*items.WeekBasedYear, *items.ISOWeek, *items.Weekday)
	default:
		return Date{}, fmt.Errorf("%w: no complete date in layout", ErrInsufficientInformation)
	}
}
