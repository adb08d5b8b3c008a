package datefmt

// Calendar arithmetic over the proleptic Gregorian calendar. Everything here
// is a pure function; dates are (year, ordinal) pairs with ordinal 1-based.

// MinYear and MaxYear bound the representable calendar years, matching the
// six-digit magnitude limit of the %Y and %G directives.
const (
	MinYear = -100000
	MaxYear = 100000
)

// floorMod returns the least non-negative remainder of a/b for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// isLeap reports whether year is a leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

// daysBefore[m] is the number of days in a common year strictly before month
// m+1. daysBefore[12] is the whole year.
var daysBefore = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

func daysInMonth(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// monthDayToOrdinal converts a valid month/day pair to the 1-based day of
// year.
func monthDayToOrdinal(year, month, day int) int {
	o := daysBefore[month-1] + day
	if month > 2 && isLeap(year) {
		o++
	}
	return o
}

// ordinalToMonthDay converts a valid 1-based day of year to its month/day
// pair.
func ordinalToMonthDay(year, ordinal int) (month, day int) {
	if isLeap(year) {
		switch {
		case ordinal == 60:
			return 2, 29
		case ordinal > 60:
			ordinal--
		}
	}
	month = 1
	for daysBefore[month] < ordinal {
		month++
	}
	return month, ordinal - daysBefore[month-1]
}

// daysFromEpoch counts the days from 1970-01-01 to the given date, negative
// for earlier dates. The era decomposition keeps the arithmetic exact over
// the whole supported year range.
func daysFromEpoch(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	var mp int
	if month > 2 {
		mp = month - 3
	} else {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// weekdayOf computes the weekday of a year/ordinal pair. 1970-01-01 was a
// Thursday.
func weekdayOf(year, ordinal int) Weekday {
	month, day := ordinalToMonthDay(year, ordinal)
	z := daysFromEpoch(year, month, day)
	return Weekday(floorMod(z+3, 7))
}

// weeksInISOYear reports 52 or 53: a year has 53 ISO weeks when it starts on
// a Thursday, or on a Wednesday in a leap year.
func weeksInISOYear(year int) int {
	jan1 := weekdayOf(year, 1)
	if jan1 == Thursday || (isLeap(year) && jan1 == Wednesday) {
		return 53
	}
	return 52
}

// isoYearWeek computes the ISO 8601 week-based year and week number, which
// can differ from the calendar year in the first and last days of January
// and December.
func isoYearWeek(year, ordinal int) (isoYear, week int) {
	wd := weekdayOf(year, ordinal).ISONumber()
	week = (ordinal - wd + 10) / 7
	switch {
	case week < 1:
		return year - 1, weeksInISOYear(year - 1)
	case week > weeksInISOYear(year):
		return year + 1, 1
	default:
		return year, week
	}
}

// ordinalOfISOWeek converts an ISO week date to a calendar year and ordinal.
// The result can land in the year before or after the week-based year.
func ordinalOfISOWeek(isoYear, week int, wd Weekday) (year, ordinal int) {
	jan4 := weekdayOf(isoYear, 4).ISONumber()
	year = isoYear
	ordinal = week*7 + wd.ISONumber() - (jan4 + 3)
	if ordinal < 1 {
		year--
		ordinal += daysInYear(year)
	} else if d := daysInYear(year); ordinal > d {
		ordinal -= d
		year++
	}
	return year, ordinal
}

// sundayWeek reports the Sunday-based week number (0..53), where week 1
// begins on the year's first Sunday.
func sundayWeek(year, ordinal int) int {
	return (ordinal - weekdayOf(year, ordinal).USNumber() + 6) / 7
}

// mondayWeek reports the Monday-based week number (0..53), where week 1
// begins on the year's first Monday.
func mondayWeek(year, ordinal int) int {
	return (ordinal - int(weekdayOf(year, ordinal)) + 6) / 7
}
