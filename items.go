package datefmt

// ParsedItems accumulates every fact a layout's directives discover while
// parsing. Each field is either absent (nil) or holds a value its producing
// directive already validated; no field is ever partially written. A fresh
// accumulator serves exactly one parse call and is consumed by a finalizer.
//
// Day and OrdinalDay carry upper bounds as written (31, 366); whether the
// day exists in the resolved month or year is checked at finalization.
type ParsedItems struct {
	Year          *int
	WeekBasedYear *int
	Month         *int // 1..12
	Day           *int // 1..31
	OrdinalDay    *int // 1..366
	ISOWeek       *int // 1..53
	SundayWeek    *int // 0..53
	MondayWeek    *int // 0..53
	Weekday       *Weekday
	Hour24        *int // 0..23
	Hour12        *int // 1..12
	Minute        *int // 0..59
	Second        *int // 0..59
	Nanosecond    *int // 0..999999999
	Meridiem      *Meridiem
	Offset        *UTCOffset
}

func intRef(v int) *int {
	return &v
}

func weekdayRef(w Weekday) *Weekday {
	return &w
}

func meridiemRef(m Meridiem) *Meridiem {
	return &m
}

func offsetRef(o UTCOffset) *UTCOffset {
	return &o
}

// SetCentury folds a century into the year, keeping the last two digits a
// two-digit year directive may already have contributed. An absent year
// counts as zero, so a layout carrying only the century yields century*100.
func (items *ParsedItems) SetCentury(century int) {
	existing := 0
	if items.Year != nil {
		existing = *items.Year
	}
	items.Year = intRef(century*100 + floorMod(existing, 100))
}

// SetYearLastTwo folds the last two digits into the year, keeping the century
// a century directive may already have contributed. An absent year counts as
// zero, so a layout carrying only the two-digit year yields 0..99.
func (items *ParsedItems) SetYearLastTwo(v int) {
	existing := 0
	if items.Year != nil {
		existing = *items.Year
	}
	items.Year = intRef((existing/100)*100 + v)
}

// SetWeekYearLastTwo folds the last two digits into the week-based year,
// keeping any century already present.
func (items *ParsedItems) SetWeekYearLastTwo(v int) {
	existing := 0
	if items.WeekBasedYear != nil {
		existing = *items.WeekBasedYear
	}
	items.WeekBasedYear = intRef((existing/100)*100 + v)
}
