package datefmt

import (
	"errors"
	"testing"
)

func mustDate(t *testing.T, year, month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d,%d,%d): %v", year, month, day, err)
	}
	return d
}

func mustTime(t *testing.T, hour, minute, second, nanosecond int) Time {
	t.Helper()
	tm, err := NewTime(hour, minute, second, nanosecond)
	if err != nil {
		t.Fatalf("NewTime(%d,%d,%d,%d): %v", hour, minute, second, nanosecond, err)
	}
	return tm
}

func TestDateDirectiveRoundTrips(t *testing.T) {
	date := mustDate(t, 2024, 3, 7)

	tests := []struct {
		layout string
		want   string
	}{
		{layout: "%Y-%m-%d", want: "2024-03-07"},
		{layout: "%Y-%j", want: "2024-067"},
		{layout: "%G-W%V-%u", want: "2024-W10-4"},
		{layout: "%F", want: "2024-03-07"},
		{layout: "%Y/%m/%e", want: "2024/03/ 7"},
		{layout: "%Y-%m-%-d", want: "2024-03-7"},
	}

	for _, tc := range tests {
		got, err := date.Format(tc.layout)
		if err != nil {
			t.Fatalf("Format(%q): %v", tc.layout, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.layout, got, tc.want)
		}

		back, err := ParseDate(got, tc.layout)
		if err != nil {
			t.Fatalf("ParseDate(%q, %q): %v", got, tc.layout, err)
		}
		if back != date {
			t.Fatalf("round trip %q: got %v, want %v", tc.layout, back, date)
		}
	}
}

func TestDateDirectiveFormatting(t *testing.T) {
	tests := []struct {
		year, month, day int
		layout           string
		want             string
	}{
		{2024, 3, 7, "%a", "Thu"},
		{2024, 3, 7, "%A", "Thursday"},
		{2024, 3, 7, "%b", "Mar"},
		{2024, 3, 7, "%B", "March"},
		{2024, 3, 7, "%C", "20"},
		{2024, 3, 7, "%y", "24"},
		{2024, 3, 7, "%g", "24"},
		{2024, 3, 7, "%u", "4"},
		{2024, 3, 7, "%w", "4"},
		{2024, 3, 10, "%w", "0"},
		{2024, 3, 7, "%U", "09"},
		{2024, 3, 7, "%W", "10"},
		{2024, 3, 7, "%D", "03/07/24"},
		{12345, 6, 1, "%Y", "+12345"},
		{-44, 3, 15, "%Y", "-044"},
		{0, 1, 1, "%Y", "0000"},
		{1, 1, 1, "%_Y", "   1"},
		{2024, 3, 7, "%-j", "67"},
	}

	for _, tc := range tests {
		date := mustDate(t, tc.year, tc.month, tc.day)
		got, err := date.Format(tc.layout)
		if err != nil {
			t.Fatalf("Format(%q) on %d-%d-%d: %v", tc.layout, tc.year, tc.month, tc.day, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%q) on %d-%d-%d = %q, want %q", tc.layout, tc.year, tc.month, tc.day, got, tc.want)
		}
	}
}

func TestVariableWidthSignedYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "2024", want: 2024, ok: true},
		{input: "+2024", want: 2024, ok: true},
		{input: "-044", want: -44, ok: true},
		{input: "5", want: 5, ok: true},
		{input: "100000", want: 100000, ok: true},
		{input: "-100000", want: -100000, ok: true},
		{input: "+100001", ok: false},
		{input: "-100001", ok: false},
		{input: "x", ok: false},
	}

	for _, tc := range tests {
		items, err := ParseItems(tc.input, "%-Y", nil)
		if !tc.ok {
			if !errors.Is(err, ErrInvalidYear) {
				t.Fatalf("ParseItems(%q) err = %v, want ErrInvalidYear", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseItems(%q): %v", tc.input, err)
		}
		if items.Year == nil || *items.Year != tc.want {
			t.Fatalf("ParseItems(%q) year = %v, want %d", tc.input, items.Year, tc.want)
		}
	}
}

func TestZeroYearNeverSigned(t *testing.T) {
	date := mustDate(t, 0, 1, 1)
	got, err := date.Format("%Y")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "0000" {
		t.Fatalf("year zero formats %q, want %q", got, "0000")
	}
}

func TestCenturyYearMerge(t *testing.T) {
	items, err := ParseItems("20-21", "%C-%y", nil)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.Year == nil || *items.Year != 2021 {
		t.Fatalf("%%C-%%y year = %v, want 2021", items.Year)
	}

	// The merge is order-independent when both halves are present.
	items, err = ParseItems("21-20", "%y-%C", nil)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.Year == nil || *items.Year != 2021 {
		t.Fatalf("%%y-%%C year = %v, want 2021", items.Year)
	}

	// A lone %y or %C gets an implicit zero for the missing half. Inherited
	// behavior; see DESIGN.md.
	items, err = ParseItems("21", "%y", nil)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.Year == nil || *items.Year != 21 {
		t.Fatalf("lone %%y year = %v, want 21", items.Year)
	}

	items, err = ParseItems("20", "%C", nil)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.Year == nil || *items.Year != 2000 {
		t.Fatalf("lone %%C year = %v, want 2000", items.Year)
	}
}

func TestWeekYearMerge(t *testing.T) {
	items, err := ParseItems("2024 24", "%G %g", nil)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.WeekBasedYear == nil || *items.WeekBasedYear != 2024 {
		t.Fatalf("week-based year = %v, want 2024", items.WeekBasedYear)
	}

	items, err = ParseItems("99", "%g", nil)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.WeekBasedYear == nil || *items.WeekBasedYear != 99 {
		t.Fatalf("lone %%g week-based year = %v, want 99", items.WeekBasedYear)
	}
}

func TestParseRangeEnforcement(t *testing.T) {
	tests := []struct {
		input  string
		layout string
		want   error
	}{
		{input: "54", layout: "%U", want: ErrInvalidWeek},
		{input: "54", layout: "%W", want: ErrInvalidWeek},
		{input: "00", layout: "%V", want: ErrInvalidWeek},
		{input: "54", layout: "%V", want: ErrInvalidWeek},
		{input: "13", layout: "%m", want: ErrInvalidMonth},
		{input: "00", layout: "%m", want: ErrInvalidMonth},
		{input: "00", layout: "%d", want: ErrInvalidDayOfMonth},
		{input: "000", layout: "%j", want: ErrInvalidDayOfYear},
		{input: "8", layout: "%u", want: ErrInvalidDayOfWeek},
		{input: "7", layout: "%w", want: ErrInvalidDayOfWeek},
		{input: "24", layout: "%H", want: ErrInvalidHour},
		{input: "00", layout: "%I", want: ErrInvalidHour},
		{input: "60", layout: "%M", want: ErrInvalidMinute},
		{input: "60", layout: "%S", want: ErrInvalidSecond},
		{input: "XM", layout: "%p", want: ErrInvalidAmPm},
		{input: "pm", layout: "%p", want: ErrInvalidAmPm},
		{input: "0530", layout: "%z", want: ErrInvalidOffset},
	}

	for _, tc := range tests {
		if _, err := ParseItems(tc.input, tc.layout, nil); !errors.Is(err, tc.want) {
			t.Fatalf("ParseItems(%q, %q) err = %v, want %v", tc.input, tc.layout, err, tc.want)
		}
	}
}

func TestParsePaddingDefaults(t *testing.T) {
	// %d requires two zero-padded digits; %e accepts a space-padded single
	// digit.
	if _, err := ParseItems("5", "%d", nil); !errors.Is(err, ErrInvalidDayOfMonth) {
		t.Fatalf("%%d on single digit err = %v, want ErrInvalidDayOfMonth", err)
	}
	items, err := ParseItems(" 5", "%e", nil)
	if err != nil {
		t.Fatalf("ParseItems(%q, %%e): %v", " 5", err)
	}
	if items.Day == nil || *items.Day != 5 {
		t.Fatalf("%%e day = %v, want 5", items.Day)
	}
	items, err = ParseItems("15", "%e", nil)
	if err != nil {
		t.Fatalf("ParseItems(%q, %%e): %v", "15", err)
	}
	if items.Day == nil || *items.Day != 15 {
		t.Fatalf("%%e day = %v, want 15", items.Day)
	}
}

func TestLocaleNamesRoundTrip(t *testing.T) {
	langs := []Language{English, Spanish, French}

	for _, lang := range langs {
		t.Run(lang.Code(), func(t *testing.T) {
			months := lang.MonthNames()
			shortMonths := lang.ShortMonthNames()
			for i := 0; i < 12; i++ {
				items, err := ParseItems(months[i], "%B", lang)
				if err != nil {
					t.Fatalf("%%B %q: %v", months[i], err)
				}
				if items.Month == nil || *items.Month != i+1 {
					t.Fatalf("%%B %q month = %v, want %d", months[i], items.Month, i+1)
				}

				items, err = ParseItems(shortMonths[i], "%b", lang)
				if err != nil {
					t.Fatalf("%%b %q: %v", shortMonths[i], err)
				}
				if items.Month == nil || *items.Month != i+1 {
					t.Fatalf("%%b %q month = %v, want %d", shortMonths[i], items.Month, i+1)
				}
			}

			weekdays := lang.WeekdayNames()
			shortWeekdays := lang.ShortWeekdayNames()
			for i := 0; i < 7; i++ {
				items, err := ParseItems(weekdays[i], "%A", lang)
				if err != nil {
					t.Fatalf("%%A %q: %v", weekdays[i], err)
				}
				if items.Weekday == nil || *items.Weekday != Weekday(i) {
					t.Fatalf("%%A %q weekday = %v, want %v", weekdays[i], items.Weekday, Weekday(i))
				}

				items, err = ParseItems(shortWeekdays[i], "%a", lang)
				if err != nil {
					t.Fatalf("%%a %q: %v", shortWeekdays[i], err)
				}
				if items.Weekday == nil || *items.Weekday != Weekday(i) {
					t.Fatalf("%%a %q weekday = %v, want %v", shortWeekdays[i], items.Weekday, Weekday(i))
				}
			}
		})
	}
}

func TestLocaleNameMismatch(t *testing.T) {
	if _, err := ParseItems("Blursday", "%A", English); !errors.Is(err, ErrInvalidDayOfWeek) {
		t.Fatalf("%%A mismatch err = %v, want ErrInvalidDayOfWeek", err)
	}
	if _, err := ParseItems("Smarch", "%B", English); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("%%B mismatch err = %v, want ErrInvalidMonth", err)
	}
	// English names do not parse under French tables.
	if _, err := ParseItems("Thursday", "%A", French); !errors.Is(err, ErrInvalidDayOfWeek) {
		t.Fatalf("french %%A on english name err = %v, want ErrInvalidDayOfWeek", err)
	}
}

func TestEndToEndScenarios(t *testing.T) {
	date, err := ParseDate("2024-03-07", "%Y-%m-%d")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if date.Year() != 2024 || date.Month() != 3 || date.Day() != 7 {
		t.Fatalf("parsed %v, want 2024-03-07", date)
	}

	items, err := ParseItems("jeudi, 07 mars", "%A, %d %B", French)
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items.Weekday == nil || *items.Weekday != Thursday {
		t.Fatalf("weekday = %v, want Thursday", items.Weekday)
	}
	if items.Day == nil || *items.Day != 7 {
		t.Fatalf("day = %v, want 7", items.Day)
	}
	if items.Month == nil || *items.Month != 3 {
		t.Fatalf("month = %v, want 3", items.Month)
	}
}

func TestParseLeftoverAndShortInput(t *testing.T) {
	if _, err := ParseDate("2024-03-07x", "%Y-%m-%d"); !errors.Is(err, ErrUnexpectedCharacter) {
		t.Fatalf("trailing input err = %v, want ErrUnexpectedCharacter", err)
	}
	if _, err := ParseDate("2024-03", "%Y-%m-%d"); !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("short input err = %v, want ErrUnexpectedEnd", err)
	}
	if _, err := ParseDate("2024/03/07", "%Y-%m-%d"); !errors.Is(err, ErrUnexpectedCharacter) {
		t.Fatalf("literal mismatch err = %v, want ErrUnexpectedCharacter", err)
	}
}

func TestFormatMissingComponent(t *testing.T) {
	date := mustDate(t, 2024, 3, 7)
	if _, err := date.Format("%H:%M"); !errors.Is(err, ErrMissingComponent) {
		t.Fatalf("date %%H err = %v, want ErrMissingComponent", err)
	}

	tm := mustTime(t, 13, 5, 9, 0)
	if _, err := tm.Format("%Y"); !errors.Is(err, ErrMissingComponent) {
		t.Fatalf("time %%Y err = %v, want ErrMissingComponent", err)
	}
	if _, err := tm.Format("%z"); !errors.Is(err, ErrMissingComponent) {
		t.Fatalf("time %%z err = %v, want ErrMissingComponent", err)
	}
}

func TestLiteralPercent(t *testing.T) {
	date := mustDate(t, 2024, 3, 7)
	got, err := date.Format("100%% on %Y")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "100% on 2024" {
		t.Fatalf("Format = %q", got)
	}

	back, err := ParseDate("100% on 2024-03-07", "100%% on %Y-%m-%d")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if back != date {
		t.Fatalf("round trip = %v, want %v", back, date)
	}
}
