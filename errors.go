package datefmt

import "errors"

// Directive-level parse failures. Each directive returns the error matching
// the component it owns, wrapped with position context by the engine.
var (
	// ErrInvalidYear indicates a year or week-based year that could not be
	// read, or whose magnitude exceeds the supported range.
	ErrInvalidYear = errors.New("datefmt: invalid year")

	// ErrInvalidMonth indicates a month outside 1..12 or an unrecognized
	// month name.
	ErrInvalidMonth = errors.New("datefmt: invalid month")

	// ErrInvalidDayOfMonth indicates a day-of-month that could not be read
	// or that does not exist in the resolved month.
	ErrInvalidDayOfMonth = errors.New("datefmt: invalid day of month")

	// ErrInvalidDayOfYear indicates an ordinal day that could not be read
	// or that does not exist in the resolved year.
	ErrInvalidDayOfYear = errors.New("datefmt: invalid day of year")

	// ErrInvalidDayOfWeek indicates an unrecognized weekday name or number.
	ErrInvalidDayOfWeek = errors.New("datefmt: invalid day of week")

	// ErrInvalidWeek indicates a week number outside its directive's range.
	ErrInvalidWeek = errors.New("datefmt: invalid week")

	// ErrInvalidHour indicates an hour outside 0..23 (or 1..12 for the
	// 12-hour directive).
	ErrInvalidHour = errors.New("datefmt: invalid hour")

	// ErrInvalidMinute indicates a minute outside 0..59.
	ErrInvalidMinute = errors.New("datefmt: invalid minute")

	// ErrInvalidSecond indicates a second outside 0..59.
	ErrInvalidSecond = errors.New("datefmt: invalid second")

	// ErrInvalidNanosecond indicates a subsecond field that could not be read.
	ErrInvalidNanosecond = errors.New("datefmt: invalid nanosecond")

	// ErrInvalidAmPm indicates an unrecognized meridiem marker.
	ErrInvalidAmPm = errors.New("datefmt: invalid am/pm")

	// ErrInvalidOffset indicates a UTC offset that could not be read.
	ErrInvalidOffset = errors.New("datefmt: invalid offset")
)

// Engine and finalizer failures.
var (
	// ErrInsufficientInformation indicates that every directive parsed but
	// the layout never populated a field the requested value needs.
	ErrInsufficientInformation = errors.New("datefmt: insufficient information")

	// ErrUnexpectedCharacter indicates input that does not match the layout.
	ErrUnexpectedCharacter = errors.New("datefmt: unexpected character")

	// ErrUnexpectedEnd indicates input that ran out before the layout did.
	ErrUnexpectedEnd = errors.New("datefmt: unexpected end of input")

	// ErrUnknownDirective indicates a %-specifier with no registered
	// directive.
	ErrUnknownDirective = errors.New("datefmt: unknown directive")

	// ErrBadLayout indicates a malformed layout, such as a dangling % or a
	// padding modifier with no specifier.
	ErrBadLayout = errors.New("datefmt: bad layout")

	// ErrMissingComponent indicates a directive that needs a component the
	// formatted value does not carry, such as %H against a bare Date.
	ErrMissingComponent = errors.New("datefmt: layout requires a component the value does not have")
)

// Language registry and bundle failures.
var (
	// ErrUnknownLanguage indicates a code with no registered language, after
	// parent-chain fallback.
	ErrUnknownLanguage = errors.New("datefmt: unknown language")

	// ErrAmbiguousNames indicates a name table where an earlier entry is a
	// strict prefix of a later one, which first-prefix matching cannot
	// distinguish.
	ErrAmbiguousNames = errors.New("datefmt: ambiguous name table")

	// ErrInvalidBundle indicates a language bundle with missing or malformed
	// tables.
	ErrInvalidBundle = errors.New("datefmt: invalid language bundle")
)
