package datefmt

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Language supplies the four name tables the locale-aware directives read.
// Weekday tables start with Monday. Implementations must be immutable and
// safe for concurrent use; the fixed-size array returns hand every caller
// its own copy.
type Language interface {
	// Code is the BCP 47 tag the language registers under, such as "en".
	Code() string
	MonthNames() [12]string
	ShortMonthNames() [12]string
	// WeekdayNames returns the full weekday names, Monday first.
	WeekdayNames() [7]string
	// ShortWeekdayNames returns the abbreviated weekday names, Monday first.
	ShortWeekdayNames() [7]string
}

// staticLanguage is the data-only Language behind the builtins and the
// bundle loader.
type staticLanguage struct {
	code          string
	months        [12]string
	shortMonths   [12]string
	weekdays      [7]string
	shortWeekdays [7]string
}

var _ Language = staticLanguage{}

func (l staticLanguage) Code() string                 { return l.code }
func (l staticLanguage) MonthNames() [12]string       { return l.months }
func (l staticLanguage) ShortMonthNames() [12]string  { return l.shortMonths }
func (l staticLanguage) WeekdayNames() [7]string      { return l.weekdays }
func (l staticLanguage) ShortWeekdayNames() [7]string { return l.shortWeekdays }

// languageRegistry guards the code → Language map. The builtin tables stay
// immutable; only the map itself takes writes.
type languageRegistry struct {
	mu    sync.RWMutex
	langs map[string]Language
}

var registry = &languageRegistry{
	langs: map[string]Language{
		"en": English,
		"es": Spanish,
		"fr": French,
	},
}

// RegisterLanguage adds lang to the process-wide registry, replacing any
// earlier registration under the same code. The code must parse as a BCP 47
// tag and every table must pass validateNameTable.
func RegisterLanguage(lang Language) error {
	if lang == nil {
		return fmt.Errorf("%w: nil language", ErrInvalidBundle)
	}

	code, err := normalizeLanguageCode(lang.Code())
	if err != nil {
		return err
	}

	if err := validateLanguage(lang); err != nil {
		return fmt.Errorf("language %s: %w", code, err)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.langs[code] = lang
	return nil
}

// LanguageFor resolves code against the registry, walking the BCP 47 parent
// chain before giving up, so "es-MX" falls back to "es".
func LanguageFor(code string) (Language, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty code", ErrUnknownLanguage)
	}

	registry.mu.RLock()
	defer registry.mu.RUnlock()

	if lang, ok := registry.langs[normalized]; ok {
		return lang, nil
	}

	if tag, err := language.Parse(normalized); err == nil {
		if lang, ok := registry.langs[tag.String()]; ok {
			return lang, nil
		}
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if lang, ok := registry.langs[value]; ok {
				return lang, nil
			}
		}
	}

	// Plain truncation for tags x/text does not recognize.
	for current := parentCode(normalized); current != ""; current = parentCode(current) {
		if lang, ok := registry.langs[current]; ok {
			return lang, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// Languages lists the registered codes, sorted.
func Languages() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	codes := make([]string, 0, len(registry.langs))
	for code := range registry.langs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// normalizeCode normalizes a language identifier by replacing underscores
// with hyphens and trimming whitespace.
func normalizeCode(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}

func parentCode(code string) string {
	if idx := strings.LastIndex(code, "-"); idx > 0 {
		return code[:idx]
	}
	return ""
}

// normalizeLanguageCode canonicalizes a registration code through x/text.
func normalizeLanguageCode(code string) (string, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty code", ErrUnknownLanguage)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("datefmt: language code %q: %w", code, err)
	}
	return tag.String(), nil
}

func validateLanguage(lang Language) error {
	months := lang.MonthNames()
	if err := validateNameTable("months", months[:]); err != nil {
		return err
	}
	shortMonths := lang.ShortMonthNames()
	if err := validateNameTable("short_months", shortMonths[:]); err != nil {
		return err
	}
	weekdays := lang.WeekdayNames()
	if err := validateNameTable("weekdays", weekdays[:]); err != nil {
		return err
	}
	shortWeekdays := lang.ShortWeekdayNames()
	return validateNameTable("short_weekdays", shortWeekdays[:])
}

// validateNameTable rejects empty entries and any earlier entry that is a
// prefix of a later one, which first-prefix matching could never reach.
func validateNameTable(table string, names []string) error {
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidBundle, table, i)
		}
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if strings.HasPrefix(names[j], names[i]) {
				return fmt.Errorf("%w: %s entry %q shadows %q", ErrAmbiguousNames, table, names[i], names[j])
			}
		}
	}
	return nil
}

// monthCandidates zips a month table with 1-based month numbers in table
// order for first-prefix matching.
func monthCandidates(names [12]string) []candidate {
	cands := make([]candidate, len(names))
	for i, name := range names {
		cands[i] = candidate{text: name, value: i + 1}
	}
	return cands
}

// weekdayCandidates zips a weekday table, Monday first, with its Weekday
// values.
func weekdayCandidates(names [7]string) []candidate {
	cands := make([]candidate, len(names))
	for i, name := range names {
		cands[i] = candidate{text: name, value: int(weekdayOrder[i])}
	}
	return cands
}
