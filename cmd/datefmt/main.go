package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/scylladb/termtables"

	datefmt "github.com/goliatone/go-datefmt"
)

type cliConfig struct {
	layout  string
	lang    string
	bundles []string
	value   string
}

type bundleFlag struct {
	items []string
}

func (f *bundleFlag) String() string {
	return fmt.Sprintf("%v", f.items)
}

func (f *bundleFlag) Set(value string) error {
	if value == "" {
		return errors.New("empty bundle path")
	}
	f.items = append(f.items, value)
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datefmt: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig
	var bundles bundleFlag

	flag.StringVar(&cfg.layout, "layout", "%Y-%m-%d %H:%M:%S", "strftime-style layout")
	flag.StringVar(&cfg.lang, "lang", "en", "language code for month and weekday names")
	flag.Var(&bundles, "bundle", "language bundle file (.yaml/.json) to register. Repeat flag to add more.")
	flag.Parse()

	cfg.bundles = bundles.items
	if flag.NArg() > 1 {
		return cliConfig{}, fmt.Errorf("at most one value argument, got %d", flag.NArg())
	}
	if flag.NArg() == 1 {
		cfg.value = flag.Arg(0)
	}
	return cfg, nil
}

// run formats the current moment when no value was given, and otherwise
// parses the value and prints the field breakdown plus whatever concrete
// values the layout can resolve.
func run(cfg cliConfig) error {
	for _, path := range cfg.bundles {
		if _, err := datefmt.LoadLanguageFile(path); err != nil {
			return err
		}
	}

	lang, err := datefmt.LanguageFor(cfg.lang)
	if err != nil {
		return err
	}

	if cfg.value == "" {
		out, err := datefmt.DateTimeOf(time.Now()).FormatLanguage(cfg.layout, lang)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	items, err := datefmt.ParseItems(cfg.value, cfg.layout, lang)
	if err != nil {
		return err
	}

	fmt.Println(renderItems(&items))
	renderResolved(cfg.value, cfg.layout, lang)
	return nil
}

func renderItems(items *datefmt.ParsedItems) string {
	table := termtables.CreateTable()
	table.AddHeaders("Field", "Value")

	addInt := func(name string, v *int) {
		if v != nil {
			table.AddRow(name, fmt.Sprintf("%d", *v))
		}
	}
	addInt("year", items.Year)
	addInt("week-based year", items.WeekBasedYear)
	addInt("month", items.Month)
	addInt("day", items.Day)
	addInt("ordinal day", items.OrdinalDay)
	addInt("ISO week", items.ISOWeek)
	addInt("Sunday week", items.SundayWeek)
	addInt("Monday week", items.MondayWeek)
	if items.Weekday != nil {
		table.AddRow("weekday", items.Weekday.String())
	}
	addInt("hour", items.Hour24)
	addInt("hour (12h)", items.Hour12)
	addInt("minute", items.Minute)
	addInt("second", items.Second)
	addInt("nanosecond", items.Nanosecond)
	if items.Meridiem != nil {
		table.AddRow("meridiem", items.Meridiem.String())
	}
	if items.Offset != nil {
		table.AddRow("offset", items.Offset.String())
	}
	return table.Render()
}

func renderResolved(value, layout string, lang datefmt.Language) {
	if dt, err := datefmt.ParseDateTimeLanguage(value, layout, lang); err == nil {
		fmt.Printf("datetime: %v\n", dt)
		return
	}
	if d, err := datefmt.ParseDateLanguage(value, layout, lang); err == nil {
		fmt.Printf("date: %v\n", d)
	}
	if t, err := datefmt.ParseTimeLanguage(value, layout, lang); err == nil {
		fmt.Printf("time: %v\n", t)
	}
	if o, err := datefmt.ParseOffset(value, layout); err == nil {
		fmt.Printf("offset: %v\n", o)
	}
}
