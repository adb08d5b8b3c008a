package datefmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// languageBundle is the on-disk shape of a language definition. Weekday
// tables start with Monday, matching the Language contract.
type languageBundle struct {
	Code          string   `yaml:"code" json:"code"`
	Months        []string `yaml:"months" json:"months"`
	ShortMonths   []string `yaml:"short_months" json:"short_months"`
	Weekdays      []string `yaml:"weekdays" json:"weekdays"`
	ShortWeekdays []string `yaml:"short_weekdays" json:"short_weekdays"`
}

type bundleConfig struct {
	register bool
}

// BundleOption adjusts how a language bundle is loaded.
type BundleOption func(*bundleConfig)

// WithBundleRegister controls whether a loaded language is registered into
// the process-wide registry. The default is true.
func WithBundleRegister(register bool) BundleOption {
	return func(cfg *bundleConfig) {
		cfg.register = register
	}
}

// LoadLanguageFile reads a language bundle from path, choosing the decoder
// by extension: .yaml/.yml or .json.
func LoadLanguageFile(path string, opts ...BundleOption) (Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
	}

	var bundle languageBundle
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bundle)
	case ".json":
		err = json.Unmarshal(data, &bundle)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %s", ErrInvalidBundle, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("datefmt: decode %s: %w", path, err)
	}

	lang, err := buildBundleLanguage(bundle, opts)
	if err != nil {
		return nil, fmt.Errorf("datefmt: bundle %s: %w", path, err)
	}
	return lang, nil
}

// ParseLanguageBundle decodes a language bundle from data as YAML, which
// accepts JSON input as a subset.
func ParseLanguageBundle(data []byte, opts ...BundleOption) (Language, error) {
	var bundle languageBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("datefmt: decode bundle: %w", err)
	}
	return buildBundleLanguage(bundle, opts)
}

func buildBundleLanguage(bundle languageBundle, opts []BundleOption) (Language, error) {
	cfg := bundleConfig{register: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.TrimSpace(bundle.Code) == "" {
		return nil, fmt.Errorf("%w: missing code", ErrInvalidBundle)
	}

	lang := staticLanguage{code: normalizeCode(bundle.Code)}
	if err := fillNameTable("months", lang.months[:], bundle.Months); err != nil {
		return nil, err
	}
	if err := fillNameTable("short_months", lang.shortMonths[:], bundle.ShortMonths); err != nil {
		return nil, err
	}
	if err := fillNameTable("weekdays", lang.weekdays[:], bundle.Weekdays); err != nil {
		return nil, err
	}
	if err := fillNameTable("short_weekdays", lang.shortWeekdays[:], bundle.ShortWeekdays); err != nil {
		return nil, err
	}

	if cfg.register {
		if err := RegisterLanguage(lang); err != nil {
			return nil, err
		}
	} else if err := validateLanguage(lang); err != nil {
		return nil, fmt.Errorf("language %s: %w", lang.code, err)
	}
	return lang, nil
}

func fillNameTable(table string, dst, src []string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrInvalidBundle, table, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}
