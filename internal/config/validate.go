package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptySourcePath indicates a missing input file path
	ErrEmptySourcePath = errors.New("empty source path")

	// ErrEmptyOutputDir indicates a missing output directory
	ErrEmptyOutputDir = errors.New("empty output dir")

	// ErrInvalidLookahead indicates an invalid scan lookahead window
	ErrInvalidLookahead = errors.New("invalid lookahead")

	// ErrInvalidLabel indicates a category label unusable as a module name
	ErrInvalidLabel = errors.New("invalid category label")

	// ErrEmptyEntry indicates a blank identifier entry in the category table
	ErrEmptyEntry = errors.New("empty category entry")
)

// moduleLabelPattern constrains category labels: each label becomes both a
// file name and a module declaration in the generated manifest.
var moduleLabelPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Source.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: source.path is required", ErrEmptySourcePath))
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		errs = append(errs, fmt.Errorf("%w: output.dir is required", ErrEmptyOutputDir))
	}

	if cfg.Scan.Lookahead <= 0 {
		errs = append(errs, fmt.Errorf("%w: scan.lookahead must be positive, got %d", ErrInvalidLookahead, cfg.Scan.Lookahead))
	}

	if fallback := cfg.Output.Fallback; fallback != "" && !moduleLabelPattern.MatchString(fallback) {
		errs = append(errs, fmt.Errorf("%w: fallback %q", ErrInvalidLabel, fallback))
	}

	if err := validateCategories(cfg.Categories); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateCategories(categories map[string][]string) error {
	var errs []error

	for label, entries := range categories {
		if !moduleLabelPattern.MatchString(label) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLabel, label))
		}
		for _, entry := range entries {
			if strings.TrimSpace(entry) == "" {
				errs = append(errs, fmt.Errorf("%w: category %q", ErrEmptyEntry, label))
			}
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
