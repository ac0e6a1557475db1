package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenms/typesplit/internal/splitter"
)

// Test Plan for config:
// - Default() is a valid configuration with the built-in taxonomy
// - Loader: defaults when no config file is present
// - Loader: config file overrides defaults
// - Loader: environment variables override the config file
// - Loader: explicit config path must exist
// - Validation rejects bad labels, blank entries and bad lookahead

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "src/types.rs", cfg.Source.Path)
	assert.Equal(t, "src/types", cfg.Output.Dir)
	assert.Equal(t, splitter.DefaultPreamble, cfg.Output.Preamble)
	assert.Equal(t, splitter.DefaultFallbackCategory, cfg.Output.Fallback)
	assert.Equal(t, splitter.DefaultLookahead, cfg.Scan.Lookahead)

	assert.Contains(t, cfg.Categories["order"], "Side")
	assert.Contains(t, cfg.Categories["post_trade"], "TradeReportType")
	assert.Len(t, cfg.Categories, 13)
}

func TestDefaultCategories_NoDuplicateIdentifiers(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for label, entries := range DefaultCategories() {
		for _, entry := range entries {
			prev, dup := seen[entry]
			assert.False(t, dup, "%s claimed by both %s and %s", entry, prev, label)
			seen[entry] = label
		}
	}
}

func TestLoader_DefaultsWhenNoConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, Default().Source.Path, cfg.Source.Path)
	assert.Equal(t, Default().Scan.Lookahead, cfg.Scan.Lookahead)
	assert.Contains(t, cfg.Categories["order"], "Side")
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
source:
  path: monolith.rs
output:
  dir: generated
  preamble: "use crate::prelude::*;"
  fallback: misc
scan:
  lookahead: 50
categories:
  colors:
    - Red
    - Blue
`)

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "monolith.rs", cfg.Source.Path)
	assert.Equal(t, "generated", cfg.Output.Dir)
	assert.Equal(t, "use crate::prelude::*;", cfg.Output.Preamble)
	assert.Equal(t, "misc", cfg.Output.Fallback)
	assert.Equal(t, 50, cfg.Scan.Lookahead)
	assert.Equal(t, []string{"Red", "Blue"}, cfg.Categories["colors"])
}

func TestLoader_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
source:
  path: monolith.rs
`)

	t.Setenv("TYPESPLIT_SOURCE_PATH", "env.rs")
	t.Setenv("TYPESPLIT_SCAN_LOOKAHEAD", "75")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "env.rs", cfg.Source.Path)
	assert.Equal(t, 75, cfg.Scan.Lookahead)
}

func TestLoader_ExplicitConfigMustExist(t *testing.T) {
	t.Parallel()

	_, err := NewFileLoader(filepath.Join(t.TempDir(), "absent.yml")).Load()
	require.Error(t, err)
}

func TestLoader_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
scan:
  lookahead: -1
`)

	_, err := LoadConfigFromDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLookahead)
}

func TestValidate_BadCategoryLabel(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Categories["Not-A-Module"] = []string{"Side"}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestValidate_BlankEntry(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Categories["order"] = []string{"Side", "  "}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestValidate_EmptyPaths(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Source.Path = ""
	cfg.Output.Dir = " "

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrEmptySourcePath.Error())
	assert.Contains(t, err.Error(), ErrEmptyOutputDir.Error())
}

func TestToSplitterOptions(t *testing.T) {
	t.Parallel()

	opts := Default().ToSplitterOptions()

	assert.Equal(t, "src/types.rs", opts.InputPath)
	assert.Equal(t, "src/types", opts.OutputDir)
	assert.Equal(t, splitter.DefaultLookahead, opts.Lookahead)
	assert.Contains(t, opts.Categories["order"], "Side")
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "typesplit.yml"), []byte(content), 0644))
}
