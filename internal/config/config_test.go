package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "before", cfg.Flatten.UnspecifiedSpacing)
	assert.True(t, cfg.Tokenizer.MergeWhitespace)
	assert.False(t, cfg.Tokenizer.SplitTextWhitespace)
	assert.False(t, cfg.Tokenizer.DropUnspacedWhitespace)
	assert.True(t, cfg.Normalizer.CombineHyphens)
	assert.True(t, cfg.Validation.CheckPatterns)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "spdxmatch.yaml", `
flatten:
  unspecified_spacing: none
tokenizer:
  split_text_whitespace: true
catalog:
  path: /srv/license-list-XML/src
logging:
  level: debug
  format: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.Flatten.UnspecifiedSpacing)
	assert.True(t, cfg.Tokenizer.SplitTextWhitespace)
	assert.True(t, cfg.Tokenizer.MergeWhitespace, "absent keys keep defaults")
	assert.Equal(t, "/srv/license-list-XML/src", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "spdxmatch.toml", `
[normalizer]
combine_hyphens = false
verify_offsets = true
equivalence_table = "words.txt"

[validation]
strict = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Normalizer.CombineHyphens)
	assert.True(t, cfg.Normalizer.VerifyOffsets)
	assert.Equal(t, "words.txt", cfg.Normalizer.EquivalenceTable)
	assert.True(t, cfg.Validation.Strict)
	assert.True(t, cfg.Validation.CheckPatterns)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "bad spacing", file: "c.yaml", content: "flatten:\n  unspecified_spacing: both\n", wantErr: ErrInvalidUnspecifiedSpacing},
		{name: "bad level", file: "c.yml", content: "logging:\n  level: trace\n", wantErr: ErrInvalidLogLevel},
		{name: "bad format", file: "c.toml", content: "[logging]\nformat = \"xml\"\n", wantErr: ErrInvalidLogFormat},
		{name: "unsupported extension", file: "c.json", content: "{}", wantErr: ErrUnsupportedConfigFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "c.yaml", "flatten: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Path = "templates"
	cfg.Validation.Strict = true

	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, cfg.SaveConfig(path))

			loaded, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}

	err := cfg.SaveConfig(filepath.Join(t.TempDir(), "out.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}

func TestConfig_String(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Path = "src"

	assert.Equal(t, "Config{UnspecifiedSpacing: before, MergeWhitespace: true, CombineHyphens: true, Catalog: src}", cfg.String())
}
