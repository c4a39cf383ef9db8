package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spdxmatch/internal/engine"
)

const (
	mitMarkup = `<SPDXLicenseCollection xmlns="http://www.spdx.org/license">` +
		`<license licenseId="MIT" name="MIT License"><text><p>Permission is hereby granted</p></text></license>` +
		`</SPDXLicenseCollection>`
	fragmentMarkup = `<text>Some <optional>fragment</optional></text>`
)

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func newLoader(t *testing.T) Loader {
	t.Helper()

	eng, err := engine.New(nil, nil)
	require.NoError(t, err)

	return eng
}

func TestLoadDir(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		"MIT.xml":        mitMarkup,
		"fragment.XML":   fragmentMarkup,
		"README.md":      "not a template",
		"broken.xml.bak": "<text>",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xml"), 0o755))

	c, err := LoadDir(dir, newLoader(t))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"MIT", "fragment"}, c.IDs())

	entry, err := c.Get("MIT")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(mitMarkup))
	assert.Equal(t, hex.EncodeToString(sum[:]), entry.Digest)
	assert.Equal(t, filepath.Join(dir, "MIT.xml"), entry.Path)
	assert.NotEmpty(t, entry.Template.Tokens)

	assert.Equal(t, "MIT", entry.ID)

	frag, err := c.Get("fragment")
	require.NoError(t, err)
	assert.Equal(t, "fragment", frag.ID)
	assert.Empty(t, frag.Template.ID, "the loaded template is left as parsed")

	_, err = c.Get("Apache-2.0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDir_Errors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		dir := writeTemplates(t, map[string]string{
			"a.xml": mitMarkup,
			"b.xml": mitMarkup,
		})

		_, err := LoadDir(dir, newLoader(t))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("invalid template", func(t *testing.T) {
		dir := writeTemplates(t, map[string]string{"bad.xml": "<text><p></text>"})

		_, err := LoadDir(dir, newLoader(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.xml")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "absent"), newLoader(t))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCatalog_IDsIsCopy(t *testing.T) {
	c, err := LoadDir(writeTemplates(t, map[string]string{"MIT.xml": mitMarkup}), newLoader(t))
	require.NoError(t, err)

	ids := c.IDs()
	ids[0] = "changed"
	assert.Equal(t, []string{"MIT"}, c.IDs())
}
