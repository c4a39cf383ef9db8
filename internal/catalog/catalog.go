// Package catalog loads a directory of template markup files.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"spdxmatch/internal/models"
)

// Catalog errors.
var (
	ErrNotFound    = errors.New("template not found in catalog")
	ErrDuplicateID = errors.New("duplicate template id")
)

// Loader turns markup into a ready template.
type Loader interface {
	Load(markup string) (*models.Template, error)
}

// Entry is one loaded template with its source file. ID is the catalog key:
// the template's licenseId, or the file name stem when it has none.
type Entry struct {
	ID       string
	Template *models.Template
	Path     string
	Digest   string
}

// Catalog is an immutable collection of templates keyed by id.
type Catalog struct {
	entries map[string]*Entry
	ids     []string
}

// LoadDir loads every .xml file directly inside dir. A template without an
// id is keyed by its file name without extension; loaded templates are never
// modified.
func LoadDir(dir string, loader Loader) (*Catalog, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	c := &Catalog{entries: make(map[string]*Entry)}

	for _, f := range files {
		if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), ".xml") {
			continue
		}

		path := filepath.Join(dir, f.Name())

		entry, err := loadFile(path, loader)
		if err != nil {
			return nil, err
		}

		id := entry.Template.ID
		if id == "" {
			id = strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		}

		entry.ID = id

		if prev, ok := c.entries[id]; ok {
			return nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicateID, id, prev.Path, path)
		}

		c.entries[id] = entry
		c.ids = append(c.ids, id)
	}

	sort.Strings(c.ids)

	return c, nil
}

func loadFile(path string, loader Loader) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tmpl, err := loader.Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	sum := sha256.Sum256(data)

	return &Entry{
		Template: tmpl,
		Path:     path,
		Digest:   hex.EncodeToString(sum[:]),
	}, nil
}

// Get returns the entry for id.
func (c *Catalog) Get(id string) (*Entry, error) {
	e, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return e, nil
}

// IDs returns the template ids in sorted order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.ids)
}
