package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/handiism/groover/internal/model"
	"golang.org/x/text/cases"
)

var (
	// ErrNotFound is returned when no catalog item has the requested id.
	ErrNotFound = errors.New("catalog item not found")

	// ErrDuplicateID is returned when two catalog entries share an id.
	ErrDuplicateID = errors.New("duplicate catalog id")
)

// entry is an item together with its case-folded search keys.
type entry struct {
	item   model.Item
	title  string
	artist string
	genre  string
}

// Catalog is the fixed set of releases a user can search and add to the
// library. It is immutable after construction and safe for concurrent use.
type Catalog struct {
	entries []entry
	byID    map[int]int
}

// New builds a catalog from items, validating each one and rejecting
// duplicate ids. Item order is preserved in search results.
func New(items []model.Item) (*Catalog, error) {
	c := &Catalog{
		entries: make([]entry, 0, len(items)),
		byID:    make(map[int]int, len(items)),
	}

	fold := cases.Fold()
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[it.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		c.byID[it.ID] = len(c.entries)
		c.entries = append(c.entries, entry{
			item:   it,
			title:  fold.String(it.Title),
			artist: fold.String(it.Artist),
			genre:  fold.String(it.Genre),
		})
	}

	return c, nil
}

// LoadFile reads a catalog from a JSON array of items. An empty path
// returns the built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Search returns the items whose title, artist or genre contains query,
// ignoring case. A blank query matches nothing.
func (c *Catalog) Search(query string) []model.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	q := cases.Fold().String(query)
	var results []model.Item
	for _, e := range c.entries {
		if strings.Contains(e.title, q) || strings.Contains(e.artist, q) || strings.Contains(e.genre, q) {
			results = append(results, e.item)
		}
	}
	return results
}

// Get returns the catalog item with the given id.
func (c *Catalog) Get(id int) (model.Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return c.entries[idx].item, nil
}

// Items returns every catalog item in catalog order.
func (c *Catalog) Items() []model.Item {
	items := make([]model.Item, len(c.entries))
	for i, e := range c.entries {
		items[i] = e.item
	}
	return items
}

// Owned returns the items already marked as owned; they seed the library.
func (c *Catalog) Owned() []model.Item {
	var items []model.Item
	for _, e := range c.entries {
		if e.item.Owned {
			items = append(items, e.item)
		}
	}
	return items
}

// Len returns the number of catalog items.
func (c *Catalog) Len() int {
	return len(c.entries)
}
