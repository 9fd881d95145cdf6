package model

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a playlist name is empty after trimming.
var ErrEmptyName = errors.New("playlist name must not be empty")

// Playlist is a user-defined, named, ordered collection of Items.
type Playlist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Contains reports whether the playlist already holds the item id.
func (p Playlist) Contains(itemID int) bool {
	for _, it := range p.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// Len returns the number of items in the playlist.
func (p Playlist) Len() int {
	return len(p.Items)
}

// Clone returns a copy that does not share the Items backing array.
func (p Playlist) Clone() Playlist {
	c := p
	c.Items = append([]Item(nil), p.Items...)
	return c
}

// NormalizeName trims a playlist name and rejects empty results.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
