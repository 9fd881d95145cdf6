package model

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Kind is the physical media type of an Item.
type Kind string

const (
	// KindVinyl is a vinyl record.
	KindVinyl Kind = "vinyl"

	// KindCD is a compact disc.
	KindCD Kind = "cd"
)

// Valid reports whether k is a known media type.
func (k Kind) Valid() bool {
	return k == KindVinyl || k == KindCD
}

// Label returns the display label used by the UI ("Vinyl", "CD").
func (k Kind) Label() string {
	switch k {
	case KindVinyl:
		return "Vinyl"
	case KindCD:
		return "CD"
	default:
		return string(k)
	}
}

// ParseKind converts user input ("vinyl", "CD", ...) into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown media kind %q", s)
	}
	return k, nil
}

// ErrInvalidItem is returned by Item.Validate.
var ErrInvalidItem = errors.New("invalid item")

// Item is a single catalog or library entry: one media release.
//
// Items are value types. The library and playlists hold copies, which is
// safe because an Item is never edited after it has been created.
type Item struct {
	// ID identifies the item across the catalog, library and playlists.
	ID int `json:"id"`

	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   int    `json:"year"`
	Kind   Kind   `json:"type"`
	Genre  string `json:"genre"`

	// Owned is true once the item is part of the library.
	Owned bool `json:"owned"`

	// CoverColor is the display colour of the item in "#rrggbb" form.
	CoverColor string `json:"cover_color"`
}

// Validate checks the fields a catalog entry must carry.
func (i Item) Validate() error {
	switch {
	case i.ID <= 0:
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidItem, i.ID)
	case strings.TrimSpace(i.Title) == "":
		return fmt.Errorf("%w: item %d has no title", ErrInvalidItem, i.ID)
	case strings.TrimSpace(i.Artist) == "":
		return fmt.Errorf("%w: item %d has no artist", ErrInvalidItem, i.ID)
	case !i.Kind.Valid():
		return fmt.Errorf("%w: item %d has unknown type %q", ErrInvalidItem, i.ID, i.Kind)
	}
	if _, err := i.Color(); err != nil {
		return fmt.Errorf("%w: item %d: %v", ErrInvalidItem, i.ID, err)
	}
	return nil
}

// Color parses CoverColor.
func (i Item) Color() (color.RGBA, error) {
	return ParseColor(i.CoverColor)
}

// String returns "Artist - Title (Year)".
func (i Item) String() string {
	return fmt.Sprintf("%s - %s (%d)", i.Artist, i.Title, i.Year)
}

// ParseColor parses a "#rrggbb" colour.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
