package model

import (
	"fmt"
	"strings"
)

// View selects which screen the interface shows.
type View int

const (
	ViewDashboard View = iota
	ViewLibrary
	ViewPlaylists
)

var viewNames = [...]string{"dashboard", "library", "playlists"}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Next returns the following view, wrapping around.
func (v View) Next() View {
	return (v + 1) % View(len(viewNames))
}

// ParseView converts a view name into a View.
func ParseView(s string) (View, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range viewNames {
		if name == s {
			return View(i), nil
		}
	}
	return ViewDashboard, fmt.Errorf("unknown view %q", s)
}

// KindFilter narrows the library to one media kind.
type KindFilter string

const (
	FilterAll   KindFilter = "all"
	FilterVinyl KindFilter = "vinyl"
	FilterCD    KindFilter = "cd"
)

// Matches reports whether an item of kind k passes the filter.
// The zero value behaves like FilterAll.
func (f KindFilter) Matches(k Kind) bool {
	switch f {
	case FilterVinyl:
		return k == KindVinyl
	case FilterCD:
		return k == KindCD
	default:
		return true
	}
}

// Next cycles all -> vinyl -> cd -> all.
func (f KindFilter) Next() KindFilter {
	switch f {
	case FilterAll, "":
		return FilterVinyl
	case FilterVinyl:
		return FilterCD
	default:
		return FilterAll
	}
}

// Label returns the button label shown for the filter.
func (f KindFilter) Label() string {
	switch f {
	case FilterVinyl:
		return "VINYL"
	case FilterCD:
		return "CD"
	default:
		return "All Records"
	}
}

// ParseKindFilter converts "all", "vinyl" or "cd" into a KindFilter.
// An empty string is FilterAll.
func ParseKindFilter(s string) (KindFilter, error) {
	switch f := KindFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterVinyl, FilterCD:
		return f, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q", s)
	}
}
