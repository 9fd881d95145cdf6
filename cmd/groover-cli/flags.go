package main

import (
	"fmt"
	"strconv"
	"strings"
)

// playlistSpec is one -playlist value: a name and the item ids to add.
type playlistSpec struct {
	Name  string
	Items []int
}

// playlistFlags collects repeated -playlist "Name:1,2,3" values.
type playlistFlags []playlistSpec

func (p *playlistFlags) String() string {
	parts := make([]string, len(*p))
	for i, spec := range *p {
		parts[i] = spec.Name
	}
	return strings.Join(parts, ";")
}

func (p *playlistFlags) Set(value string) error {
	spec, err := parsePlaylistSpec(value)
	if err != nil {
		return err
	}
	*p = append(*p, spec)
	return nil
}

// parsePlaylistSpec parses "Name" or "Name:1,2,3". The name is everything
// before the last colon so names may contain colons.
func parsePlaylistSpec(value string) (playlistSpec, error) {
	name, ids := value, ""
	if i := strings.LastIndex(value, ":"); i >= 0 {
		name, ids = value[:i], value[i+1:]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return playlistSpec{}, fmt.Errorf("playlist %q: name is empty", value)
	}

	items, err := parseIDs(ids)
	if err != nil {
		return playlistSpec{}, fmt.Errorf("playlist %q: %w", name, err)
	}
	return playlistSpec{Name: name, Items: items}, nil
}

// parseIDs parses a comma-separated list of item ids. Blank entries are
// skipped.
func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid item id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
