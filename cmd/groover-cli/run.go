package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/groover/internal/export"
	"github.com/handiism/groover/internal/model"
	"github.com/handiism/groover/internal/session"
	"go.uber.org/multierr"
)

// request is what one CLI invocation asks for. Steps run in a fixed order:
// add to library, playlists, search, library listing, export.
type request struct {
	Search    string
	Library   bool
	Filter    model.KindFilter
	Add       []int
	Playlists []playlistSpec
}

func run(ctx context.Context, sess *session.Session, exporter *export.Exporter, req request, w io.Writer) error {
	for _, id := range req.Add {
		added, err := sess.AddToLibrary(id)
		if err != nil {
			return fmt.Errorf("add %d: %w", id, err)
		}
		it, _ := sess.Library().Get(id)
		if added {
			fmt.Fprintf(w, "+ %s\n", it)
		} else {
			fmt.Fprintf(w, "= %s (already in library)\n", it)
		}
	}

	for _, spec := range req.Playlists {
		if err := applyPlaylist(sess, spec, w); err != nil {
			return err
		}
	}

	if req.Search != "" {
		printSearch(sess, req.Search, w)
	}

	if req.Library {
		sess.SetView(model.ViewLibrary, req.Filter)
		items := sess.LibraryItems()
		fmt.Fprintf(w, "%s (%d)\n", req.Filter.Label(), len(items))
		for _, it := range items {
			fmt.Fprintf(w, "  %-5s %s\n", it.Kind, it)
		}
	}

	if exporter != nil {
		results, err := exporter.ExportAll(ctx, sess.Playlists().List())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		for _, res := range results {
			fmt.Fprintf(w, "Exported %s (%d records) -> %s\n", res.Name, res.Entries, res.Path)
			if res.CoverPath != "" {
				fmt.Fprintf(w, "  cover -> %s\n", res.CoverPath)
			}
		}
	}

	return nil
}

func printSearch(sess *session.Session, query string, w io.Writer) {
	results := sess.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(w, "No records match %q\n", strings.TrimSpace(query))
		return
	}
	for _, res := range results {
		badge := ""
		if res.InLibrary {
			badge = " [in library]"
		}
		fmt.Fprintf(w, "%3d  %-5s %s%s\n", res.Item.ID, res.Item.Kind, res.Item, badge)
	}
}

// applyPlaylist adds the listed items to the playlist with that name,
// creating it first if needed.
func applyPlaylist(sess *session.Session, spec playlistSpec, w io.Writer) error {
	var pl model.Playlist
	found := false
	for _, p := range sess.Playlists().List() {
		if p.Name == spec.Name {
			pl, found = p, true
			break
		}
	}
	if !found {
		var err error
		if pl, err = sess.CreatePlaylist(spec.Name); err != nil {
			return fmt.Errorf("create playlist %q: %w", spec.Name, err)
		}
		fmt.Fprintf(w, "Created playlist %s\n", pl.Name)
	}

	var errs error
	for _, id := range spec.Items {
		added, err := sess.AddToPlaylist(pl.ID, id)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("playlist %q: item %d: %w", pl.Name, id, err))
			continue
		}
		if added {
			fmt.Fprintf(w, "  + %d -> %s\n", id, pl.Name)
		}
	}
	return errs
}
