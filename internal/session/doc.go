// Package session owns the state of one running groover instance.
//
// A Session ties together the catalog, the library and the playlist store,
// and remembers which view is active, how the library is filtered and which
// playlist is selected. The TUI and the CLI both drive the collection
// through it:
//
//	sess, err := session.NewDefault(cat, settings.SeedPlaylists,
//	    session.WithLogger(logger),
//	    session.WithRecentCount(settings.RecentlyAddedCount))
//
//	results := sess.Search("floyd")
//	added, err := sess.AddToLibrary(results[0].Item.ID)
//
// Rules enforced here and in the packages below:
//   - adding an item already in the library is a no-op
//   - only library items can be added to playlists, at most once each
//   - deleting the selected playlist clears the selection
//   - playlist names must be non-empty after trimming, on create and rename
package session
