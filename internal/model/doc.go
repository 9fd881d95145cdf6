// Package model defines the core data structures used throughout groover.
//
// # Item
//
// Item is one release in the catalog, either a vinyl record or a CD:
//
//	it := model.Item{ID: 1, Title: "Kind of Blue", Artist: "Miles Davis",
//	    Year: 1959, Kind: model.KindVinyl, Genre: "Jazz", CoverColor: "#000080"}
//	if err := it.Validate(); err != nil { ... }
//	fmt.Println(it) // Miles Davis - Kind of Blue (1959)
//
// Owned marks items that are in the user's library.
//
// # Playlist
//
// Playlist is a named, ordered list of owned items. Names are trimmed with
// NormalizeName and must not be empty; an item appears at most once.
//
// # View and KindFilter
//
// View selects the dashboard, library or playlists screen. KindFilter
// narrows the library to vinyl, CDs or everything.
package model
