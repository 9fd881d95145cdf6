// Package playlist manages user-defined playlists.
//
// A Store keeps playlists in creation order and enforces the membership
// rules:
//
//   - names are trimmed and must not be empty, on create and on rename
//   - only owned items can be added
//   - an item appears at most once per playlist; adding it again is a no-op
//
// Playlist ids are UUIDv7 strings, so they sort by creation time.
//
//	store := playlist.NewStore()
//	p, err := store.Create("Road Trip")
//	added, err := store.AddItem(p.ID, item)
package playlist
