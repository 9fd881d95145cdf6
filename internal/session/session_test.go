package session

import (
	"errors"
	"testing"

	"github.com/handiism/groover/internal/catalog"
	"github.com/handiism/groover/internal/model"
	"github.com/handiism/groover/internal/playlist"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewDefault(catalog.Default(), []string{"Favorites", "Rock Classics", "Jazz Collection"})
	if err != nil {
		t.Fatalf("NewDefault() error = %v", err)
	}
	return s
}

func playlistByName(t *testing.T, s *Session, name string) model.Playlist {
	t.Helper()
	for _, p := range s.Playlists().List() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("playlist %q not found", name)
	return model.Playlist{}
}

func TestNewDefault(t *testing.T) {
	s := newTestSession(t)

	if got := s.Library().Len(); got != 6 {
		t.Errorf("library Len() = %d, want 6", got)
	}
	if got := s.Playlists().Len(); got != 3 {
		t.Errorf("playlists Len() = %d, want 3", got)
	}
	if s.View() != model.ViewDashboard {
		t.Errorf("View() = %v, want dashboard", s.View())
	}
	if _, ok := s.Selected(); ok {
		t.Error("a new session should have no selection")
	}
}

func TestSession_Search(t *testing.T) {
	s := newTestSession(t)

	if got := s.Search("   "); len(got) != 0 {
		t.Errorf("Search(blank) = %d results, want 0", len(got))
	}

	got := s.Search("pink floyd")
	if len(got) != 2 {
		t.Fatalf("Search(pink floyd) = %d results, want 2", len(got))
	}
	if !got[0].InLibrary || got[0].Item.ID != 1 {
		t.Errorf("first result = %+v, want id 1 in library", got[0])
	}
	if got[1].InLibrary || got[1].Item.ID != 10 {
		t.Errorf("second result = %+v, want id 10 not in library", got[1])
	}
}

func TestSession_AddToLibrary(t *testing.T) {
	s := newTestSession(t)

	added, err := s.AddToLibrary(10)
	if err != nil || !added {
		t.Fatalf("AddToLibrary(10) = %v, %v; want true, nil", added, err)
	}
	added, err = s.AddToLibrary(10)
	if err != nil || added {
		t.Errorf("second AddToLibrary(10) = %v, %v; want false, nil", added, err)
	}
	if got := s.Library().Len(); got != 7 {
		t.Errorf("library Len() = %d, want 7", got)
	}
	if res := s.Search("the wall"); len(res) != 1 || !res[0].InLibrary {
		t.Errorf("Search(the wall) = %+v, want in library", res)
	}

	if _, err := s.AddToLibrary(99); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("AddToLibrary(99) error = %v, want catalog.ErrNotFound", err)
	}
}

func TestSession_AddToPlaylist(t *testing.T) {
	s := newTestSession(t)
	fav := playlistByName(t, s, "Favorites")

	tests := []struct {
		name    string
		itemID  int
		want    bool
		wantErr error
	}{
		{name: "owned item", itemID: 1, want: true},
		{name: "duplicate", itemID: 1, want: false},
		{name: "not in library", itemID: 7, wantErr: playlist.ErrNotOwned},
		{name: "unknown item", itemID: 42, wantErr: playlist.ErrNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.AddToPlaylist(fav.ID, tt.itemID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddToPlaylist() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddToPlaylist() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AddToPlaylist() = %v, want %v", got, tt.want)
			}
		})
	}

	p, _ := s.Playlists().Get(fav.ID)
	if p.Len() != 1 {
		t.Errorf("playlist Len() = %d, want 1", p.Len())
	}

	if _, err := s.AddToPlaylist("missing", 1); !errors.Is(err, playlist.ErrNotFound) {
		t.Errorf("AddToPlaylist(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSession_AddToPlaylistAfterPromotion(t *testing.T) {
	s := newTestSession(t)
	rock := playlistByName(t, s, "Rock Classics")

	if _, err := s.AddToPlaylist(rock.ID, 8); !errors.Is(err, playlist.ErrNotOwned) {
		t.Fatalf("AddToPlaylist(8) before promotion error = %v, want ErrNotOwned", err)
	}
	if _, err := s.AddToLibrary(8); err != nil {
		t.Fatal(err)
	}
	added, err := s.AddToPlaylist(rock.ID, 8)
	if err != nil || !added {
		t.Errorf("AddToPlaylist(8) after promotion = %v, %v; want true, nil", added, err)
	}
}

func TestSession_RemoveFromPlaylist(t *testing.T) {
	s := newTestSession(t)
	fav := playlistByName(t, s, "Favorites")
	_, _ = s.AddToPlaylist(fav.ID, 3)

	removed, err := s.RemoveFromPlaylist(fav.ID, 3)
	if err != nil || !removed {
		t.Fatalf("RemoveFromPlaylist() = %v, %v; want true, nil", removed, err)
	}
	removed, err = s.RemoveFromPlaylist(fav.ID, 3)
	if err != nil || removed {
		t.Errorf("second RemoveFromPlaylist() = %v, %v; want false, nil", removed, err)
	}
}

func TestSession_CreateAndRename(t *testing.T) {
	s := newTestSession(t)

	p, err := s.CreatePlaylist(" Road Trip ")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if p.Name != "Road Trip" {
		t.Errorf("Name = %q, want %q", p.Name, "Road Trip")
	}
	if _, err := s.CreatePlaylist("  "); !errors.Is(err, model.ErrEmptyName) {
		t.Errorf("CreatePlaylist(blank) error = %v, want ErrEmptyName", err)
	}

	if _, err := s.RenamePlaylist(p.ID, ""); !errors.Is(err, model.ErrEmptyName) {
		t.Errorf("RenamePlaylist(empty) error = %v, want ErrEmptyName", err)
	}
	got, _ := s.Playlists().Get(p.ID)
	if got.Name != "Road Trip" {
		t.Errorf("rejected rename changed name to %q", got.Name)
	}

	got, err = s.RenamePlaylist(p.ID, "Summer")
	if err != nil || got.Name != "Summer" {
		t.Errorf("RenamePlaylist(Summer) = %q, %v", got.Name, err)
	}
}

func TestSession_DeleteClearsSelection(t *testing.T) {
	s := newTestSession(t)
	fav := playlistByName(t, s, "Favorites")
	jazz := playlistByName(t, s, "Jazz Collection")

	if err := s.SelectPlaylist(fav.ID); err != nil {
		t.Fatalf("SelectPlaylist() error = %v", err)
	}
	if err := s.DeletePlaylist(jazz.ID); err != nil {
		t.Fatal(err)
	}
	if sel, ok := s.Selected(); !ok || sel.ID != fav.ID {
		t.Errorf("deleting another playlist changed the selection to %+v, %v", sel, ok)
	}

	if err := s.DeletePlaylist(fav.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("deleting the selected playlist should clear the selection")
	}
	if _, err := s.Playlists().Get(fav.ID); !errors.Is(err, playlist.ErrNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.DeletePlaylist(fav.ID); !errors.Is(err, playlist.ErrNotFound) {
		t.Errorf("DeletePlaylist(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestSession_SelectPlaylist(t *testing.T) {
	s := newTestSession(t)

	if err := s.SelectPlaylist("nope"); !errors.Is(err, playlist.ErrNotFound) {
		t.Errorf("SelectPlaylist(nope) error = %v, want ErrNotFound", err)
	}

	fav := playlistByName(t, s, "Favorites")
	_ = s.SelectPlaylist(fav.ID)
	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Error("ClearSelection() should drop the selection")
	}
}

func TestSession_SetView(t *testing.T) {
	s := newTestSession(t)

	s.SetView(model.ViewLibrary, model.FilterVinyl)
	if s.View() != model.ViewLibrary || s.Filter() != model.FilterVinyl {
		t.Fatalf("SetView(library, vinyl) -> %v, %v", s.View(), s.Filter())
	}
	for _, it := range s.LibraryItems() {
		if it.Kind != model.KindVinyl {
			t.Errorf("LibraryItems() includes %v item %d", it.Kind, it.ID)
		}
	}
	if got := len(s.LibraryItems()); got != 4 {
		t.Errorf("len(LibraryItems()) = %d, want 4", got)
	}

	s.SetView(model.ViewPlaylists, model.FilterCD)
	if s.Filter() != model.FilterVinyl {
		t.Errorf("filter changed on non-library view: %v", s.Filter())
	}

	s.SetView(model.ViewLibrary, "")
	if s.Filter() != model.FilterVinyl {
		t.Errorf("empty filter should keep the current one, got %v", s.Filter())
	}
}

func TestSession_Dashboard(t *testing.T) {
	s := newTestSession(t)

	d := s.Dashboard()
	if d.Vinyl != 4 || d.CD != 2 || d.Total != 6 || d.Playlists != 3 {
		t.Errorf("Dashboard() = %+v, want 4 vinyl, 2 cd, 6 total, 3 playlists", d)
	}
	if len(d.Recent) != 3 || d.Recent[0].ID != 4 || d.Recent[2].ID != 6 {
		t.Errorf("Recent = %v, want ids 4..6", d.Recent)
	}

	_, _ = s.AddToLibrary(9)
	d = s.Dashboard()
	if d.Total != 7 || d.Recent[len(d.Recent)-1].ID != 9 {
		t.Errorf("after add: total %d, recent %v", d.Total, d.Recent)
	}
}

func TestSession_Candidates(t *testing.T) {
	s := newTestSession(t)
	fav := playlistByName(t, s, "Favorites")
	_, _ = s.AddToPlaylist(fav.ID, 2)

	got, err := s.Candidates(fav.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("len(Candidates()) = %d, want 5", len(got))
	}
	for _, it := range got {
		if it.ID == 2 {
			t.Error("Candidates() should not include items already in the playlist")
		}
	}
}
