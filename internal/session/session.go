package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/handiism/groover/internal/catalog"
	"github.com/handiism/groover/internal/library"
	"github.com/handiism/groover/internal/model"
	"github.com/handiism/groover/internal/playlist"
	"go.uber.org/zap"
)

// DefaultRecentCount is how many recently added items the dashboard shows.
const DefaultRecentCount = 3

// SearchResult is a catalog item annotated with library membership.
type SearchResult struct {
	Item      model.Item
	InLibrary bool
}

// Dashboard is the summary shown on the dashboard view.
type Dashboard struct {
	Vinyl     int
	CD        int
	Total     int
	Playlists int
	Recent    []model.Item
}

// Session owns the collection state of one running instance: the catalog,
// the library, the playlists, the active view and the playlist selection.
// Views read through it and mutate only through its methods.
type Session struct {
	catalog   *catalog.Catalog
	library   *library.Library
	playlists *playlist.Store
	logger    *zap.Logger

	mu       sync.RWMutex
	view     model.View
	filter   model.KindFilter
	selected string
	recent   int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRecentCount sets how many recently added items Dashboard returns.
func WithRecentCount(n int) Option {
	return func(s *Session) { s.recent = n }
}

// WithView sets the initial view.
func WithView(v model.View) Option {
	return func(s *Session) { s.view = v }
}

// New creates a Session over existing collections.
func New(cat *catalog.Catalog, lib *library.Library, store *playlist.Store, opts ...Option) *Session {
	s := &Session{
		catalog:   cat,
		library:   lib,
		playlists: store,
		logger:    zap.NewNop(),
		view:      model.ViewDashboard,
		filter:    model.FilterAll,
		recent:    DefaultRecentCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefault creates a Session whose library holds the catalog's owned
// items and whose store holds one empty playlist per seed name.
func NewDefault(cat *catalog.Catalog, seedPlaylists []string, opts ...Option) (*Session, error) {
	store := playlist.NewStore()
	if err := store.Seed(seedPlaylists...); err != nil {
		return nil, fmt.Errorf("seed playlists: %w", err)
	}
	return New(cat, library.New(cat.Owned()...), store, opts...), nil
}

// Catalog returns the catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Library returns the library.
func (s *Session) Library() *library.Library { return s.library }

// Playlists returns the playlist store.
func (s *Session) Playlists() *playlist.Store { return s.playlists }

// View returns the active view.
func (s *Session) View() model.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Filter returns the library filter.
func (s *Session) Filter() model.KindFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetView switches the active view. When switching to the library, a
// non-empty filter replaces the current library filter.
func (s *Session) SetView(v model.View, filter model.KindFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = v
	if v == model.ViewLibrary && filter != "" {
		s.filter = filter
	}
	s.logger.Debug("View changed", zap.Stringer("view", v), zap.String("filter", string(s.filter)))
}

// SetFilter changes the library filter without switching views.
func (s *Session) SetFilter(f model.KindFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// LibraryItems returns the library items passing the current filter.
func (s *Session) LibraryItems() []model.Item {
	return s.library.Filter(s.Filter())
}

// Search runs a catalog search and marks the results already owned.
func (s *Session) Search(query string) []SearchResult {
	items := s.catalog.Search(query)
	results := make([]SearchResult, len(items))
	for i, it := range items {
		results[i] = SearchResult{Item: it, InLibrary: s.library.Contains(it.ID)}
	}
	s.logger.Debug("Search", zap.String("query", query), zap.Int("results", len(results)))
	return results
}

// AddToLibrary promotes a catalog item into the library. It returns false
// if the item was already there.
func (s *Session) AddToLibrary(itemID int) (bool, error) {
	item, err := s.catalog.Get(itemID)
	if err != nil {
		return false, err
	}

	added := s.library.Add(item)
	if added {
		s.logger.Debug("Added to library", zap.Int("item_id", itemID), zap.String("title", item.Title))
	} else {
		s.logger.Info("Already in library", zap.Int("item_id", itemID))
	}
	return added, nil
}

// AddToPlaylist adds a library item to a playlist. Items outside the
// library are rejected with playlist.ErrNotOwned; adding an item the
// playlist already holds returns false.
func (s *Session) AddToPlaylist(playlistID string, itemID int) (bool, error) {
	item, ok := s.library.Get(itemID)
	if !ok {
		s.logger.Info("Rejected playlist add of unowned item", zap.Int("item_id", itemID))
		return false, fmt.Errorf("%w: item %d", playlist.ErrNotOwned, itemID)
	}

	added, err := s.playlists.AddItem(playlistID, item)
	if err != nil {
		s.logger.Info("Playlist add failed", zap.String("playlist_id", playlistID), zap.Error(err))
		return false, err
	}
	s.logger.Debug("Added to playlist",
		zap.String("playlist_id", playlistID),
		zap.Int("item_id", itemID),
		zap.Bool("added", added))
	return added, nil
}

// RemoveFromPlaylist removes an item from a playlist.
func (s *Session) RemoveFromPlaylist(playlistID string, itemID int) (bool, error) {
	removed, err := s.playlists.RemoveItem(playlistID, itemID)
	if err != nil {
		return false, err
	}
	s.logger.Debug("Removed from playlist",
		zap.String("playlist_id", playlistID),
		zap.Int("item_id", itemID),
		zap.Bool("removed", removed))
	return removed, nil
}

// CreatePlaylist creates an empty playlist.
func (s *Session) CreatePlaylist(name string) (model.Playlist, error) {
	p, err := s.playlists.Create(name)
	if err != nil {
		s.logger.Info("Rejected playlist create", zap.String("name", name), zap.Error(err))
		return model.Playlist{}, err
	}
	s.logger.Debug("Created playlist", zap.String("playlist_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// RenamePlaylist renames a playlist. Empty names are rejected with
// model.ErrEmptyName.
func (s *Session) RenamePlaylist(id, name string) (model.Playlist, error) {
	p, err := s.playlists.Rename(id, name)
	if err != nil {
		s.logger.Info("Rejected playlist rename", zap.String("playlist_id", id), zap.Error(err))
		return model.Playlist{}, err
	}
	s.logger.Debug("Renamed playlist", zap.String("playlist_id", id), zap.String("name", p.Name))
	return p, nil
}

// DeletePlaylist removes a playlist and clears the selection if it pointed
// at it.
func (s *Session) DeletePlaylist(id string) error {
	if err := s.playlists.Delete(id); err != nil {
		return err
	}

	s.mu.Lock()
	if s.selected == id {
		s.selected = ""
	}
	s.mu.Unlock()

	s.logger.Debug("Deleted playlist", zap.String("playlist_id", id))
	return nil
}

// SelectPlaylist makes a playlist the active selection.
func (s *Session) SelectPlaylist(id string) error {
	if _, err := s.playlists.Get(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	return nil
}

// ClearSelection drops the active playlist selection.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the selected playlist, if any.
func (s *Session) Selected() (model.Playlist, bool) {
	s.mu.RLock()
	id := s.selected
	s.mu.RUnlock()

	if id == "" {
		return model.Playlist{}, false
	}
	p, err := s.playlists.Get(id)
	if errors.Is(err, playlist.ErrNotFound) {
		s.ClearSelection()
		return model.Playlist{}, false
	}
	return p, err == nil
}

// Candidates returns the library items a playlist does not hold yet.
func (s *Session) Candidates(playlistID string) ([]model.Item, error) {
	return s.playlists.Candidates(playlistID, s.library)
}

// Dashboard summarizes the collection.
func (s *Session) Dashboard() Dashboard {
	st := s.library.Stats()

	s.mu.RLock()
	n := s.recent
	s.mu.RUnlock()

	return Dashboard{
		Vinyl:     st.Vinyl,
		CD:        st.CD,
		Total:     st.Total,
		Playlists: s.playlists.Len(),
		Recent:    s.library.Recent(n),
	}
}
