package playlist

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/handiism/groover/internal/model"
)

var (
	// ErrNotFound is returned for an unknown playlist id.
	ErrNotFound = errors.New("playlist not found")

	// ErrNotOwned is returned when adding an item that is not in the library.
	ErrNotOwned = errors.New("only owned items can be added to a playlist")
)

// ItemSource is the part of the library a Store needs to list candidates.
type ItemSource interface {
	Items() []model.Item
}

// Store holds playlists in creation order. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	playlists []*model.Playlist
	newID     func() (string, error)
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{newID: newUUID}
}

// Seed creates one empty playlist per name, skipping invalid names.
func (s *Store) Seed(names ...string) error {
	for _, name := range names {
		if _, err := s.Create(name); err != nil && !errors.Is(err, model.ErrEmptyName) {
			return err
		}
	}
	return nil
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate playlist id: %w", err)
	}
	return id.String(), nil
}

// Create adds an empty playlist. The name is trimmed and must not be empty.
func (s *Store) Create(name string) (model.Playlist, error) {
	name, err := model.NormalizeName(name)
	if err != nil {
		return model.Playlist{}, err
	}

	id, err := s.newID()
	if err != nil {
		return model.Playlist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &model.Playlist{ID: id, Name: name}
	s.playlists = append(s.playlists, p)
	return p.Clone(), nil
}

// Rename changes a playlist name. Empty or whitespace-only names are
// rejected with model.ErrEmptyName and the old name is kept.
func (s *Store) Rename(id, name string) (model.Playlist, error) {
	name, err := model.NormalizeName(name)
	if err != nil {
		return model.Playlist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, _, err := s.find(id)
	if err != nil {
		return model.Playlist{}, err
	}
	p.Name = name
	return p.Clone(), nil
}

// Delete removes a playlist.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, err := s.find(id)
	if err != nil {
		return err
	}
	s.playlists = append(s.playlists[:idx], s.playlists[idx+1:]...)
	return nil
}

// AddItem appends item to the playlist. Items that are not owned are
// rejected with ErrNotOwned; an item already in the playlist is left alone
// and AddItem returns false.
func (s *Store) AddItem(id string, item model.Item) (bool, error) {
	if !item.Owned {
		return false, fmt.Errorf("%w: %s", ErrNotOwned, item.Title)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, _, err := s.find(id)
	if err != nil {
		return false, err
	}
	if p.Contains(item.ID) {
		return false, nil
	}
	p.Items = append(p.Items, item)
	return true, nil
}

// RemoveItem drops an item from the playlist. It returns false if the item
// was not in the playlist.
func (s *Store) RemoveItem(id string, itemID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, _, err := s.find(id)
	if err != nil {
		return false, err
	}
	for i, it := range p.Items {
		if it.ID == itemID {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Get returns a copy of the playlist.
func (s *Store) Get(id string) (model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, _, err := s.find(id)
	if err != nil {
		return model.Playlist{}, err
	}
	return p.Clone(), nil
}

// List returns copies of all playlists in creation order.
func (s *Store) List() []model.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Playlist, len(s.playlists))
	for i, p := range s.playlists {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of playlists.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.playlists)
}

// Candidates returns the library items that are not yet in the playlist.
func (s *Store) Candidates(id string, lib ItemSource) ([]model.Item, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var out []model.Item
	for _, it := range lib.Items() {
		if !p.Contains(it.ID) {
			out = append(out, it)
		}
	}
	return out, nil
}

// find must be called with s.mu held.
func (s *Store) find(id string) (*model.Playlist, int, error) {
	for i, p := range s.playlists {
		if p.ID == id {
			return p, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}
