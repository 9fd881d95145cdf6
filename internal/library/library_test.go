package library

import (
	"testing"

	"github.com/handiism/groover/internal/model"
)

func item(id int, kind model.Kind) model.Item {
	return model.Item{ID: id, Title: "t", Artist: "a", Kind: kind, CoverColor: "#000000"}
}

func TestLibrary_AddIsIdempotent(t *testing.T) {
	lib := New()

	if !lib.Add(item(7, model.KindVinyl)) {
		t.Fatal("first Add() should return true")
	}
	if lib.Add(item(7, model.KindCD)) {
		t.Error("second Add() with the same id should be a no-op")
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lib.Len())
	}

	got, ok := lib.Get(7)
	if !ok {
		t.Fatal("Get(7) not found")
	}
	if got.Kind != model.KindVinyl {
		t.Errorf("second Add() replaced the item: %+v", got)
	}
}

func TestLibrary_AddMarksOwned(t *testing.T) {
	lib := New()
	it := item(9, model.KindVinyl)
	it.Owned = false

	lib.Add(it)

	got, _ := lib.Get(9)
	if !got.Owned {
		t.Error("Add() should set Owned")
	}
	if !lib.Contains(9) || lib.Contains(10) {
		t.Error("Contains() mismatch")
	}
}

func TestLibrary_FilterAndStats(t *testing.T) {
	lib := New(
		item(1, model.KindVinyl),
		item(2, model.KindCD),
		item(3, model.KindVinyl),
		item(1, model.KindCD), // duplicate seed is ignored
	)

	tests := []struct {
		filter model.KindFilter
		want   int
	}{
		{model.FilterAll, 3},
		{model.FilterVinyl, 2},
		{model.FilterCD, 1},
		{"", 3},
	}
	for _, tt := range tests {
		if got := len(lib.Filter(tt.filter)); got != tt.want {
			t.Errorf("Filter(%q) returned %d items, want %d", tt.filter, got, tt.want)
		}
	}

	want := Stats{Vinyl: 2, CD: 1, Total: 3}
	if got := lib.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestLibrary_Recent(t *testing.T) {
	lib := New(item(1, model.KindVinyl), item(2, model.KindCD))

	if got := lib.Recent(3); len(got) != 2 {
		t.Fatalf("Recent(3) with 2 items returned %d", len(got))
	}

	lib.Add(item(3, model.KindCD))
	lib.Add(item(4, model.KindVinyl))

	got := lib.Recent(3)
	if len(got) != 3 || got[0].ID != 2 || got[2].ID != 4 {
		t.Errorf("Recent(3) = %v, want ids [2 3 4]", got)
	}
	if lib.Recent(0) != nil {
		t.Error("Recent(0) should be empty")
	}
}

func TestLibrary_ItemsIsSnapshot(t *testing.T) {
	lib := New(item(1, model.KindVinyl))
	items := lib.Items()
	items[0].Title = "changed"

	got, _ := lib.Get(1)
	if got.Title == "changed" {
		t.Error("Items() should return a copy")
	}
}
