package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/groover/internal/catalog"
	"github.com/handiism/groover/internal/config"
	"github.com/handiism/groover/internal/export"
	"github.com/handiism/groover/internal/model"
	"github.com/handiism/groover/internal/playlist"
	"github.com/handiism/groover/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.NewDefault(catalog.Default(), []string{"Favorites"})
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestParsePlaylistSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    playlistSpec
		wantErr bool
	}{
		{in: "Road Trip:1,7, 8", want: playlistSpec{Name: "Road Trip", Items: []int{1, 7, 8}}},
		{in: "Empty", want: playlistSpec{Name: "Empty"}},
		{in: "Empty:", want: playlistSpec{Name: "Empty"}},
		{in: "Live: 1977:3", want: playlistSpec{Name: "Live: 1977", Items: []int{3}}},
		{in: " :1", wantErr: true},
		{in: "Bad:1,x", wantErr: true},
		{in: "Bad:-2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePlaylistSpec(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePlaylistSpec(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePlaylistSpec(%q) error = %v", tt.in, err)
			}
			if got.Name != tt.want.Name || len(got.Items) != len(tt.want.Items) {
				t.Fatalf("parsePlaylistSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range got.Items {
				if got.Items[i] != tt.want.Items[i] {
					t.Errorf("Items[%d] = %d, want %d", i, got.Items[i], tt.want.Items[i])
				}
			}
		})
	}
}

func TestPlaylistFlags_Repeatable(t *testing.T) {
	var p playlistFlags
	for _, v := range []string{"A:1", "B:2,3"} {
		if err := p.Set(v); err != nil {
			t.Fatal(err)
		}
	}
	if len(p) != 2 || p.String() != "A;B" {
		t.Errorf("flags = %v (%s)", p, p.String())
	}
}

func TestRun_AddAndSearch(t *testing.T) {
	sess := newSession(t)
	var out bytes.Buffer

	err := run(context.Background(), sess, nil, request{Add: []int{7, 1}, Search: "queen"}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"+ Queen - Bohemian Rhapsody (1975)",
		"= Pink Floyd - Dark Side of the Moon (1973) (already in library)",
		"[in library]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_SearchNoMatch(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), newSession(t), nil, request{Search: "polka"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `No records match "polka"`) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRun_Library(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), newSession(t), nil, request{Library: true, Filter: model.FilterCD}, &out)
	if err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "CD (2)") {
		t.Errorf("output = %q, want CD header", got)
	}
	if strings.Contains(got, "Thriller") {
		t.Error("cd filter listed a vinyl record")
	}
}

func TestRun_Playlists(t *testing.T) {
	sess := newSession(t)
	var out bytes.Buffer

	req := request{Playlists: []playlistSpec{
		{Name: "Favorites", Items: []int{1, 2, 1}},
		{Name: "Road Trip", Items: []int{4}},
	}}
	if err := run(context.Background(), sess, nil, req, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lists := sess.Playlists().List()
	if len(lists) != 2 {
		t.Fatalf("len(playlists) = %d, want 2", len(lists))
	}
	if lists[0].Len() != 2 {
		t.Errorf("Favorites Len() = %d, want 2 (duplicates ignored)", lists[0].Len())
	}
	if lists[1].Name != "Road Trip" || lists[1].Len() != 1 {
		t.Errorf("Road Trip = %+v", lists[1])
	}

	err := run(context.Background(), sess, nil, request{Playlists: []playlistSpec{{Name: "Favorites", Items: []int{9, 3}}}}, &out)
	if !errors.Is(err, playlist.ErrNotOwned) {
		t.Errorf("adding an unowned item error = %v, want ErrNotOwned", err)
	}
	if p, _ := sess.Playlists().Get(lists[0].ID); !p.Contains(3) {
		t.Error("owned items should still be added when another item fails")
	}
}

func TestRun_Export(t *testing.T) {
	sess := newSession(t)
	dir := t.TempDir()
	exp := export.NewExporter(export.Config{Dir: dir, Format: export.FormatPLS, MaxConcurrent: 2}, nil)

	var out bytes.Buffer
	req := request{Playlists: []playlistSpec{{Name: "Favorites", Items: []int{1}}}}
	if err := run(context.Background(), sess, exp, req, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Favorites.pls"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Dark Side of the Moon") {
		t.Errorf("export missing entry:\n%s", data)
	}
	if !strings.Contains(out.String(), "Exported Favorites (1 records)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecute_FailureIsLogged(t *testing.T) {
	settings := config.DefaultSettings()
	settings.LogOutput = "file"
	settings.LogFilePath = filepath.Join(t.TempDir(), "groover.log")

	var out bytes.Buffer
	err := execute(context.Background(), settings, false, request{Add: []int{99}}, &out)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("execute() error = %v, want catalog.ErrNotFound", err)
	}

	data, err := os.ReadFile(settings.LogFilePath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Command failed") {
		t.Errorf("log should record the failure:\n%s", data)
	}
}

func TestExecute_Export(t *testing.T) {
	settings := config.DefaultSettings()
	settings.LogOutput = "none"
	settings.ExportPath = t.TempDir()
	settings.ExportCover = false

	var out bytes.Buffer
	if err := execute(context.Background(), settings, true, request{}, &out); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if strings.Count(out.String(), "Exported ") != 3 {
		t.Errorf("output = %q, want the three seed playlists exported", out.String())
	}
}
