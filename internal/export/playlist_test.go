package export

import (
	"strings"
	"testing"

	"github.com/handiism/groover/internal/model"
)

func testPlaylist() model.Playlist {
	return model.Playlist{
		ID:   "0190a8e4-0000-7000-8000-000000000001",
		Name: "Favorites",
		Items: []model.Item{
			{ID: 1, Title: "Dark Side of the Moon", Artist: "Pink Floyd", Year: 1973, Kind: model.KindVinyl, Owned: true, CoverColor: "#1a1a2e"},
			{ID: 4, Title: "OK Computer", Artist: "Radiohead", Year: 1997, Kind: model.KindCD, Owned: true, CoverColor: "#2d2d2d"},
		},
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U, false).CreatePlaylist(testPlaylist())

	want := "vinyl/Pink Floyd - Dark Side of the Moon (1973)\ncd/Radiohead - OK Computer (1997)\n"
	if content != want {
		t.Errorf("M3U =\n%s\nwant\n%s", content, want)
	}
}

func TestEntryPath(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
		want string
	}{
		{
			name: "plain",
			item: model.Item{Title: "Kind of Blue", Artist: "Miles Davis", Year: 1959, Kind: model.KindVinyl},
			want: "vinyl/Miles Davis - Kind of Blue (1959)",
		},
		{
			name: "slash in artist",
			item: model.Item{ID: 9, Title: "Back in Black", Artist: "AC/DC", Year: 1980, Kind: model.KindVinyl},
			want: "vinyl/AC_DC - Back in Black (1980)",
		},
		{
			name: "reserved characters in title",
			item: model.Item{Title: "What? Why: Now", Artist: "Band", Year: 2001, Kind: model.KindCD},
			want: "cd/Band - What_ Why_ Now (2001)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EntryPath(tt.item); got != tt.want {
				t.Errorf("EntryPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaylistCreator_M3USlashInArtist(t *testing.T) {
	pl := model.Playlist{Name: "Rock", Items: []model.Item{
		{ID: 9, Title: "Back in Black", Artist: "AC/DC", Year: 1980, Kind: model.KindVinyl, Owned: true, CoverColor: "#000000"},
	}}
	content := NewPlaylistCreator(FormatM3U, true).CreatePlaylist(pl)

	if !strings.Contains(content, "\nvinyl/AC_DC - Back in Black (1980)\n") {
		t.Errorf("entry should stay one directory deep:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:-1,AC/DC - Back in Black\n") {
		t.Error("the display title should keep the original artist name")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	content := NewPlaylistCreator(FormatM3U, true).CreatePlaylist(testPlaylist())

	if !strings.HasPrefix(content, "#EXTM3U\n#PLAYLIST:Favorites\n") {
		t.Error("Extended M3U should start with #EXTM3U and #PLAYLIST")
	}
	if !strings.Contains(content, "#EXTINF:-1,Radiohead - OK Computer\n") {
		t.Error("Extended M3U should contain #EXTINF lines")
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist(testPlaylist())

	for _, want := range []string{"[playlist]\n", "File1=vinyl/Pink Floyd", "Title2=Radiohead - OK Computer", "NumberOfEntries=2\n", "Version=2\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS should contain %q", want)
		}
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	content := NewPlaylistCreator(FormatWPL, false).CreatePlaylist(testPlaylist())

	if !strings.HasPrefix(content, "<?wpl") {
		t.Error("WPL should start with the wpl declaration")
	}
	if strings.Count(content, "<media src=") != 2 {
		t.Error("WPL should contain one media element per item")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	content := NewPlaylistCreator(FormatZPL, false).CreatePlaylist(testPlaylist())

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, `<meta name="ItemCount" content="2"/>`) {
		t.Error("ZPL should contain the item count")
	}
	if !strings.Contains(content, `albumTitle="OK Computer"`) {
		t.Error("ZPL should contain albumTitle attribute")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	pl := model.Playlist{
		Name: "Rock & <Roll>",
		Items: []model.Item{
			{ID: 9, Title: "Back in \"Black\"", Artist: "AC/DC", Year: 1980, Kind: model.KindVinyl, Owned: true},
		},
	}

	content := NewPlaylistCreator(FormatWPL, false).CreatePlaylist(pl)

	if !strings.Contains(content, "<title>Rock &amp; &lt;Roll&gt;</title>") {
		t.Errorf("WPL title not escaped:\n%s", content)
	}
	if strings.Contains(content, `"Black"`) {
		t.Error("WPL should escape quotes")
	}
}

func TestPlaylistCreator_Empty(t *testing.T) {
	content := NewPlaylistCreator(FormatPLS, false).CreatePlaylist(model.Playlist{Name: "Empty"})
	if !strings.Contains(content, "NumberOfEntries=0") {
		t.Error("empty PLS should report zero entries")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ext   string
	}{
		{"m3u", FormatM3U, ".m3u"},
		{"", FormatM3U, ".m3u"},
		{"PLS", FormatPLS, ".pls"},
		{"wpl", FormatWPL, ".wpl"},
		{" zpl ", FormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want || got.Extension() != tt.ext {
			t.Errorf("ParseFormat(%q) = %v (%s), want %v (%s)", tt.input, got, got.Extension(), tt.want, tt.ext)
		}
	}

	if _, err := ParseFormat("xspf"); err == nil {
		t.Error("ParseFormat(xspf) should fail")
	}
	if FormatZPL.String() != "zpl" {
		t.Errorf("String() = %q, want zpl", FormatZPL.String())
	}
}
