package export

import (
	"fmt"
	"strings"

	ioutils "github.com/handiism/groover/internal/io"
	"github.com/handiism/groover/internal/model"
)

// PlaylistCreator renders a playlist in one of the supported formats.
//
// There are no audio files behind a Groover playlist, so each entry points
// at a location derived from the item: "<kind>/<Artist> - <Title> (<Year>)".
// Durations are unknown and written as -1 where a format asks for one.
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(p)
//
//	// #EXTM3U
//	// #PLAYLIST:Favorites
//	// #EXTINF:-1,Pink Floyd - Dark Side of the Moon
//	// vinyl/Pink Floyd - Dark Side of the Moon (1973)
type PlaylistCreator struct {
	format   Format
	extended bool // M3U only: include #EXTM3U header and #EXTINF lines
}

// NewPlaylistCreator creates a PlaylistCreator. extended is ignored for
// formats other than M3U.
func NewPlaylistCreator(format Format, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Format returns the output format.
func (p *PlaylistCreator) Format() Format {
	return p.format
}

// CreatePlaylist renders the playlist.
func (p *PlaylistCreator) CreatePlaylist(pl model.Playlist) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(pl)
	case FormatWPL:
		return p.createWPL(pl)
	case FormatZPL:
		return p.createZPL(pl)
	default:
		return p.createM3U(pl)
	}
}

// EntryPath is the location written for an item. The file name part is
// sanitized so an artist like "AC/DC" does not add a directory level.
func EntryPath(it model.Item) string {
	return fmt.Sprintf("%s/%s", it.Kind, ioutils.SanitizeFileName(it.String()))
}

func (p *PlaylistCreator) createM3U(pl model.Playlist) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
		sb.WriteString(fmt.Sprintf("#PLAYLIST:%s\n", pl.Name))
	}

	for _, it := range pl.Items {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", it.Artist, it.Title))
		}
		sb.WriteString(EntryPath(it) + "\n")
	}

	return sb.String()
}

func (p *PlaylistCreator) createPLS(pl model.Playlist) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, it := range pl.Items {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, EntryPath(it)))
		sb.WriteString(fmt.Sprintf("Title%d=%s - %s\n", idx, it.Artist, it.Title))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(pl.Items)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

func (p *PlaylistCreator) createWPL(pl model.Playlist) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(pl.Name)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, it := range pl.Items {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(EntryPath(it))))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

func (p *PlaylistCreator) createZPL(pl model.Playlist) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(pl.Name)))
	sb.WriteString("    <meta name=\"Generator\" content=\"Groover\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(pl.Items)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, it := range pl.Items {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\"/>\n",
			escapeXML(EntryPath(it)),
			escapeXML(it.Title),
			escapeXML(it.Artist),
			escapeXML(it.Title),
			escapeXML(it.Artist)))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
