package export

import (
	"fmt"
	"strings"
)

// Format is a playlist file format.
//
//   - M3U: plain text, widely supported; optional #EXTINF lines
//   - PLS: INI-style, Winamp/SHOUTcast
//   - WPL: XML SMIL, Windows Media Player
//   - ZPL: XML SMIL with extra metadata, Zune/Groove Music
type Format int

const (
	FormatM3U Format = iota
	FormatPLS
	FormatWPL
	FormatZPL
)

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Extension(), ".")
}

// ParseFormat converts "m3u", "pls", "wpl" or "zpl" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m3u", "":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	case "wpl":
		return FormatWPL, nil
	case "zpl":
		return FormatZPL, nil
	default:
		return FormatM3U, fmt.Errorf("unknown playlist format %q", s)
	}
}
