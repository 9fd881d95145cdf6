// Package export writes playlists to playlist files.
//
// Supported formats are M3U (optionally extended), PLS, WPL and ZPL:
//
//	exp := export.NewExporter(export.Config{
//	    Dir:           "/home/me/Music/Groover",
//	    Format:        export.FormatM3U,
//	    M3UExtended:   true,
//	    Cover:         true,
//	    CoverSize:     300,
//	    MaxConcurrent: 4,
//	}, logger)
//
//	res, err := exp.Export(ctx, playlist)
//	results, err := exp.ExportAll(ctx, store.List())
//
// Each playlist becomes "<name><ext>" with an optional "<name>.jpg" cover
// mosaic built from the colours of its first four items.
package export
