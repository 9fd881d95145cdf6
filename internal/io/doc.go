// Package ioutils provides the file and image helpers used by playlist
// export.
//
// # Files
//
//	err := ioutils.EnsureDir("/home/me/Music/Groover")
//	name := ioutils.SanitizeFileName("Rock: 70s/80s") // "Rock_ 70s_80s"
//	err = ioutils.WriteFile(ctx, path, content)
//
// WriteFile replaces the destination atomically.
//
// # Cover art
//
// CoverRenderer turns item cover colours into a JPEG mosaic:
//
//	jpg, err := ioutils.NewCoverRenderer().RenderMosaic(ctx, colors, 300)
package ioutils
