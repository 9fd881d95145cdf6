package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	repeatedSpace = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to path through a temporary file in the same
// directory, so a reader never sees a half-written export.
//
// The context is checked before writing; the write itself is not
// interruptible.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// SanitizeFileName turns a playlist name into something every OS accepts
// as a file name.
//
//	SanitizeFileName("Rock: 70s/80s") // "Rock_ 70s_80s"
//	SanitizeFileName("Mix...")        // "Mix"
//
// Names that sanitize to nothing become "untitled".
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "untitled"
	}
	return name
}

// EnsureDir creates a directory and its parents with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
