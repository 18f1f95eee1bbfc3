package ioutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// CopyFile copies a file from source to destination, truncating an
// existing destination. The context is checked before the copy starts;
// the copy itself is not interruptible.
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// CopyFileUnique copies src into dir under its base name, appending a
// " (n)" counter when that name is already taken. It returns the
// destination path actually written.
//
//	CopyFileUnique(ctx, "/lib/song.mp3", "/export")
//	// "/export/song.mp3", or "/export/song (1).mp3" on collision
func CopyFileUnique(ctx context.Context, src, dir string) (string, error) {
	dst := UniqueDestPath(dir, filepath.Base(src))
	if err := CopyFile(ctx, src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// UniqueDestPath returns a path in dir for filename that does not
// collide with an existing file, using " (1)", " (2)", ... suffixes.
func UniqueDestPath(dir, filename string) string {
	dst := filepath.Join(dir, filename)
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return dst
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		dst = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, counter, ext))
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			return dst
		}
	}
}

// EnsureDir creates a directory and all parent directories if they
// don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots = regexp.MustCompile(`\.+$`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) become underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace collapses to single space
//   - Trailing whitespace is removed
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
