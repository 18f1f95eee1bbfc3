// Package ioutils provides file system utilities for
// music-playlist-manager.
//
// # File Operations
//
//	// Copy a matched file into the export directory without
//	// clobbering an existing one
//	dst, err := ioutils.CopyFileUnique(ctx, "/lib/song.mp3", "/export")
//
//	// Ensure a directory exists
//	err := ioutils.EnsureDir("/export")
//
// # Filename Sanitization
//
// Use SanitizeFileName to strip characters that are invalid in
// file/folder names before deriving an export playlist filename:
//
//	safe := ioutils.SanitizeFileName("road trip: vol 1/2")
//	// "road trip_ vol 1_2"
package ioutils
