package library

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// ID3Reader reads artist/title from ID3v2 tags of MP3 files.
//
// Only MP3 files are inspected; other formats return empty values so the
// filename-parsed guess is kept. Tag reads are best-effort: a corrupt or
// missing tag never fails the scan.
type ID3Reader struct{}

// NewID3Reader creates an ID3Reader.
func NewID3Reader() *ID3Reader {
	return &ID3Reader{}
}

// Read implements TagReader.
func (r *ID3Reader) Read(path string) (string, string, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !strings.EqualFold(ext, "mp3") {
		return "", "", nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Artist", "Title"}})
	if err != nil {
		return "", "", err
	}
	defer tag.Close()

	return strings.TrimSpace(tag.Artist()), strings.TrimSpace(tag.Title()), nil
}
