package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Settings holds all configuration options.
type Settings struct {
	// Directories are the library roots to scan.
	Directories []string `json:"directories"`

	// Extensions are the accepted file types, lowercase without dots.
	Extensions []string `json:"extensions"`

	// Threshold is the similarity cutoff in [0, 1] for accepting a
	// playlist match.
	Threshold float64 `json:"threshold"`

	// OutputDirectory is where matched files are copied.
	OutputDirectory string `json:"output_directory"`

	// LastPlaylistFile is the most recently loaded playlist, restored
	// on the next run.
	LastPlaylistFile string `json:"last_playlist_file"`

	// ReadTags enables ID3 artist/title override during scans.
	ReadTags bool `json:"read_tags"`

	// ExportPlaylist enables writing a playlist of the matches next to
	// the copied files.
	ExportPlaylist bool `json:"export_playlist"`

	// PlaylistFormat selects the export format: m3u or pls.
	PlaylistFormat string `json:"playlist_format"`

	// M3UExtended adds EXTINF lines to exported M3U playlists.
	M3UExtended bool `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Directories:     []string{},
		Extensions:      []string{"mp3", "m4a", "flac", "ogg", "aac", "wav"},
		Threshold:       0.7,
		OutputDirectory: "",
		ReadTags:        true,
		ExportPlaylist:  false,
		PlaylistFormat:  "m3u",
		M3UExtended:     true,
	}
}

// DefaultPath returns the standard location of the settings file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "music-playlist-manager", "config.json")
}

// Load reads settings from a JSON file. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if settings.Threshold < 0 || settings.Threshold > 1 {
		return nil, fmt.Errorf("threshold %v out of range [0, 1]", settings.Threshold)
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
