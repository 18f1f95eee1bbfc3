// Package config provides configuration management for
// music-playlist-manager.
//
// Settings are stored as a JSON file under the XDG config directory
// (~/.config/music-playlist-manager/config.json on Linux).
//
// # Default Settings
//
// Use DefaultSettings() for sensible defaults:
//
//	settings := config.DefaultSettings()
//	// threshold 0.7, common audio extensions, no directories yet
//
// # Loading and Saving
//
//	settings, err := config.Load(config.DefaultPath())
//	settings.Threshold = 0.85
//	err = settings.Save(config.DefaultPath())
//
// Loading a path that does not exist returns the defaults, so first
// runs need no setup.
package config
