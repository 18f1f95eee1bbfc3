// Package session provides the orchestration layer tying scanning,
// matching and exporting together for a host UI.
//
// # Manager
//
// The Manager is the explicit session object: it owns the current
// settings, the latest library index snapshot, the loaded playlist and
// the last match result. Hosts (CLI, TUI) call its operations and
// render the progress events it emits; there is no process-wide state.
//
//	manager := session.NewManager(settings, func(event session.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	_, err := manager.Scan(ctx)
//	_, err = manager.LoadPlaylist("/path/to/playlist.txt")
//	result, err := manager.Match(ctx)
//	result, err = manager.Rescale(0.5) // cheap, no re-scoring
//
// # Snapshots
//
// Scan and Match replace the session's snapshots only on success: a
// cancelled or failed operation leaves the previous index and result
// untouched, so a consumer iterating an old snapshot is never
// invalidated mid-iteration.
//
// # Progress Reporting
//
// Operations report via a callback receiving ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package session
