package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/TestProjects-Sigma/music-playlist-manager/internal/config"
	"github.com/TestProjects-Sigma/music-playlist-manager/internal/session"
)

func main() {
	// Command line flags
	var (
		playlistFlag  = flag.String("playlist", "", "Path to the playlist text file (one 'Artist - Song' per line)")
		dirsFlag      = flag.String("dirs", "", "Music directories to scan (comma-separated, overrides config)")
		extFlag       = flag.String("ext", "", "File extensions to index (comma-separated, overrides config)")
		thresholdFlag = flag.Float64("threshold", -1, "Match threshold between 0 and 1 (overrides config)")
		outputFlag    = flag.String("output", "", "Output directory for copied files (overrides config)")
		copyFlag      = flag.Bool("copy", false, "Copy matched files to the output directory")
		exportFlag    = flag.Bool("export", false, "Write a playlist file alongside copied files")
		searchFlag    = flag.String("search", "", "Search the library instead of matching a playlist")
		tagsFlag      = flag.Bool("tags", false, "Read ID3 tags during the scan")
		configFlag    = flag.String("config", "", "Path to config file")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *playlistFlag == "" && flag.NArg() == 0 && *searchFlag == "" {
		fmt.Println("Music Playlist Manager - Reconcile playlists against a local library")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  playlist-manager -playlist <file> [options]")
		fmt.Println("  playlist-manager <file> [options]")
		fmt.Println("  playlist-manager -search <query> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: playlist-manager-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *dirsFlag != "" {
		settings.Directories = splitList(*dirsFlag)
	}
	if *extFlag != "" {
		settings.Extensions = splitList(*extFlag)
	}
	if *thresholdFlag >= 0 {
		settings.Threshold = *thresholdFlag
	}
	if *outputFlag != "" {
		settings.OutputDirectory = *outputFlag
	}
	if *exportFlag {
		settings.ExportPlaylist = true
	}
	if *tagsFlag {
		settings.ReadTags = true
	}

	playlistPath := *playlistFlag
	if playlistPath == "" && flag.NArg() > 0 {
		playlistPath = flag.Arg(0)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := session.NewManager(settings, func(event session.ProgressEvent) {
		if event.Level == session.LevelVerbose && !*verboseFlag {
			return
		}

		switch event.Level {
		case session.LevelError:
			color.Red("✗ %s", event.Message)
		case session.LevelWarning:
			color.Yellow("! %s", event.Message)
		case session.LevelSuccess:
			color.Green("✓ %s", event.Message)
		case session.LevelInfo:
			color.Cyan("› %s", event.Message)
		default:
			fmt.Println("  " + event.Message)
		}
	})

	fmt.Println("🎵 Music Playlist Manager")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if _, err := manager.Scan(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning library: %v\n", err)
		os.Exit(1)
	}

	if *searchFlag != "" {
		runSearch(manager, *searchFlag)
		return
	}

	if _, err := manager.LoadPlaylist(playlistPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading playlist: %v\n", err)
		os.Exit(1)
	}

	result, err := manager.Match(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nMatching cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error matching: %v\n", err)
		os.Exit(1)
	}

	matched := result.Matched()
	fmt.Println()
	for _, c := range matched {
		fmt.Printf("  %3.0f%%  %-12s %s\n", c.Score*100, c.Strategy, c.Entry.Path)
	}
	if unmatched := result.Unmatched(); len(unmatched) > 0 {
		fmt.Println()
		color.Yellow("Unmatched (%d):", len(unmatched))
		for _, c := range unmatched {
			detail := "no candidate"
			if c.Entry != nil {
				detail = fmt.Sprintf("best %.0f%%: %s", c.Score*100, c.Entry.Filename)
			}
			fmt.Printf("  %s (%s)\n", c.Playlist.Raw, detail)
		}
	}

	if !*copyFlag {
		return
	}

	fmt.Println()
	fmt.Println("📥 Copying matched files...")
	fmt.Println()

	copied, failed, err := manager.CopySelected(ctx, matched, settings.OutputDirectory)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCopy cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error copying: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Copied %d/%d files", copied, copied+failed)
	fmt.Println()
}

func runSearch(manager *session.Manager, query string) {
	entries, err := manager.Search(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d result(s) for %q:\n", len(entries), query)
	for _, entry := range entries {
		if entry.Parsed() {
			fmt.Printf("  %s — %s  (%s)\n", entry.Artist, entry.Song, entry.Path)
		} else {
			fmt.Printf("  %s\n", entry.Path)
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
