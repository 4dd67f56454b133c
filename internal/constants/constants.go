package constants

import "time"

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.corkboard`
	StateFile      = `board.yaml`

	DefaultBoardTitle = "Notes"
	DefaultMaxNotes   = 100
	DefaultExtension  = "md"

	// DefaultPreviewLength is the rune budget for card preview text.
	DefaultPreviewLength = 140

	// FetchMultiplier bounds the content-preload batch: the pipeline reads at
	// most MaxNotes*FetchMultiplier candidates before filtering.
	FetchMultiplier = 3

	// QuietInterval is how long the refresh scheduler waits after the last
	// file-system event before re-running the pipeline.
	QuietInterval = time.Second
)
