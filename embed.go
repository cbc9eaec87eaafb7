package diary

import "embed"

// EmbeddedContent holds the sample posts served when no content
// directory is present.
//
//go:embed embedded/content
var EmbeddedContent embed.FS
