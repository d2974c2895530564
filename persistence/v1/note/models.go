package note

import "time"

const (
	noteKey    = "notes.%d"
	versionKey = "notes.%d.version"
)

// Note is a row of the notes table
type Note struct {
	ID      uint64
	Title   string
	Content string
}

// Config holds the timeouts applied by the stores
type Config struct {
	OperationTimeout      time.Duration
	CacheOperationTimeout time.Duration
	CacheTTL              time.Duration
}
