package kertas

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a globally unique, time-sortable UUIDv7 (RFC 9562).
// Used for document identity; chunk identity is deterministic, see ChunkID.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ChunkID derives the deterministic chunk identifier from the document
// class and the chunk's position. The same (class, index) pair always
// yields the same ID, so re-chunking an unchanged document is reproducible
// and downstream citation references stay stable.
func ChunkID(class DocumentClass, index int) string {
	return fmt.Sprintf("%s_%03d", class, index)
}

// NowUnix returns current time as Unix seconds.
func NowUnix() int64 {
	return time.Now().Unix()
}
