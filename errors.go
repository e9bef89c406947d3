package kertas

import "fmt"

// ErrConfig reports an invalid chunking configuration. It is returned at
// pipeline construction time only; per-document calls never fail.
type ErrConfig struct {
	Field   string
	Message string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// ErrStore reports a storage operation failure from a chunk sink.
type ErrStore struct {
	Op      string
	Message string
}

func (e *ErrStore) Error() string {
	return fmt.Sprintf("store %s: %s", e.Op, e.Message)
}
