package store

import (
	"encoding/json"
	"fmt"
)

// ErrInvalidRecord indicates a stored value that is not valid JSON or does
// not conform to the record's schema.
type ErrInvalidRecord struct {
	Key     string
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid record %q: %v", e.Key, e.Err)
}

func (e *ErrInvalidRecord) Unwrap() error { return e.Err }
