package combiner

import (
	"fmt"

	"github.com/LendBit-p2p/lendbit-localised/config"
)

// WriteError is returned when the combined output cannot be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf(config.ErrFailedToWrite, e.Path) + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }
