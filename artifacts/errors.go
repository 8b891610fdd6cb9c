package artifacts

import (
	"fmt"

	"github.com/LendBit-p2p/lendbit-localised/config"
)

// ReadError is returned when an artifact file is missing or unreadable.
type ReadError struct {
	Name string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf(config.ErrFailedToRead, e.Name) + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is returned when an artifact file is not well-formed JSON.
type ParseError struct {
	Name string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(config.ErrFailedToParse, e.Name) + " (" + e.Path + "): " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
