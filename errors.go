package iconsgen

import (
	"errors"
	"fmt"
)

// ErrNoIcons is returned by Generate when no icon names were extracted
// and Config.FailOnEmpty is set.
var ErrNoIcons = errors.New("no icon names extracted from sources")

// ReadError wraps failures encountered while resolving or reading sources.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps failures encountered while writing generated files.
// Files written before the failure are left in place.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
