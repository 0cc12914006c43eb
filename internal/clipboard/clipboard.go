// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard backend is available.
var ErrUnsupported = errors.New("no clipboard tool: install xclip, xsel or wl-clipboard")

// write is swapped out in tests.
var write = func(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := write(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Stub replaces the clipboard writer until the returned restore func runs.
// It is meant for tests in other packages.
func Stub(fn func(string) error) (restore func()) {
	prev := write
	write = fn
	return func() { write = prev }
}
