// Package clipboard copies analysis reports to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard unavailable (install xclip, xsel or wl-clipboard)")

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
