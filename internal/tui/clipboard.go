package tui

import "github.com/zarlcorp/zfake/internal/clipboard"

// copyToClipboard copies text to the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.Copy(text)
}
