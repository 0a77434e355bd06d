// Package assets embeds the default solver dictionary.
package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// DefaultWords opens the embedded word list. The caller closes it.
func DefaultWords() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}
