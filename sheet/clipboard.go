package sheet

import "github.com/atotto/clipboard"

// Clipboard provides sheet-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (SystemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// Available reports whether a system clipboard utility was found.
func (SystemClipboard) Available() bool { return !clipboard.Unsupported }
