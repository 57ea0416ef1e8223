package register

import "github.com/atotto/clipboard"

// SystemClipboard is a ClipboardProvider backed by the host clipboard.
type SystemClipboard struct{}

// Available returns true if the host has a usable clipboard utility.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// Get returns the current clipboard content.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set sets the clipboard content.
func (SystemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}
