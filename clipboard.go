package gui

import (
	"sync"

	"github.com/atotto/clipboard"
)

// ClipboardProvider abstracts the system clipboard so tests can swap in
// an in-memory implementation.
type ClipboardProvider interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteText(text string) error { return clipboard.WriteAll(text) }

var (
	clipboardMu sync.Mutex
	clipboardPr ClipboardProvider = systemClipboard{}
)

// SetClipboardProvider replaces the clipboard backend. Passing nil
// restores the system clipboard.
func SetClipboardProvider(p ClipboardProvider) {
	clipboardMu.Lock()
	defer clipboardMu.Unlock()
	if p == nil {
		p = systemClipboard{}
	}
	clipboardPr = p
}

// ClipboardText reads the clipboard, returning "" on error.
func ClipboardText() string {
	clipboardMu.Lock()
	p := clipboardPr
	clipboardMu.Unlock()
	s, err := p.ReadText()
	if err != nil {
		guiLogger.Debug("clipboard read failed", "error", err)
		return ""
	}
	return s
}

// SetClipboardText writes text to the clipboard.
func SetClipboardText(text string) error {
	clipboardMu.Lock()
	p := clipboardPr
	clipboardMu.Unlock()
	return p.WriteText(text)
}

// MemoryClipboard is an in-process clipboard for tests and headless use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (m *MemoryClipboard) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *MemoryClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
