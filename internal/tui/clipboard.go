package tui

import "github.com/atotto/clipboard"

// clipboardWriter adapts atotto/clipboard to selection.Clipboard, giving the
// output pane's drag-to-select a real system clipboard instead of the
// no-op selection.NewPane falls back to when Clipboard is nil.
type clipboardWriter struct{}

func (clipboardWriter) Copy(text string) error { return clipboard.WriteAll(text) }
