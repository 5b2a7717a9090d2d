package clipboard

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

type Method string

const (
	MethodNone   Method = "none"
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
	MethodManual Method = "manual"
)

// Copier writes text to the system clipboard, falling back to an OSC 52
// terminal sequence and finally to printing the text for manual selection.
type Copier struct {
	write    func(string) error
	terminal io.Writer
	manual   io.Writer
}

type Options struct {
	// Terminal receives the OSC 52 sequence. Nil, or a file that is not a
	// terminal, skips that fallback.
	Terminal io.Writer
	// Manual receives the text when no clipboard mechanism worked.
	Manual io.Writer
	// DisableSystem skips the system clipboard, for headless sessions.
	DisableSystem bool
}

func New(opts Options) *Copier {
	c := &Copier{
		terminal: opts.Terminal,
		manual:   opts.Manual,
	}
	if !isTerminal(opts.Terminal) {
		c.terminal = nil
	}
	if !opts.DisableSystem && !clipboard.Unsupported {
		c.write = clipboard.WriteAll
	}
	return c
}

// Copy never fails; it reports which mechanism carried the text.
func (c *Copier) Copy(text string) Method {
	if text == "" {
		return MethodNone
	}

	if c.write != nil {
		err := c.write(text)
		if err == nil {
			return MethodSystem
		}
		slog.Debug("System clipboard unavailable", "error", err)
	}

	if c.terminal != nil {
		_, err := osc52.New(text).WriteTo(c.terminal)
		if err == nil {
			return MethodOSC52
		}
		slog.Debug("OSC 52 copy failed", "error", err)
	}

	if c.manual != nil {
		_, _ = fmt.Fprintf(c.manual, "\n--- copy the text below ---\n%s\n--- end ---\n", text)
	}
	return MethodManual
}

type fder interface {
	Fd() uintptr
}

// isTerminal reports false for files redirected away from a terminal.
// Writers without a file descriptor are trusted as given.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
