package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithIO configures the reader and writer for a plain text handler.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(rn *Runner) {
		rn.handler = NewTextHandler(r, w)
	}
}

// WithHandler configures a custom IOHandler.
func WithHandler(handler IOHandler) Option {
	return func(rn *Runner) {
		rn.handler = handler
	}
}

// WithRenderer configures the content renderer (e.g. TUI, Markdown) on the
// text handler. It applies after WithIO.
func WithRenderer(renderer ContentRenderer) Option {
	return func(rn *Runner) {
		if rn.handler == nil {
			rn.handler = NewTextHandler(nil, nil)
		}
		if th, ok := rn.handler.(*TextHandler); ok {
			th.Renderer = renderer
		}
	}
}

// WithOptionFormatter replaces the plain choice-line formatting, e.g. with a
// colorized variant when stdout is a terminal.
func WithOptionFormatter(f OptionFormatter) Option {
	return func(rn *Runner) {
		if f != nil {
			rn.formatOption = f
		}
	}
}

// WithProgressFormatter replaces the plain position indicator.
func WithProgressFormatter(f ProgressFormatter) Option {
	return func(rn *Runner) {
		if f != nil {
			rn.formatProgress = f
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rn *Runner) {
		if logger != nil {
			rn.logger = logger
		}
	}
}
