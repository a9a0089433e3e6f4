package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ContentRenderer is a function that transforms markdown content before
// outputting it. This allows for TUI rendering (markdown to ANSI) without
// coupling the core package.
type ContentRenderer func(string) (string, error)

// IOHandler defines the strategy for interacting with the user.
type IOHandler interface {
	// Say presents markdown content to the user.
	Say(text string)

	// Printf writes plain formatted output.
	Printf(format string, args ...any)

	// ReadLine reads one trimmed line of input. It returns io.EOF when the
	// input stream ends.
	ReadLine(ctx context.Context) (string, error)
}

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (h *TextHandler) Say(text string) {
	output := text
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(h.Writer, strings.TrimSpace(output))
}

func (h *TextHandler) Printf(format string, args ...any) {
	fmt.Fprintf(h.Writer, format, args...)
}

func (h *TextHandler) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(h.Writer, "> ")

	text, err := h.Reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), nil
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}
