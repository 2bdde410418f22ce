package docs

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer formats document content for terminal display.
type Renderer interface {
	// Render takes raw content and its format (file extension) and returns
	// terminal-ready output.
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render returns the content as-is.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// DetectStyle picks the glamour style for the current terminal: "notty" when
// stdout is not a terminal or the profile is monochrome, otherwise "auto".
func DetectStyle() string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "notty"
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return "notty"
	}
	return "auto"
}
