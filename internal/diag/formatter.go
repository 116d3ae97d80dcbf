package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter prints diagnostics with a source snippet and a caret under the
// offending column.
type Formatter struct {
	w            io.Writer
	sourceCache  map[string]string
	contextLines int
	showCodes    bool
	color        bool

	errorStyle  lipgloss.Style
	gutterStyle lipgloss.Style
	caretStyle  lipgloss.Style
	helpStyle   lipgloss.Style
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithContextLines sets how many lines around the error are shown.
func WithContextLines(n int) FormatterOption {
	return func(f *Formatter) {
		if n >= 0 {
			f.contextLines = n
		}
	}
}

// WithCodes toggles the [Ennn] code in headers.
func WithCodes(show bool) FormatterOption {
	return func(f *Formatter) {
		f.showCodes = show
	}
}

// WithColor toggles terminal styling.
func WithColor(on bool) FormatterOption {
	return func(f *Formatter) {
		f.color = on
	}
}

// NewFormatter creates a diagnostic formatter writing to w.
func NewFormatter(w io.Writer, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		w:            w,
		sourceCache:  make(map[string]string),
		contextLines: 2,
		showCodes:    true,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	f.gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	f.caretStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	f.helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	return f
}

// AddSource registers the text of a source so that snippets can be shown
// for inputs that are not files on disk, such as standard input.
func (f *Formatter) AddSource(filename string, src []byte) {
	f.sourceCache[filename] = string(src)
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

func (f *Formatter) style(s lipgloss.Style, text string) string {
	if !f.color {
		return text
	}
	return s.Render(text)
}

// Format prints a diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Loc.IsValid() {
		f.printHelp(d)
		return
	}

	src, err := f.LoadSource(d.Loc.Filename)
	if err != nil || src == "" {
		fmt.Fprintf(f.w, "  --> %s\n", d.Loc)
		f.printHelp(d)
		return
	}

	f.printSnippet(src, d)
	f.printHelp(d)
}

// printHeader prints the error header (error[E000]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}
	if f.showCodes && d.Code != "" {
		severity = fmt.Sprintf("%s[%s]", severity, d.Code)
	}
	fmt.Fprintf(f.w, "%s: %s\n", f.style(f.errorStyle, severity), d.Message)
}

func (f *Formatter) printSnippet(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	line := d.Loc.Line
	if line > len(lines) {
		line = len(lines)
	}

	start := max(1, line-f.contextLines)
	end := min(len(lines), line+f.contextLines)
	width := len(fmt.Sprintf("%d", end))
	pad := strings.Repeat(" ", width)

	fmt.Fprintf(f.w, "  --> %s\n", d.Loc)
	fmt.Fprintf(f.w, " %s %s\n", pad, f.style(f.gutterStyle, "|"))

	for n := start; n <= end; n++ {
		content := strings.TrimRight(lines[n-1], "\r")
		num := fmt.Sprintf("%*d", width, n)
		fmt.Fprintf(f.w, " %s %s\n", f.style(f.gutterStyle, num+" |"), content)

		if n == d.Loc.Line {
			col := max(1, d.Loc.Column)
			underline := strings.Repeat(" ", col-1) + strings.Repeat("^", max(1, d.Width))
			fmt.Fprintf(f.w, " %s %s\n", f.style(f.gutterStyle, pad+" |"), f.style(f.caretStyle, underline))
		}
	}

	fmt.Fprintf(f.w, " %s %s\n", pad, f.style(f.gutterStyle, "|"))
}

// printHelp prints notes and help text.
func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.w, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.w, "%s: %s\n", f.style(f.helpStyle, "help"), d.Help)
	}
}
