package diagnostics

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Collection represents a list of parser errors accumulated over one file.
// Parsing does not stop at the first problem; all errors are reported at once.
type Collection struct {
	errors []ParseError
}

// NewCollection creates a new empty error collection.
func NewCollection() *Collection {
	return &Collection{
		errors: make([]ParseError, 0),
	}
}

// Errors returns all errors in the collection.
func (c *Collection) Errors() []ParseError {
	return c.errors
}

// Push adds an error to the collection.
func (c *Collection) Push(err ParseError) {
	c.errors = append(c.errors, err)
}

// HasErrors returns true if there is at least one error in this collection.
func (c *Collection) HasErrors() bool {
	return len(c.errors) > 0
}

// ToResult returns an error if there are errors, otherwise returns nil.
func (c *Collection) ToResult() error {
	if c.HasErrors() {
		return fmt.Errorf("parsing failed with %d errors", len(c.errors))
	}
	return nil
}

// ToPrettyString formats all errors as a pretty-printed string.
func (c *Collection) ToPrettyString(fileName, source string) string {
	var buf bytes.Buffer
	for _, err := range c.errors {
		writePrettyError(&buf, fileName, source, err)
	}
	return buf.String()
}

// writePrettyError writes one error with its offending source line to the buffer.
func writePrettyError(buf *bytes.Buffer, fileName, text string, err ParseError) {
	lines := strings.Split(text, "\n")
	startLineNum := strings.Count(text[:clampIndex(err.Span().Start, len(text))], "\n")

	lineStart := 0
	for i := 0; i < startLineNum; i++ {
		lineStart += len(lines[i]) + 1
	}

	line := ""
	if startLineNum < len(lines) {
		line = lines[startLineNum]
	}
	startInLine := clampIndex(err.Span().Start-lineStart, len(line))
	endInLine := clampIndex(startInLine+(err.Span().End-err.Span().Start), len(line))

	prefix := line[:startInLine]
	offending := line[startInLine:endInLine]
	suffix := line[endInLine:]

	errorTitle := color.New(color.FgRed, color.Bold)
	errorDesc := color.New(color.Bold)
	arrowColor := color.New(color.FgCyan, color.Bold)
	filePathColor := color.New(color.Underline)
	lineNumColor := color.New(color.FgCyan, color.Bold)
	offendingColor := color.New(color.FgRed, color.Bold)

	errorTitle.Fprintf(buf, "error")
	fmt.Fprintf(buf, ": ")
	errorDesc.Fprintf(buf, "%s\n", err.Message())

	arrowColor.Fprintf(buf, "  --> ")
	filePathColor.Fprintf(buf, "%s:%d\n", fileName, startLineNum+1)

	lineNumColor.Fprintf(buf, "   | \n")

	lineNumColor.Fprintf(buf, "%2d | ", startLineNum+1)
	fmt.Fprintf(buf, "%s", prefix)
	offendingColor.Fprintf(buf, "%s", offending)
	fmt.Fprintf(buf, "%s\n", suffix)

	lineNumColor.Fprintf(buf, "   | ")
	fmt.Fprintf(buf, "%s", strings.Repeat(" ", startInLine))
	if len(offending) == 0 {
		offendingColor.Fprintf(buf, "^ Unexpected token.\n")
	} else {
		offendingColor.Fprintf(buf, "%s\n", strings.Repeat("^", len(offending)))
	}

	lineNumColor.Fprintf(buf, "   | \n")
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
