package formatting

import (
	"github.com/MarketSquare/robotfmt/rfl/model"
)

// LineSplitter restructures an over-long statement into multiple shorter
// lines. The alignment engine consults it after producing an aligned line
// that exceeds the maximum length, then re-aligns the result exactly once.
type LineSplitter interface {
	// MaxLineLength returns the configured maximum rendered line length.
	MaxLineLength() int
	// Split restructures the statement in place so that, before alignment,
	// no line holds more cells than fit the maximum length.
	Split(stmt *model.Statement)
}

// LineWrapper is the default LineSplitter: it moves trailing cells of an
// over-long line onto continuation lines at cell boundaries.
type LineWrapper struct {
	maxLineLength int
	minSeparator  int
	indentUnit    int
}

// NewLineWrapper creates a wrapper for the given limits.
func NewLineWrapper(maxLineLength, minSeparator, indentUnit int) *LineWrapper {
	return &LineWrapper{
		maxLineLength: maxLineLength,
		minSeparator:  minSeparator,
		indentUnit:    indentUnit,
	}
}

// MaxLineLength returns the configured maximum rendered line length.
func (w *LineWrapper) MaxLineLength() int {
	return w.maxLineLength
}

// Split moves cells of over-long lines onto fresh continuation lines. Cell
// texts are never altered; a cell longer than the limit on its own stays on
// its line.
func (w *LineWrapper) Split(stmt *model.Statement) {
	if w.maxLineLength <= 0 || len(stmt.Lines) == 0 {
		return
	}

	var out []*model.Line
	for _, line := range stmt.Lines {
		out = append(out, w.splitLine(line)...)
	}
	stmt.Lines = out
}

// splitLine splits one line at cell boundaries, producing the original line
// (shortened) plus continuation lines holding the moved cells.
func (w *LineWrapper) splitLine(line *model.Line) []*model.Line {
	indent := ""
	if len(line.Cells) > 0 && line.Cells[0].Kind == model.CellSeparator {
		indent = line.Cells[0].Text
	}
	eolText := "\n"
	if eol := line.EOL(); eol != nil {
		eolText = eol.Text
	}

	cells := line.DataCells()
	if len(cells) < 2 {
		return []*model.Line{line}
	}

	var lines []*model.Line
	var current []*model.Cell
	width := 0
	needSep := false

	begin := func(continuation bool) {
		current = nil
		width = 0
		needSep = false
		if indent != "" {
			current = append(current, &model.Cell{Kind: model.CellSeparator, Text: indent})
			width += model.DisplayWidth(indent)
		}
		if continuation {
			current = append(current, model.NewContinuation())
			width += model.DisplayWidth(model.ContinuationMarker)
			needSep = true
		}
	}
	end := func(eol string) {
		current = append(current, model.NewEOL(eol))
		lines = append(lines, model.NewLine(current...))
	}
	add := func(cell *model.Cell) {
		if needSep {
			current = append(current, model.NewSeparator(w.minSeparator))
			width += w.minSeparator
		}
		current = append(current, cell)
		width += cell.Width()
		needSep = true
	}

	begin(false)
	for _, cell := range cells {
		if needSep && width+w.minSeparator+cell.Width() > w.maxLineLength {
			// Intermediate lines always end with a plain newline; only the
			// final line keeps the original EOL, so a missing trailing
			// newline stays missing.
			end("\n")
			begin(true)
		}
		add(cell)
	}
	end(eolText)
	return lines
}
