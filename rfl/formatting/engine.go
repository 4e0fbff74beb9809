package formatting

import (
	"strings"

	"github.com/MarketSquare/robotfmt/rfl/model"
)

// AlignOptions controls one Align invocation.
type AlignOptions struct {
	// Settings selects the settings width table instead of the body table.
	Settings bool
	// EnforceLineLength hands over-long aligned statements to the line
	// splitter, then re-aligns the result once.
	EnforceLineLength bool
	// HasAssignment marks a statement starting with assignment target cells.
	HasAssignment bool
	// PreserveAssignment keeps the original spacing of the assignment
	// target cells and resumes alignment after them.
	PreserveAssignment bool
	// LabelOnly aligns only the leading label cell and leaves the rest of
	// each line untouched (documentation and template statements).
	LabelOnly bool
}

// Engine is the numeric core of the aligner: it computes and writes the
// separator cells of one statement, given a width table and overflow policy.
type Engine struct {
	cfg      Config
	splitter LineSplitter
}

// NewEngine creates an engine. The splitter may be nil, disabling the
// line-length check.
func NewEngine(cfg Config, splitter LineSplitter) *Engine {
	return &Engine{cfg: cfg, splitter: splitter}
}

// Align rewrites the statement's separator cells in place. Statements with
// parse errors pass through byte-for-byte unmodified. Overflow is never an
// error: it is always resolved by the configured policy.
func (e *Engine) Align(stmt *model.Statement, ctx Context, opts AlignOptions) {
	if stmt == nil || stmt.HasErrors() || len(stmt.Lines) == 0 {
		return
	}
	table := ctx.TableFor(opts.Settings)

	abandoned := false
	for i, line := range stmt.Lines {
		if abandoned {
			e.renderUniform(line, ctx.indent)
			continue
		}
		if !e.alignLine(line, table, ctx.indent, i == 0, opts) {
			// ignore_line: column alignment is abandoned for the whole
			// remaining statement.
			e.renderUniform(line, ctx.indent)
			abandoned = true
		}
	}

	if opts.EnforceLineLength && e.splitter != nil && e.exceeds(stmt) {
		e.splitter.Split(stmt)
		opts.EnforceLineLength = false
		e.Align(stmt, ctx, opts)
	}
}

// exceeds reports whether any rendered line exceeds the splitter's maximum.
func (e *Engine) exceeds(stmt *model.Statement) bool {
	max := e.splitter.MaxLineLength()
	if max <= 0 {
		return false
	}
	for _, line := range stmt.Lines {
		if line.RenderedWidth() > max {
			return true
		}
	}
	return false
}

// alignLine rewrites one line's cells. It returns false when the ignore_line
// policy fired, telling the caller to abandon alignment for the statement.
func (e *Engine) alignLine(line *model.Line, table WidthTable, indent int, firstLine bool, opts AlignOptions) bool {
	eol := normalizedEOL(line)

	// A continuation marker with no value: only its end-of-line whitespace
	// is normalized.
	if line.IsBlankContinuation() {
		if c := line.EOL(); c != nil {
			c.Text = eol
		}
		return true
	}

	cells := line.DataCells()
	if len(cells) == 0 {
		line.Cells = []*model.Cell{model.NewEOL(eol)}
		return true
	}

	if opts.LabelOnly {
		e.alignLabel(line, table, indent, eol)
		return true
	}

	// Comments do not participate in alignment unless configured to; they
	// are re-appended at the very end with a minimum separator.
	var comments []*model.Cell
	if !e.cfg.AlignComments {
		var rest []*model.Cell
		for _, c := range cells {
			if c.Kind == model.CellComment {
				comments = append(comments, c)
			} else {
				rest = append(rest, c)
			}
		}
		cells = rest
	}

	var out []*model.Cell
	startCol := 0
	preserved := false

	if firstLine && opts.HasAssignment && opts.PreserveAssignment {
		// splitAssignment returns an empty prefix when there is nothing to
		// preserve (every cell is a target, or none is); the line then
		// aligns like any other.
		prefix, prefixWidth, remaining := splitAssignment(line, cells)
		if len(prefix) > 0 {
			out = append(out, prefix...)
			cells = remaining
			startCol = startingColumn(table, prefixWidth)
			preserved = true
		}
	}
	if !preserved && indent > 0 {
		out = append(out, model.NewSeparator(indent*e.cfg.IndentUnit))
	}

	if len(cells) > 0 {
		if !e.alignTokens(cells, startCol, table, &out) {
			return false
		}
	}

	for _, comment := range comments {
		out = append(out, model.NewSeparator(e.cfg.MinSeparator), comment)
	}
	out = append(out, model.NewEOL(eol))
	line.Cells = out
	return true
}

// alignTokens is the per-token loop: every cell except the final one gets a
// computed trailing separator. State carried across the loop: the current
// column, the width still owed from a previous compact overflow, and the
// consecutive-overflow counter.
func (e *Engine) alignTokens(cells []*model.Cell, startCol int, table WidthTable, out *[]*model.Cell) bool {
	minSep := e.cfg.MinSeparator
	col := startCol
	prevOverflow := 0
	misaligned := 0

	for i, cell := range cells {
		if i == len(cells)-1 {
			cell.Text = strings.TrimLeft(cell.Text, " \t")
			*out = append(*out, cell)
			break
		}

		cellLen := cell.Width()
		width := table.At(col)

		// An uncapped column always takes exactly the natural width of its
		// occupant.
		if width == 0 {
			width = roundToFour(cellLen + minSep)
			sep := width - cellLen - prevOverflow
			if sep < minSep {
				sep = minSep
			}
			*out = append(*out, cell, model.NewSeparator(sep))
			prevOverflow, misaligned = 0, 0
			col++
			continue
		}

		sep := width - cellLen - prevOverflow
		if sep >= 1 {
			*out = append(*out, cell, model.NewSeparator(sep))
			prevOverflow, misaligned = 0, 0
			col++
			if sep == width {
				// The cell consumed an entire column with zero slack: it
				// silently spans two logical columns.
				col++
			}
			continue
		}

		// The cell does not fit its column.
		switch e.cfg.HandleTooLong {
		case PolicyIgnoreLine:
			return false

		case PolicyIgnoreRest:
			e.renderRest(cells[i:], out)
			return true

		case PolicyCompactOverflow:
			sep = minSep
			excess := cellLen + sep + prevOverflow - width
			misaligned++
			// Borrow following columns one at a time until the borrowed
			// width covers the excess.
			for next := table.At(col + 1); next > 0 && excess > next; next = table.At(col + 1) {
				col++
				misaligned++
				excess -= next
			}
			prevOverflow = excess
			if misaligned >= e.cfg.CompactOverflowLimit && i+1 < len(cells) {
				// Lookahead: if the next column cannot absorb both the
				// current overflow and the next cell, skip an extra column
				// instead of building a staircase of misalignment.
				nextWidth := table.At(col + 1)
				if nextWidth > 0 && nextWidth-prevOverflow < cells[i+1].Width()+minSep {
					col++
					prevOverflow = 0
					misaligned = 0
				}
			}
			*out = append(*out, cell, model.NewSeparator(sep))
			col++

		default: // PolicyOverflow
			acc := width
			for acc < cellLen+minSep {
				col++
				next := table.At(col)
				if next == 0 {
					acc = roundToFour(cellLen + minSep)
					break
				}
				acc += next
			}
			sep = acc - cellLen - prevOverflow
			if sep < minSep {
				sep = minSep
			}
			*out = append(*out, cell, model.NewSeparator(sep))
			prevOverflow, misaligned = 0, 0
			col++
		}
	}
	return true
}

// renderRest appends the remaining cells with uniform minimum separators.
func (e *Engine) renderRest(cells []*model.Cell, out *[]*model.Cell) {
	for i, cell := range cells {
		if i == len(cells)-1 {
			cell.Text = strings.TrimLeft(cell.Text, " \t")
			*out = append(*out, cell)
			return
		}
		*out = append(*out, cell, model.NewSeparator(e.cfg.MinSeparator))
	}
}

// renderUniform re-renders a whole line with uniform minimum separators,
// keeping comments in place.
func (e *Engine) renderUniform(line *model.Line, indent int) {
	eol := normalizedEOL(line)
	cells := line.DataCells()
	if len(cells) == 0 {
		line.Cells = []*model.Cell{model.NewEOL(eol)}
		return
	}

	var out []*model.Cell
	if indent > 0 {
		out = append(out, model.NewSeparator(indent*e.cfg.IndentUnit))
	}
	for i, cell := range cells {
		out = append(out, cell)
		if i < len(cells)-1 {
			out = append(out, model.NewSeparator(e.cfg.MinSeparator))
		}
	}
	out = append(out, model.NewEOL(eol))
	line.Cells = out
}

// alignLabel aligns only the first separator of the line (after the label or
// continuation marker) and keeps the rest of the line untouched.
func (e *Engine) alignLabel(line *model.Line, table WidthTable, indent int, eol string) {
	var out []*model.Cell
	if indent > 0 {
		out = append(out, model.NewSeparator(indent*e.cfg.IndentUnit))
	}

	// Locate the label cell and the original tail after its separator.
	labelIdx := -1
	for i, c := range line.Cells {
		if c.Kind == model.CellData || c.Kind == model.CellContinuation || c.Kind == model.CellComment {
			labelIdx = i
			break
		}
	}
	if labelIdx < 0 {
		line.Cells = []*model.Cell{model.NewEOL(eol)}
		return
	}
	label := line.Cells[labelIdx]

	tailIdx := labelIdx + 1
	if tailIdx < len(line.Cells) && line.Cells[tailIdx].Kind == model.CellSeparator {
		tailIdx++
	}

	out = append(out, label)
	if tailIdx < len(line.Cells) && line.Cells[tailIdx].Kind != model.CellEOL {
		width := table.At(0)
		labelLen := label.Width()
		sep := width - labelLen
		if width == 0 {
			sep = roundToFour(labelLen+e.cfg.MinSeparator) - labelLen
		}
		if sep < 1 {
			sep = e.cfg.MinSeparator
		}
		out = append(out, model.NewSeparator(sep))
		for _, c := range line.Cells[tailIdx:] {
			if c.Kind == model.CellEOL {
				break
			}
			out = append(out, c)
		}
	}
	out = append(out, model.NewEOL(eol))
	line.Cells = out
}

// splitAssignment splits off the leading assignment target cells with their
// original separators, returning the preserved prefix, its display width
// (excluding the leading indent), and the remaining alignable cells.
func splitAssignment(line *model.Line, alignable []*model.Cell) (prefix []*model.Cell, prefixWidth int, remaining []*model.Cell) {
	targets := 0
	for _, c := range alignable {
		if c.Kind == model.CellData && model.IsAssignmentTarget(c.Text) {
			targets++
		} else {
			break
		}
	}
	if targets == 0 || targets == len(alignable) {
		return nil, 0, alignable
	}

	seen := 0
	for i, c := range line.Cells {
		prefix = append(prefix, c)
		if i > 0 || c.Kind != model.CellSeparator {
			prefixWidth += c.Width()
		}
		if c.Kind == model.CellData && !c.IsBlank() {
			seen++
			if seen == targets {
				// Include the separator following the last target.
				if i+1 < len(line.Cells) && line.Cells[i+1].Kind == model.CellSeparator {
					prefix = append(prefix, line.Cells[i+1])
					prefixWidth += line.Cells[i+1].Width()
				}
				break
			}
		}
	}
	return prefix, prefixWidth, alignable[targets:]
}

// startingColumn walks the width table, subtracting each column's width from
// the skipped prefix, until the remainder is less than a column's width.
// This is where alignment resumes after a preserved assignment prefix.
func startingColumn(table WidthTable, prefixWidth int) int {
	col := 0
	rem := prefixWidth
	for {
		width := table.At(col)
		if width == 0 || rem < width {
			return col
		}
		rem -= width
		col++
	}
}

// normalizedEOL returns the line's end-of-line text with trailing
// whitespace stripped, preserving the newline style and a missing final
// newline.
func normalizedEOL(line *model.Line) string {
	c := line.EOL()
	if c == nil {
		return "\n"
	}
	if strings.HasSuffix(c.Text, "\r\n") {
		return "\r\n"
	}
	if strings.HasSuffix(c.Text, "\n") {
		return "\n"
	}
	return ""
}
