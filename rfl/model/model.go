// Package model provides the cell/line/statement document model for robot files.
//
// A Statement is an ordered sequence of Lines; a Line is an ordered sequence
// of Cells; a Cell has a kind and a mutable text value. The model is produced
// by the parsing package and mutated in place by the formatting package.
package model

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MarketSquare/robotfmt/rfl/diagnostics"
)

// CellKind represents the lexical role of a cell within a line.
type CellKind int

const (
	// CellData is a regular data cell (keyword name, argument, setting value).
	CellData CellKind = iota
	// CellSeparator is a run of whitespace between two cells.
	CellSeparator
	// CellComment is a trailing `# ...` comment cell.
	CellComment
	// CellContinuation is the `...` continuation marker.
	CellContinuation
	// CellEOL is the end-of-line cell (newline plus any trailing whitespace).
	CellEOL
)

// ContinuationMarker is the literal continuation token for multi-line statements.
const ContinuationMarker = "..."

// Cell is the minimal lexical unit: a single table cell of source text.
// Cells are owned by their Line and mutated in place by the formatter.
type Cell struct {
	Kind CellKind
	Text string
}

// NewDataCell creates a data cell with the given text.
func NewDataCell(text string) *Cell {
	return &Cell{Kind: CellData, Text: text}
}

// NewSeparator creates a separator cell of the given number of spaces.
func NewSeparator(width int) *Cell {
	if width < 0 {
		width = 0
	}
	return &Cell{Kind: CellSeparator, Text: strings.Repeat(" ", width)}
}

// NewComment creates a comment cell.
func NewComment(text string) *Cell {
	return &Cell{Kind: CellComment, Text: text}
}

// NewContinuation creates a continuation marker cell.
func NewContinuation() *Cell {
	return &Cell{Kind: CellContinuation, Text: ContinuationMarker}
}

// NewEOL creates an end-of-line cell.
func NewEOL(text string) *Cell {
	return &Cell{Kind: CellEOL, Text: text}
}

// DisplayWidth returns the display width of a string in terminal columns.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Width returns the display width of the cell text in terminal columns.
func (c *Cell) Width() int {
	return DisplayWidth(c.Text)
}

// IsBlank reports whether the cell text is empty or whitespace only.
func (c *Cell) IsBlank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// Line is an ordered sequence of cells ending with an end-of-line cell.
type Line struct {
	Cells []*Cell
}

// NewLine creates a line from the given cells.
func NewLine(cells ...*Cell) *Line {
	return &Line{Cells: cells}
}

// DataCells returns the cells that occupy columns: data cells, the
// continuation marker, and comment cells. Separator and EOL cells are
// excluded, as are blank data cells.
func (l *Line) DataCells() []*Cell {
	var cells []*Cell
	for _, c := range l.Cells {
		switch c.Kind {
		case CellData:
			if !c.IsBlank() {
				cells = append(cells, c)
			}
		case CellContinuation, CellComment:
			cells = append(cells, c)
		}
	}
	return cells
}

// HasContinuation reports whether the line starts with a continuation marker.
func (l *Line) HasContinuation() bool {
	for _, c := range l.Cells {
		switch c.Kind {
		case CellSeparator:
			continue
		case CellContinuation:
			return true
		default:
			return false
		}
	}
	return false
}

// IsBlankContinuation reports whether the line is a continuation marker
// followed by no data at all (an intentionally empty continuation line).
func (l *Line) IsBlankContinuation() bool {
	if !l.HasContinuation() {
		return false
	}
	for _, c := range l.Cells {
		if c.Kind == CellData && !c.IsBlank() {
			return false
		}
		if c.Kind == CellComment {
			return false
		}
	}
	return true
}

// EOL returns the end-of-line cell, or nil if the line has none.
func (l *Line) EOL() *Cell {
	if len(l.Cells) == 0 {
		return nil
	}
	last := l.Cells[len(l.Cells)-1]
	if last.Kind == CellEOL {
		return last
	}
	return nil
}

// Render joins all cell texts back into source text.
func (l *Line) Render() string {
	var sb strings.Builder
	for _, c := range l.Cells {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

// RenderedWidth returns the display width of the line without its EOL cell.
func (l *Line) RenderedWidth() int {
	width := 0
	for _, c := range l.Cells {
		if c.Kind == CellEOL {
			continue
		}
		width += c.Width()
	}
	return width
}

// StatementKind classifies a statement for dispatch and width accounting.
type StatementKind int

const (
	// KindCall is an ordinary keyword call with arguments.
	KindCall StatementKind = iota
	// KindTagList is a tag list setting such as `[Tags]` or `Force Tags`.
	KindTagList
	// KindSingleSetting is a single-value setting such as `[Timeout]`.
	KindSingleSetting
	// KindMultiSetting is a multi-value setting such as `[Setup]` or `[Arguments]`.
	KindMultiSetting
	// KindDocumentation is a `[Documentation]` or `Documentation` statement.
	KindDocumentation
	// KindTemplate is a `[Template]` or `Test Template` statement.
	KindTemplate
	// KindVariable is a variable table row (`${name}    value`).
	KindVariable
	// KindBlockHeader is a FOR/WHILE/IF/TRY header or branch marker statement.
	KindBlockHeader
	// KindEnd is the END marker closing a block.
	KindEnd
	// KindComment is a standalone comment line.
	KindComment
	// KindEmpty is an empty line.
	KindEmpty
)

// String returns a readable name for the statement kind.
func (k StatementKind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindTagList:
		return "tag list"
	case KindSingleSetting:
		return "single-value setting"
	case KindMultiSetting:
		return "multi-value setting"
	case KindDocumentation:
		return "documentation"
	case KindTemplate:
		return "template"
	case KindVariable:
		return "variable"
	case KindBlockHeader:
		return "block header"
	case KindEnd:
		return "end"
	case KindComment:
		return "comment"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// IsSetting reports whether the kind participates in the settings width pool
// rather than the body pool.
func (k StatementKind) IsSetting() bool {
	switch k {
	case KindTagList, KindSingleSetting, KindMultiSetting, KindDocumentation, KindTemplate, KindVariable:
		return true
	default:
		return false
	}
}

// Statement is an ordered sequence of lines: the primary line plus any
// continuation lines. Statements are created by the parser and mutated,
// never created or destroyed, by the formatter.
type Statement struct {
	Kind   StatementKind
	Lines  []*Line
	Span   diagnostics.Span
	Errors []diagnostics.ParseError
}

// NewStatement creates a statement of the given kind from lines.
func NewStatement(kind StatementKind, lines ...*Line) *Statement {
	return &Statement{Kind: kind, Lines: lines}
}

// HasErrors reports whether the statement carries parse errors.
// Such statements are passed through unmodified by the formatter.
func (s *Statement) HasErrors() bool {
	return len(s.Errors) > 0
}

// Name returns the text of the statement's leading data cell, or "".
func (s *Statement) Name() string {
	if len(s.Lines) == 0 {
		return ""
	}
	for _, c := range s.Lines[0].Cells {
		if c.Kind == CellData && !c.IsBlank() {
			return c.Text
		}
	}
	return ""
}

// AssignmentTargets returns how many leading data cells of the first line are
// assignment targets (`${var}`, `@{var}`, `&{var}`, optionally with a
// trailing `=` on the last one).
func (s *Statement) AssignmentTargets() int {
	if len(s.Lines) == 0 {
		return 0
	}
	count := 0
	for _, c := range s.Lines[0].DataCells() {
		if c.Kind != CellData || !IsAssignmentTarget(c.Text) {
			break
		}
		count++
	}
	// A line made up entirely of variables is a value list, not an assignment.
	if count == len(s.Lines[0].DataCells()) {
		return 0
	}
	return count
}

// HasAssignment reports whether the statement begins with assignment targets.
func (s *Statement) HasAssignment() bool {
	return s.AssignmentTargets() > 0
}

// Render joins all lines back into source text.
func (s *Statement) Render() string {
	var sb strings.Builder
	for _, l := range s.Lines {
		sb.WriteString(l.Render())
	}
	return sb.String()
}

// IsAssignmentTarget reports whether text looks like a variable assignment
// target: a scalar, list, or dict variable with an optional `=` suffix.
func IsAssignmentTarget(text string) bool {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "=")
	text = strings.TrimRight(text, " ")
	if len(text) < 4 {
		return false
	}
	switch text[0] {
	case '$', '@', '&':
	default:
		return false
	}
	return text[1] == '{' && text[len(text)-1] == '}'
}
