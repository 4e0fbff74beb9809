package parsing

import (
	"strings"

	"github.com/MarketSquare/robotfmt/rfl/model"
)

// rawLine is one physical line of the source, with its byte span.
type rawLine struct {
	line  *model.Line
	start int
	end   int
}

// indented reports whether the line starts with leading whitespace.
func (r *rawLine) indented() bool {
	return len(r.line.Cells) > 0 && r.line.Cells[0].Kind == model.CellSeparator
}

// first returns the text of the first column occupant, or "".
func (r *rawLine) first() string {
	for _, c := range r.line.Cells {
		switch c.Kind {
		case model.CellSeparator:
			continue
		case model.CellData, model.CellContinuation, model.CellComment:
			return c.Text
		default:
			return ""
		}
	}
	return ""
}

// isEmpty reports whether the line holds no data, continuation or comment cells.
func (r *rawLine) isEmpty() bool {
	for _, c := range r.line.Cells {
		switch c.Kind {
		case model.CellData, model.CellContinuation, model.CellComment:
			return false
		}
	}
	return true
}

// isContinuation reports whether the line's first occupant is the `...` marker.
func (r *rawLine) isContinuation() bool {
	return r.line.HasContinuation()
}

// assembleLines groups the token stream into physical lines of cells.
func assembleLines(tokens []token) []*rawLine {
	var lines []*rawLine

	i := 0
	for i < len(tokens) {
		start := tokens[i].offset
		var cells []*model.Cell
		end := start

		// Leading indent.
		if tokens[i].typ == tokSeparator {
			cells = append(cells, &model.Cell{Kind: model.CellSeparator, Text: tokens[i].value})
			end = tokens[i].offset + len(tokens[i].value)
			i++
		}

		inComment := false
		var pending strings.Builder
		pendingKind := model.CellData

		flush := func() {
			if pending.Len() == 0 {
				return
			}
			cells = append(cells, &model.Cell{Kind: pendingKind, Text: pending.String()})
			pending.Reset()
			pendingKind = model.CellData
		}

		for i < len(tokens) && tokens[i].typ != tokNewline {
			t := tokens[i]
			end = t.offset + len(t.value)
			switch t.typ {
			case tokSeparator:
				if inComment {
					pending.WriteString(t.value)
				} else {
					flush()
					cells = append(cells, &model.Cell{Kind: model.CellSeparator, Text: t.value})
				}
			case tokSpace:
				if pending.Len() > 0 {
					pending.WriteString(t.value)
				} else if !inComment {
					// A lone leading space acts as a (sub-minimum) separator.
					cells = append(cells, &model.Cell{Kind: model.CellSeparator, Text: t.value})
				} else {
					pending.WriteString(t.value)
				}
			case tokWord:
				if !inComment && strings.HasPrefix(t.value, "#") {
					flush()
					inComment = true
					pendingKind = model.CellComment
				}
				if pending.Len() == 0 && !inComment {
					if t.value == model.ContinuationMarker && len(cellOccupants(cells)) == 0 {
						cells = append(cells, model.NewContinuation())
						i++
						continue
					}
					pendingKind = model.CellData
				}
				pending.WriteString(t.value)
			}
			i++
		}
		flush()

		eol := ""
		if i < len(tokens) && tokens[i].typ == tokNewline {
			eol = tokens[i].value
			end = tokens[i].offset + len(tokens[i].value)
			i++
		}
		// Fold trailing whitespace into the EOL cell.
		if n := len(cells); n > 0 && cells[n-1].Kind == model.CellSeparator {
			eol = cells[n-1].Text + eol
			cells = cells[:n-1]
		}
		cells = append(cells, model.NewEOL(eol))

		lines = append(lines, &rawLine{line: model.NewLine(cells...), start: start, end: end})
	}
	return lines
}

// cellOccupants returns the column-occupying cells collected so far.
func cellOccupants(cells []*model.Cell) []*model.Cell {
	var out []*model.Cell
	for _, c := range cells {
		switch c.Kind {
		case model.CellData, model.CellContinuation, model.CellComment:
			out = append(out, c)
		}
	}
	return out
}
