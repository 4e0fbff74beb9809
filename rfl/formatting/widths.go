package formatting

import (
	"github.com/MarketSquare/robotfmt/rfl/model"
)

// roundToFour rounds n up to the next multiple of 4. It is a no-op when n is
// already a multiple of 4.
func roundToFour(n int) int {
	if rem := n % 4; rem != 0 {
		return n + 4 - rem
	}
	return n
}

// WidthTable maps a column index to its width. A width of 0 means the column
// is uncapped: it always takes exactly the natural width of its occupant.
type WidthTable struct {
	widths   []int
	fallback int
}

// At returns the width for the given column. Columns beyond the table use
// the fallback width.
func (t WidthTable) At(col int) int {
	if col >= 0 && col < len(t.widths) {
		return t.widths[col]
	}
	return t.fallback
}

// Len returns the number of explicitly tabulated columns.
func (t WidthTable) Len() int {
	return len(t.widths)
}

// fixedTable builds the single global width table used in fixed mode.
func fixedTable(cfg Config) WidthTable {
	widths := make([]int, len(cfg.Widths))
	copy(widths, cfg.Widths)
	fallback := 0
	if len(widths) > 0 {
		fallback = widths[len(widths)-1]
	}
	return WidthTable{widths: widths, fallback: fallback}
}

// ColumnWidthCounter is a read-only pre-pass over a lexical scope's direct
// statements. It records, per column, the maximum natural width
// (roundToFour(cell width + minimum separator)) subject to the configured
// caps, in two independently accumulated pools: body and settings.
type ColumnWidthCounter struct {
	cfg      Config
	body     *widthPool
	settings *widthPool
}

// widthPool accumulates observed column widths for one statement category.
type widthPool struct {
	maxima map[int]int
	maxCol int
}

func newWidthPool() *widthPool {
	return &widthPool{maxima: make(map[int]int), maxCol: -1}
}

// record stores an observed width, keeping the per-column maximum.
func (p *widthPool) record(col, width int) {
	if width > p.maxima[col] {
		p.maxima[col] = width
	}
	if col > p.maxCol {
		p.maxCol = col
	}
}

// mergeInto folds this pool's observations into another pool.
func (p *widthPool) mergeInto(other *widthPool) {
	for col, w := range p.maxima {
		other.record(col, w)
	}
}

// NewColumnWidthCounter creates a counter for one lexical scope.
func NewColumnWidthCounter(cfg Config) *ColumnWidthCounter {
	return &ColumnWidthCounter{
		cfg:      cfg,
		body:     newWidthPool(),
		settings: newWidthPool(),
	}
}

// CountStatement adds one statement's cells to the width pools. Statements
// carrying parse errors contribute nothing. Documentation and template
// statements contribute only their leading label to column 0.
func (c *ColumnWidthCounter) CountStatement(stmt *model.Statement, isSettings bool) {
	if stmt == nil || stmt.HasErrors() {
		return
	}
	pool := c.body
	if isSettings {
		pool = c.settings
	}

	maxColumns := -1
	switch stmt.Kind {
	case model.KindDocumentation, model.KindTemplate:
		maxColumns = 1
	case model.KindComment, model.KindEmpty:
		return
	}

	for _, line := range stmt.Lines {
		c.countLine(line, pool, maxColumns)
	}
}

// countLine records one line's cells, honoring the configured caps. Under
// the ignore_line policy a single over-cap cell discards the entire line's
// contribution; the other policies keep the contributions of earlier columns.
func (c *ColumnWidthCounter) countLine(line *model.Line, pool *widthPool, maxColumns int) {
	type observation struct{ col, width int }
	var staged []observation

	col := 0
	for _, cell := range c.alignable(line) {
		if maxColumns >= 0 && col >= maxColumns {
			break
		}
		natural := roundToFour(cell.Width() + c.cfg.MinSeparator)
		cap := c.cfg.capFor(col)
		switch {
		case cap == 0:
			staged = append(staged, observation{col, natural})
		case natural <= cap:
			staged = append(staged, observation{col, natural})
		default:
			if c.cfg.HandleTooLong == PolicyIgnoreLine {
				return
			}
			// Stop recording this line at the over-cap column.
			for _, obs := range staged {
				pool.record(obs.col, obs.width)
			}
			return
		}
		col++
	}
	for _, obs := range staged {
		pool.record(obs.col, obs.width)
	}
}

// alignable returns the cells of a line that occupy columns for width
// accounting purposes.
func (c *ColumnWidthCounter) alignable(line *model.Line) []*model.Cell {
	var cells []*model.Cell
	for _, cell := range line.DataCells() {
		if cell.Kind == model.CellComment && !c.cfg.AlignComments {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

// Tables finalizes the counter into the body and settings width tables.
// When settings are not tracked separately the pools are merged before the
// per-column maxima are computed, and both returned tables are identical.
func (c *ColumnWidthCounter) Tables() (body, settings WidthTable) {
	if !c.cfg.AlignSettingsSeparately {
		c.settings.mergeInto(c.body)
		merged := c.finalize(c.body)
		return merged, merged
	}
	return c.finalize(c.body), c.finalize(c.settings)
}

// finalize turns a pool into a width table. Columns with no observations
// fall back to their configured cap (0 for uncapped columns, meaning the
// natural width of the occupant is used at alignment time).
func (c *ColumnWidthCounter) finalize(pool *widthPool) WidthTable {
	widths := make([]int, pool.maxCol+1)
	for col := range widths {
		if w, ok := pool.maxima[col]; ok {
			widths[col] = w
		} else {
			widths[col] = c.cfg.capFor(col)
		}
	}
	return WidthTable{widths: widths, fallback: c.cfg.capFor(pool.maxCol + 1)}
}
