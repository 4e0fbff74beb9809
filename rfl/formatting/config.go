// Package formatting implements column alignment for robot source files.
//
// The aligner rewrites inter-cell whitespace so that cells line up into
// visual columns, under either a fixed (user-specified) or auto
// (content-derived) width policy. Widths are computed per lexical scope
// before any statement in that scope is rewritten.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

// AlignmentType selects how column widths are determined.
type AlignmentType int

const (
	// AlignAuto recomputes widths per lexical scope from the longest
	// observed cell per column.
	AlignAuto AlignmentType = iota
	// AlignFixed takes constant widths once from configuration.
	AlignFixed
)

// String returns the configuration name of the alignment type.
func (t AlignmentType) String() string {
	switch t {
	case AlignAuto:
		return "auto"
	case AlignFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseAlignmentType parses an alignment type name.
func ParseAlignmentType(s string) (AlignmentType, error) {
	switch strings.ToLower(s) {
	case "auto":
		return AlignAuto, nil
	case "fixed":
		return AlignFixed, nil
	default:
		return 0, fmt.Errorf("invalid alignment_type %q: allowed values are 'auto' and 'fixed'", s)
	}
}

// OverflowPolicy decides what happens when a cell does not fit its column.
type OverflowPolicy int

const (
	// PolicyOverflow lets the cell span as many columns as it needs.
	PolicyOverflow OverflowPolicy = iota
	// PolicyCompactOverflow lets the cell protrude into the next column,
	// reducing the following cell's separator by the protrusion.
	PolicyCompactOverflow
	// PolicyIgnoreLine abandons column alignment for the whole remaining
	// statement and renders it with uniform minimum separators.
	PolicyIgnoreLine
	// PolicyIgnoreRest keeps what is aligned so far and renders the rest of
	// the line with uniform minimum separators.
	PolicyIgnoreRest
)

// String returns the configuration name of the overflow policy.
func (p OverflowPolicy) String() string {
	switch p {
	case PolicyOverflow:
		return "overflow"
	case PolicyCompactOverflow:
		return "compact_overflow"
	case PolicyIgnoreLine:
		return "ignore_line"
	case PolicyIgnoreRest:
		return "ignore_rest"
	default:
		return "unknown"
	}
}

// ParseOverflowPolicy parses an overflow policy name.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "overflow":
		return PolicyOverflow, nil
	case "compact_overflow":
		return PolicyCompactOverflow, nil
	case "ignore_line":
		return PolicyIgnoreLine, nil
	case "ignore_rest":
		return PolicyIgnoreRest, nil
	default:
		return 0, fmt.Errorf("invalid handle_too_long %q: allowed values are 'overflow', 'compact_overflow', 'ignore_line' and 'ignore_rest'", s)
	}
}

// ParseWidths parses a comma-separated width list such as "24,28,20".
// A width of 0 means the column is uncapped.
func ParseWidths(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid widths entry %q: widths must be a comma-separated list of non-negative integers", part)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid widths entry %d: widths must be non-negative (0 means uncapped)", n)
		}
		widths = append(widths, n)
	}
	return widths, nil
}

// Config is the validated alignment configuration. Construct it with
// DefaultConfig and adjust fields, then pass it to NewAligner, which
// validates it once before any document is processed.
type Config struct {
	// Widths holds per-column caps; 0 means uncapped. In fixed mode these
	// are the column widths themselves. The last entry extends to all
	// further columns.
	Widths []int
	// AlignmentType selects fixed or auto width computation.
	AlignmentType AlignmentType
	// HandleTooLong is the overflow policy for cells that do not fit.
	HandleTooLong OverflowPolicy
	// CompactOverflowLimit bounds consecutive compact overflows before the
	// engine skips a column to stop a staircase of misalignment.
	CompactOverflowLimit int
	// AlignComments makes comment cells participate in alignment instead of
	// being re-appended at the end of the line.
	AlignComments bool
	// AlignSettingsSeparately tracks settings statements in their own width
	// pool instead of merging them with the body pool.
	AlignSettingsSeparately bool
	// PreserveAssignments keeps the original spacing of leading assignment
	// target cells and resumes alignment after them.
	PreserveAssignments bool
	// MinSeparator is the minimum number of spaces between two cells.
	MinSeparator int
	// IndentUnit is the number of spaces per indentation level.
	IndentUnit int
	// MaxLineLength is the maximum rendered line length before the engine
	// hands the statement to the line splitter. 0 disables the check.
	MaxLineLength int
}

// DefaultConfig returns the default alignment configuration.
func DefaultConfig() Config {
	return Config{
		AlignmentType:           AlignAuto,
		HandleTooLong:           PolicyOverflow,
		CompactOverflowLimit:    2,
		AlignSettingsSeparately: true,
		MinSeparator:            4,
		IndentUnit:              4,
		MaxLineLength:           120,
	}
}

// Validate checks the configuration, returning an error naming the offending
// parameter and its allowed values. It is called once at construction;
// failure happens before any document is processed.
func (c Config) Validate() error {
	for _, w := range c.Widths {
		if w < 0 {
			return fmt.Errorf("invalid widths entry %d: widths must be non-negative (0 means uncapped)", w)
		}
	}
	if c.AlignmentType != AlignAuto && c.AlignmentType != AlignFixed {
		return fmt.Errorf("invalid alignment_type %d: allowed values are 'auto' and 'fixed'", int(c.AlignmentType))
	}
	switch c.HandleTooLong {
	case PolicyOverflow, PolicyCompactOverflow, PolicyIgnoreLine, PolicyIgnoreRest:
	default:
		return fmt.Errorf("invalid handle_too_long %d: allowed values are 'overflow', 'compact_overflow', 'ignore_line' and 'ignore_rest'", int(c.HandleTooLong))
	}
	if c.CompactOverflowLimit < 1 {
		return fmt.Errorf("invalid compact_overflow_limit %d: must be an integer >= 1", c.CompactOverflowLimit)
	}
	if c.MinSeparator < 1 {
		return fmt.Errorf("invalid min_separator_width %d: must be an integer >= 1", c.MinSeparator)
	}
	if c.IndentUnit < 1 {
		return fmt.Errorf("invalid indent_unit %d: must be an integer >= 1", c.IndentUnit)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("invalid max_line_length %d: must be 0 (disabled) or a positive integer", c.MaxLineLength)
	}
	return nil
}

// capFor returns the configured cap for a column. The last configured entry
// extends to all further columns; no configuration means uncapped.
func (c Config) capFor(col int) int {
	if len(c.Widths) == 0 {
		return 0
	}
	if col < len(c.Widths) {
		return c.Widths[col]
	}
	return c.Widths[len(c.Widths)-1]
}
