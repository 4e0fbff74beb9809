package formatting

import (
	"sort"
	"strings"

	"github.com/MarketSquare/robotfmt/rfl/diagnostics"
	"github.com/MarketSquare/robotfmt/rfl/model"
)

// LineRange is an inclusive range of 1-based line numbers.
type LineRange struct {
	Start int
	End   int
}

// Overlaps reports whether two line ranges share at least one line.
func (r LineRange) Overlaps(other LineRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// DisablerRegistry records, per formatter name, the line ranges in which
// that formatter must not touch the document. The registry is queried with a
// (formatter, node) pair before each statement is rewritten.
type DisablerRegistry struct {
	ranges map[string][]LineRange
	lines  []int
}

// allFormatters disables every formatter within a range.
const allFormatters = "*"

// disablerOff and disablerOn are the magic comments that toggle formatting.
const (
	disablerOff = "robotfmt: off"
	disablerOn  = "robotfmt: on"
)

// NewDisablerRegistry creates an empty registry for a source text. The
// source is needed to translate statement spans into line numbers.
func NewDisablerRegistry(source string) *DisablerRegistry {
	return &DisablerRegistry{
		ranges: make(map[string][]LineRange),
		lines:  lineOffsets(source),
	}
}

// CollectDisablers scans a parsed file for `# robotfmt: off` and
// `# robotfmt: on` comments and returns the resulting registry. A formatter
// name may follow the toggle (`# robotfmt: off=align`) to scope it.
func CollectDisablers(file *model.File) *DisablerRegistry {
	reg := NewDisablerRegistry(file.Source)
	open := make(map[string]int)

	for lineNo, text := range strings.Split(file.Source, "\n") {
		comment, ok := disablerComment(text)
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(comment, disablerOff):
			name := disablerTarget(comment, disablerOff)
			if _, pending := open[name]; !pending {
				open[name] = lineNo + 1
			}
		case strings.HasPrefix(comment, disablerOn):
			name := disablerTarget(comment, disablerOn)
			if start, pending := open[name]; pending {
				reg.Disable(name, LineRange{Start: start, End: lineNo + 1})
				delete(open, name)
			}
		}
	}
	// Unclosed disablers extend to the end of the file.
	total := len(reg.lines)
	for name, start := range open {
		reg.Disable(name, LineRange{Start: start, End: total})
	}
	return reg
}

// Disable records a disabled line range for a formatter name.
func (d *DisablerRegistry) Disable(formatter string, r LineRange) {
	d.ranges[formatter] = append(d.ranges[formatter], r)
}

// Disabled reports whether the given statement falls within a line range in
// which the named formatter is disabled.
func (d *DisablerRegistry) Disabled(formatter string, stmt *model.Statement) bool {
	if d == nil {
		return false
	}
	r := LineRange{
		Start: d.lineOf(stmt.Span.Start),
		End:   d.lineOf(stmt.Span.End),
	}
	for _, disabled := range d.ranges[formatter] {
		if disabled.Overlaps(r) {
			return true
		}
	}
	for _, disabled := range d.ranges[allFormatters] {
		if disabled.Overlaps(r) {
			return true
		}
	}
	return false
}

// DisabledSpan reports whether any part of the span is disabled for the
// named formatter.
func (d *DisablerRegistry) DisabledSpan(formatter string, span diagnostics.Span) bool {
	stmt := &model.Statement{Span: span}
	return d.Disabled(formatter, stmt)
}

// lineOf returns the 1-based line number holding a byte offset.
func (d *DisablerRegistry) lineOf(offset int) int {
	n := sort.Search(len(d.lines), func(i int) bool { return d.lines[i] > offset })
	if n < 1 {
		return 1
	}
	return n
}

// lineOffsets returns the starting byte offset of every line.
func lineOffsets(source string) []int {
	offsets := []int{0}
	for i, r := range source {
		if r == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// disablerComment extracts the normalized comment text of a disabler line.
func disablerComment(line string) (string, bool) {
	idx := strings.Index(line, "#")
	if idx < 0 {
		return "", false
	}
	comment := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line[idx:]), "#"))
	if !strings.HasPrefix(comment, "robotfmt:") {
		return "", false
	}
	return comment, true
}

// disablerTarget returns the formatter name a toggle applies to, or the
// wildcard when none is given.
func disablerTarget(comment, prefix string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(comment, prefix))
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "="))
	if rest == "" {
		return allFormatters
	}
	return rest
}
