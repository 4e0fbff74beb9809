package formatting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarketSquare/robotfmt/rfl/diagnostics"
	"github.com/MarketSquare/robotfmt/rfl/model"
	"github.com/MarketSquare/robotfmt/rfl/parsing"
)

func TestLineRangeOverlaps(t *testing.T) {
	a := LineRange{Start: 3, End: 5}
	assert.True(t, a.Overlaps(LineRange{Start: 5, End: 7}))
	assert.True(t, a.Overlaps(LineRange{Start: 1, End: 3}))
	assert.True(t, a.Overlaps(LineRange{Start: 4, End: 4}))
	assert.False(t, a.Overlaps(LineRange{Start: 6, End: 9}))
	assert.False(t, a.Overlaps(LineRange{Start: 1, End: 2}))
}

func TestCollectDisablersPairsOffAndOn(t *testing.T) {
	src := "line one\n" +
		"# robotfmt: off\n" +
		"inside\n" +
		"# robotfmt: on\n" +
		"outside\n"
	file, _ := parsing.ParseString(src)
	reg := CollectDisablers(file)

	offset := func(sub string) int { return indexOf(t, src, sub) }
	assert.True(t, reg.DisabledSpan("align", spanAt(offset("inside"))))
	assert.False(t, reg.DisabledSpan("align", spanAt(offset("outside"))))
	assert.False(t, reg.DisabledSpan("align", spanAt(offset("line one"))))
}

func TestCollectDisablersUnclosedExtendsToEOF(t *testing.T) {
	src := "first\n" +
		"# robotfmt: off\n" +
		"second\n" +
		"third\n"
	file, _ := parsing.ParseString(src)
	reg := CollectDisablers(file)

	assert.False(t, reg.DisabledSpan("align", spanAt(indexOf(t, src, "first"))))
	assert.True(t, reg.DisabledSpan("align", spanAt(indexOf(t, src, "second"))))
	assert.True(t, reg.DisabledSpan("align", spanAt(indexOf(t, src, "third"))))
}

func TestCollectDisablersNamedTarget(t *testing.T) {
	src := "# robotfmt: off=align\n" +
		"inside\n" +
		"# robotfmt: on=align\n" +
		"outside\n"
	file, _ := parsing.ParseString(src)
	reg := CollectDisablers(file)

	inside := spanAt(indexOf(t, src, "inside"))
	assert.True(t, reg.DisabledSpan("align", inside))
	// A named disabler does not touch other formatters.
	assert.False(t, reg.DisabledSpan("other", inside))
}

func TestDisabledMatchesStatementSpan(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    # robotfmt: off\n" +
		"    Messy   Call\n" +
		"    # robotfmt: on\n" +
		"    Neat   Call\n"
	file, _ := parsing.ParseString(src)
	reg := CollectDisablers(file)

	body := file.Sections[0].Procedures[0].Body
	var stmts []*model.Statement
	for _, n := range body {
		stmts = append(stmts, n.(*model.Statement))
	}
	var messy, neat *model.Statement
	for _, s := range stmts {
		switch s.Name() {
		case "Messy":
			messy = s
		case "Neat":
			neat = s
		}
	}
	assert.NotNil(t, messy)
	assert.NotNil(t, neat)
	assert.True(t, reg.Disabled(FormatterName, messy))
	assert.False(t, reg.Disabled(FormatterName, neat))
}

func TestNilRegistryDisablesNothing(t *testing.T) {
	var reg *DisablerRegistry
	assert.False(t, reg.Disabled("align", kindStmt(model.KindCall, "Log")))
}

func spanAt(offset int) diagnostics.Span {
	return diagnostics.NewSpan(offset, offset+1)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	if idx < 0 {
		t.Fatalf("substring %q not found", needle)
	}
	return idx
}
