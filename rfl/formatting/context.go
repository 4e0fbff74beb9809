package formatting

import "github.com/MarketSquare/robotfmt/rfl/model"

// Context carries the active width tables and indentation depth for one
// lexical scope. Contexts are immutable values passed down the recursive
// traversal, so aligner instances are safe to run concurrently on different
// documents. A context is fully populated before any statement within its
// scope is rewritten.
type Context struct {
	body     WidthTable
	settings WidthTable
	indent   int
}

// TableFor returns the width table for a statement category.
func (c Context) TableFor(isSettings bool) WidthTable {
	if isSettings {
		return c.settings
	}
	return c.body
}

// Indent returns the indentation depth of the scope.
func (c Context) Indent() int {
	return c.indent
}

// withIndent returns a copy of the context at a different indentation depth,
// keeping the width tables. Used in fixed mode, where nesting changes the
// indent but not the (single, global) width table.
func (c Context) withIndent(indent int) Context {
	c.indent = indent
	return c
}

// scopeStatement pairs a direct statement of a scope with its width pool.
type scopeStatement struct {
	stmt     *model.Statement
	settings bool
}

// newScope measures a scope's direct statements and returns its context.
// The full width-counting pass completes before the context is handed to the
// rewrite pass: a statement's width contribution can depend on any statement
// in the same scope, including later ones.
func newScope(cfg Config, stmts []scopeStatement, indent int) Context {
	counter := NewColumnWidthCounter(cfg)
	for _, s := range stmts {
		counter.CountStatement(s.stmt, s.settings)
	}
	body, settings := counter.Tables()
	return Context{body: body, settings: settings, indent: indent}
}
