package formatting

import (
	"github.com/MarketSquare/robotfmt/internal/debug"
	"github.com/MarketSquare/robotfmt/rfl/model"
)

// FormatterName is the name disabler comments use to address this formatter.
const FormatterName = "align"

// Aligner traverses a parsed document and aligns its statements into visual
// columns. One aligner processes one document at a time; for parallelism
// across documents, give each its own aligner instance.
type Aligner struct {
	cfg      Config
	skip     *SkipConfig
	engine   *Engine
	splitter LineSplitter
	fixed    *Context
}

// NewAligner creates an aligner, validating the configuration before any
// document is processed. A nil skip configuration skips nothing.
func NewAligner(cfg Config, skip *SkipConfig) (*Aligner, error) {
	var splitter LineSplitter
	if cfg.MaxLineLength > 0 {
		splitter = NewLineWrapper(cfg.MaxLineLength, cfg.MinSeparator, cfg.IndentUnit)
	}
	return NewAlignerWithSplitter(cfg, skip, splitter)
}

// NewAlignerWithSplitter creates an aligner with a custom line splitter.
func NewAlignerWithSplitter(cfg Config, skip *SkipConfig, splitter LineSplitter) (*Aligner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Aligner{
		cfg:      cfg,
		skip:     skip,
		engine:   NewEngine(cfg, splitter),
		splitter: splitter,
	}
	if cfg.AlignmentType == AlignFixed {
		// Fixed mode degenerates to one global width table; no per-scope
		// measuring pass is needed.
		table := fixedTable(cfg)
		ctx := Context{body: table, settings: table}
		a.fixed = &ctx
	}
	return a, nil
}

// FormatFile aligns every eligible statement of the file in place.
func (a *Aligner) FormatFile(file *model.File) {
	debug.Debug("Aligning file", "file", file.Name, "mode", a.cfg.AlignmentType.String())
	disablers := CollectDisablers(file)

	for _, section := range file.Sections {
		if section.Kind == model.SectionComments || a.skip.SkipsSection(section.Kind) {
			continue
		}
		if section.Kind.HasProcedures() {
			for _, proc := range section.Procedures {
				a.alignBody(proc.Body, 1, disablers)
			}
			continue
		}
		ctx := a.scopeFor(directStatements(section.Body), 0)
		for _, node := range section.Body {
			if stmt, ok := node.(*model.Statement); ok {
				a.alignStatement(stmt, ctx, disablers)
			}
		}
	}
}

// alignBody aligns one lexical scope: the direct statements of a procedure
// body, loop body, or conditional branch. The scope is measured in full
// before any of its statements is rewritten. Nested blocks get a fresh scope
// one indentation level deeper; their header and END statements belong to
// this scope.
func (a *Aligner) alignBody(nodes []model.Node, depth int, disablers *DisablerRegistry) {
	ctx := a.scopeFor(directStatements(nodes), depth)

	for _, n := range nodes {
		switch node := n.(type) {
		case *model.Statement:
			a.alignStatement(node, ctx, disablers)
		case *model.Block:
			a.alignStatement(node.Header, ctx, disablers)
			a.alignBody(node.Body, depth+1, disablers)
			for _, branch := range node.Branches {
				a.alignStatement(branch.Header, ctx, disablers)
				a.alignBody(branch.Body, depth+1, disablers)
			}
			a.alignStatement(node.End, ctx, disablers)
		}
	}
}

// scopeFor returns the alignment context for a scope. In fixed mode the
// global table is reused at the scope's indentation depth; in auto mode the
// scope's direct statements are measured first.
func (a *Aligner) scopeFor(stmts []scopeStatement, depth int) Context {
	if a.fixed != nil {
		return a.fixed.withIndent(depth)
	}
	return newScope(a.cfg, stmts, depth)
}

// alignStatement aligns one statement unless the skip configuration, a
// disabler, or a parse error excludes it.
func (a *Aligner) alignStatement(stmt *model.Statement, ctx Context, disablers *DisablerRegistry) {
	if stmt == nil || stmt.HasErrors() {
		return
	}
	switch stmt.Kind {
	case model.KindEmpty, model.KindComment:
		return
	}
	if a.skip.SkipsStatement(stmt) {
		return
	}
	if disablers.Disabled(FormatterName, stmt) {
		return
	}

	a.engine.Align(stmt, ctx, AlignOptions{
		Settings:           stmt.Kind.IsSetting(),
		EnforceLineLength:  a.splitter != nil,
		HasAssignment:      stmt.HasAssignment(),
		PreserveAssignment: a.cfg.PreserveAssignments || a.skip.SkipsReturnValues(),
		LabelOnly:          stmt.Kind == model.KindDocumentation || stmt.Kind == model.KindTemplate,
	})
}

// directStatements collects the statements a scope measures: its own
// statements plus the header, branch and END marker statements of blocks
// nested directly inside it. The bodies of those blocks are separate scopes.
func directStatements(nodes []model.Node) []scopeStatement {
	var out []scopeStatement
	for _, n := range nodes {
		switch node := n.(type) {
		case *model.Statement:
			out = append(out, scopeStatement{stmt: node, settings: node.Kind.IsSetting()})
		case *model.Block:
			out = append(out, scopeStatement{stmt: node.Header})
			for _, branch := range node.Branches {
				out = append(out, scopeStatement{stmt: branch.Header})
			}
			if node.End != nil {
				out = append(out, scopeStatement{stmt: node.End})
			}
		}
	}
	return out
}
