package parsing

import (
	"strings"

	"github.com/MarketSquare/robotfmt/internal/debug"
	"github.com/MarketSquare/robotfmt/rfl/diagnostics"
	"github.com/MarketSquare/robotfmt/rfl/model"
)

// Parse reads robot source text into the document model. Syntax problems do
// not abort parsing; they are collected and attached to the offending
// statements so the formatter can pass those statements through untouched.
func Parse(filename, source string) (*model.File, *diagnostics.Collection) {
	debug.Debug("Parsing robot file", "file", filename, "bytes", len(source))
	diags := diagnostics.NewCollection()
	file := &model.File{Name: filename, Source: source}

	tokens, err := lexAll(filename, strings.NewReader(source))
	if err != nil {
		diags.Push(diagnostics.NewParseError(err.Error(), diagnostics.EmptySpan()))
		return file, diags
	}

	lines := assembleLines(tokens)
	b := &builder{diags: diags}
	file.Sections = b.buildSections(lines)
	debug.Debug("Parsed robot file", "file", filename, "sections", len(file.Sections), "errors", len(diags.Errors()))
	return file, diags
}

// ParseString parses source text with a placeholder file name.
func ParseString(source string) (*model.File, *diagnostics.Collection) {
	return Parse("<string>", source)
}

// builder assembles raw lines into sections, procedures, statements and blocks.
type builder struct {
	diags *diagnostics.Collection
}

// buildSections splits the line stream at section headers.
func (b *builder) buildSections(lines []*rawLine) []*model.Section {
	var sections []*model.Section
	var current *model.Section
	var body []*rawLine

	flush := func() {
		if current == nil {
			if len(body) == 0 {
				return
			}
			// Content before the first section header is preserved verbatim.
			current = &model.Section{Kind: model.SectionComments}
		}
		b.fillSection(current, body)
		sections = append(sections, current)
		current = nil
		body = nil
	}

	for _, rl := range lines {
		if kind, ok := sectionKindOf(rl.first()); ok && !rl.indented() {
			flush()
			current = &model.Section{
				Kind:   kind,
				Header: b.statement(model.KindComment, rl),
			}
			continue
		}
		body = append(body, rl)
	}
	flush()
	return sections
}

// fillSection builds the section body from its raw lines.
func (b *builder) fillSection(section *model.Section, lines []*rawLine) {
	if section.Kind.HasProcedures() {
		b.fillProcedures(section, lines)
		return
	}
	stmts := b.gatherStatements(lines, func(first string) model.StatementKind {
		if section.Kind == model.SectionVariables {
			return model.KindVariable
		}
		if section.Kind == model.SectionComments {
			return model.KindComment
		}
		return classifySuiteStatement(first)
	})
	for _, s := range stmts {
		section.Body = append(section.Body, s)
	}
}

// fillProcedures builds named procedures from a test case or keyword section.
func (b *builder) fillProcedures(section *model.Section, lines []*rawLine) {
	var current *model.Procedure
	var body []*rawLine

	flush := func() {
		if current == nil {
			// Leading comment or blank lines before the first procedure.
			for _, s := range b.gatherStatements(body, func(string) model.StatementKind {
				return model.KindComment
			}) {
				section.Body = append(section.Body, s)
			}
			body = nil
			return
		}
		current.Body = b.buildBody(body)
		section.Procedures = append(section.Procedures, current)
		current = nil
		body = nil
	}

	for _, rl := range lines {
		if !rl.indented() && !rl.isEmpty() && !rl.isContinuation() && !strings.HasPrefix(rl.first(), "#") {
			flush()
			current = &model.Procedure{Header: b.statement(model.KindComment, rl)}
			continue
		}
		body = append(body, rl)
	}
	flush()
}

// buildBody assembles a procedure body: statements plus nested blocks,
// matched by their FOR/WHILE/IF/TRY ... END markers.
func (b *builder) buildBody(lines []*rawLine) []model.Node {
	stmts := b.gatherStatements(lines, classifyBodyStatement)

	root := make([]model.Node, 0, len(stmts))
	bodies := []*[]model.Node{&root}
	var open []*model.Block

	appendNode := func(n model.Node) {
		top := bodies[len(bodies)-1]
		*top = append(*top, n)
	}

	for _, s := range stmts {
		first := s.Name()
		switch {
		case s.Kind == model.KindBlockHeader && !branchMarkers[first]:
			block := &model.Block{Kind: blockMarkers[first], Header: s}
			appendNode(block)
			open = append(open, block)
			bodies = append(bodies, &block.Body)
		case s.Kind == model.KindBlockHeader:
			if len(open) == 0 {
				err := diagnostics.NewDanglingBranchError(first, s.Span)
				s.Errors = append(s.Errors, err)
				b.diags.Push(err)
				appendNode(s)
				continue
			}
			top := open[len(open)-1]
			branch := &model.Branch{Header: s}
			top.Branches = append(top.Branches, branch)
			bodies[len(bodies)-1] = &branch.Body
		case s.Kind == model.KindEnd:
			if len(open) == 0 {
				err := diagnostics.NewDanglingEndError(s.Span)
				s.Errors = append(s.Errors, err)
				b.diags.Push(err)
				appendNode(s)
				continue
			}
			top := open[len(open)-1]
			top.End = s
			open = open[:len(open)-1]
			bodies = bodies[:len(bodies)-1]
		default:
			appendNode(s)
		}
	}

	for _, block := range open {
		err := diagnostics.NewUnclosedBlockError(block.Kind.String(), block.Header.Span)
		block.Header.Errors = append(block.Header.Errors, err)
		b.diags.Push(err)
	}
	return root
}

// gatherStatements folds continuation lines into their owning statements and
// classifies each statement via the supplied function.
func (b *builder) gatherStatements(lines []*rawLine, classify func(first string) model.StatementKind) []*model.Statement {
	var stmts []*model.Statement

	for i := 0; i < len(lines); i++ {
		rl := lines[i]
		switch {
		case rl.isEmpty():
			stmts = append(stmts, b.statement(model.KindEmpty, rl))
		case rl.isContinuation():
			if len(stmts) == 0 || !continuable(stmts[len(stmts)-1].Kind) {
				s := b.statement(model.KindCall, rl)
				err := diagnostics.NewOrphanContinuationError(s.Span)
				s.Errors = append(s.Errors, err)
				b.diags.Push(err)
				stmts = append(stmts, s)
				continue
			}
			prev := stmts[len(stmts)-1]
			prev.Lines = append(prev.Lines, rl.line)
			prev.Span.End = rl.end
		case strings.HasPrefix(rl.first(), "#"):
			stmts = append(stmts, b.statement(model.KindComment, rl))
		default:
			stmts = append(stmts, b.statement(classify(rl.first()), rl))
		}
	}
	return stmts
}

// continuable reports whether a statement kind accepts continuation lines.
func continuable(kind model.StatementKind) bool {
	switch kind {
	case model.KindEmpty, model.KindComment, model.KindEnd:
		return false
	default:
		return true
	}
}

// statement wraps a single raw line into a statement of the given kind.
func (b *builder) statement(kind model.StatementKind, rl *rawLine) *model.Statement {
	s := model.NewStatement(kind, rl.line)
	s.Span = diagnostics.NewSpan(rl.start, rl.end)
	return s
}
