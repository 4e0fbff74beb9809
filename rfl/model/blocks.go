package model

import "strings"

// Node is a statement or a nested block inside a section or procedure body.
type Node interface {
	node()
	// RenderTo appends the node's source text to the builder.
	RenderTo(sb *strings.Builder)
}

func (s *Statement) node() {}

// RenderTo appends the statement's source text to the builder.
func (s *Statement) RenderTo(sb *strings.Builder) {
	sb.WriteString(s.Render())
}

// BlockKind identifies the kind of a nested block.
type BlockKind int

const (
	// BlockFor is a FOR loop.
	BlockFor BlockKind = iota
	// BlockWhile is a WHILE loop.
	BlockWhile
	// BlockIf is an IF branch (including ELSE IF and ELSE branches).
	BlockIf
	// BlockTry is a TRY branch (including EXCEPT, ELSE and FINALLY branches).
	BlockTry
	// BlockGroup is a GROUP block.
	BlockGroup
)

// String returns a readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockFor:
		return "FOR"
	case BlockWhile:
		return "WHILE"
	case BlockIf:
		return "IF"
	case BlockTry:
		return "TRY"
	case BlockGroup:
		return "GROUP"
	default:
		return "unknown"
	}
}

// Block is a nested scope: a loop, conditional branch chain, or
// try/except chain. The header and end statements belong to the enclosing
// scope; each branch body is an independent scope for auto-width computation.
type Block struct {
	Kind BlockKind
	// Header is the FOR/WHILE/IF/TRY header statement.
	Header *Statement
	// Body holds the statements and nested blocks of the first branch.
	Body []Node
	// Branches holds the ELSE IF / ELSE / EXCEPT / FINALLY branches, in order.
	Branches []*Branch
	// End is the END marker statement, nil when the block is unclosed.
	End *Statement
}

func (b *Block) node() {}

// Branch is one ELSE IF / ELSE / EXCEPT / FINALLY arm of a block.
type Branch struct {
	// Header is the branch marker statement (ELSE, ELSE IF, EXCEPT, FINALLY).
	Header *Statement
	Body   []Node
}

// RenderTo appends the block's source text to the builder.
func (b *Block) RenderTo(sb *strings.Builder) {
	if b.Header != nil {
		sb.WriteString(b.Header.Render())
	}
	for _, n := range b.Body {
		n.RenderTo(sb)
	}
	for _, br := range b.Branches {
		if br.Header != nil {
			sb.WriteString(br.Header.Render())
		}
		for _, n := range br.Body {
			n.RenderTo(sb)
		}
	}
	if b.End != nil {
		sb.WriteString(b.End.Render())
	}
}

// Procedure is a named test case or keyword: a header line holding the name
// and a body of statements and blocks.
type Procedure struct {
	Header *Statement
	Body   []Node
}

// Name returns the procedure name.
func (p *Procedure) Name() string {
	if p.Header == nil {
		return ""
	}
	return p.Header.Name()
}

// RenderTo appends the procedure's source text to the builder.
func (p *Procedure) RenderTo(sb *strings.Builder) {
	if p.Header != nil {
		sb.WriteString(p.Header.Render())
	}
	for _, n := range p.Body {
		n.RenderTo(sb)
	}
}

// SectionKind identifies a top-level section of a robot file.
type SectionKind int

const (
	// SectionSettings is the `*** Settings ***` section.
	SectionSettings SectionKind = iota
	// SectionVariables is the `*** Variables ***` section.
	SectionVariables
	// SectionTestCases is the `*** Test Cases ***` section.
	SectionTestCases
	// SectionTasks is the `*** Tasks ***` section.
	SectionTasks
	// SectionKeywords is the `*** Keywords ***` section.
	SectionKeywords
	// SectionComments is the `*** Comments ***` section.
	SectionComments
)

// String returns the canonical section header name.
func (k SectionKind) String() string {
	switch k {
	case SectionSettings:
		return "Settings"
	case SectionVariables:
		return "Variables"
	case SectionTestCases:
		return "Test Cases"
	case SectionTasks:
		return "Tasks"
	case SectionKeywords:
		return "Keywords"
	case SectionComments:
		return "Comments"
	default:
		return "unknown"
	}
}

// HasProcedures reports whether the section body is organized into named
// procedures (test cases, tasks, keywords) rather than flat statements.
func (k SectionKind) HasProcedures() bool {
	switch k {
	case SectionTestCases, SectionTasks, SectionKeywords:
		return true
	default:
		return false
	}
}

// Section is a top-level file section: its `*** ... ***` header statement
// plus either flat statements (settings, variables, comments) or procedures.
type Section struct {
	Kind       SectionKind
	Header     *Statement
	Body       []Node
	Procedures []*Procedure
}

// RenderTo appends the section's source text to the builder.
func (s *Section) RenderTo(sb *strings.Builder) {
	if s.Header != nil {
		sb.WriteString(s.Header.Render())
	}
	for _, n := range s.Body {
		n.RenderTo(sb)
	}
	for _, p := range s.Procedures {
		p.RenderTo(sb)
	}
}

// File is a fully parsed robot source file.
type File struct {
	// Name is the file path, used for diagnostics.
	Name string
	// Source is the original text the file was parsed from.
	Source   string
	Sections []*Section
}

// Render joins the whole document back into source text.
func (f *File) Render() string {
	var sb strings.Builder
	for _, s := range f.Sections {
		s.RenderTo(&sb)
	}
	return sb.String()
}
