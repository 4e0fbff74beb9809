package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarketSquare/robotfmt/rfl/model"
)

func TestParseRendersBackByteForByte(t *testing.T) {
	sources := []string{
		"",
		"*** Settings ***\nLibrary    Collections\n",
		"*** Test Cases ***\r\nMy Test\r\n    Log    message\r\n",
		"*** Keywords ***\nK\n    Log    x   \n\t\n    Log    y",
		"# leading comment before any section\n\n*** Variables ***\n${X}    1\n",
		"*** Keywords ***\nK\n    Keyword    one\n    ...    two\n    ...\n",
		"*** Keywords ***\nK\n    FOR    ${i}    IN    @{items}\n        Log    ${i}\n    END\n",
	}
	for _, src := range sources {
		file, _ := ParseString(src)
		assert.Equal(t, src, file.Render(), "round trip failed for %q", src)
	}
}

func TestParseSplitsSections(t *testing.T) {
	src := "*** Settings ***\n" +
		"Library    Collections\n" +
		"\n" +
		"*** Variables ***\n" +
		"${X}    1\n" +
		"\n" +
		"*** Test Cases ***\n" +
		"My Test\n" +
		"    Log    hi\n"
	file, diags := ParseString(src)
	assert.False(t, diags.HasErrors())
	require.Len(t, file.Sections, 3)
	assert.Equal(t, model.SectionSettings, file.Sections[0].Kind)
	assert.Equal(t, model.SectionVariables, file.Sections[1].Kind)
	assert.Equal(t, model.SectionTestCases, file.Sections[2].Kind)
}

func TestParseSectionHeaderVariants(t *testing.T) {
	for _, header := range []string{
		"*** Settings ***",
		"***Settings***",
		"*** settings ***",
		"*** Setting ***",
		"** Settings",
	} {
		file, _ := ParseString(header + "\n")
		require.Len(t, file.Sections, 1, "header %q", header)
		assert.Equal(t, model.SectionSettings, file.Sections[0].Kind, "header %q", header)
	}
}

func TestParseContentBeforeFirstSectionIsPreserved(t *testing.T) {
	src := "# a stray comment\nsome stray text\n\n*** Settings ***\n"
	file, _ := ParseString(src)
	require.Len(t, file.Sections, 2)
	assert.Equal(t, model.SectionComments, file.Sections[0].Kind)
	assert.Nil(t, file.Sections[0].Header)
	assert.Equal(t, src, file.Render())
}

func TestParseGroupsProcedures(t *testing.T) {
	src := "*** Keywords ***\n" +
		"First Keyword\n" +
		"    Log    one\n" +
		"\n" +
		"Second Keyword\n" +
		"    [Arguments]    ${a}\n" +
		"    Log    two\n"
	file, _ := ParseString(src)
	require.Len(t, file.Sections, 1)
	procs := file.Sections[0].Procedures
	require.Len(t, procs, 2)
	assert.Equal(t, "First Keyword", procs[0].Name())
	assert.Equal(t, "Second Keyword", procs[1].Name())

	// The blank line between procedures belongs to the first one.
	require.Len(t, procs[0].Body, 2)
	stmt, ok := procs[1].Body[0].(*model.Statement)
	require.True(t, ok)
	assert.Equal(t, model.KindMultiSetting, stmt.Kind)
}

func TestParseClassifiesBodyStatements(t *testing.T) {
	src := "*** Test Cases ***\n" +
		"My Test\n" +
		"    [Documentation]    doc\n" +
		"    [Tags]    smoke\n" +
		"    [Timeout]    1 min\n" +
		"    [Template]    Some Template\n" +
		"    [Setup]    Open\n" +
		"    # note\n" +
		"    Log    hi\n"
	file, _ := ParseString(src)
	body := file.Sections[0].Procedures[0].Body

	kinds := make([]model.StatementKind, 0, len(body))
	for _, n := range body {
		kinds = append(kinds, n.(*model.Statement).Kind)
	}
	assert.Equal(t, []model.StatementKind{
		model.KindDocumentation,
		model.KindTagList,
		model.KindSingleSetting,
		model.KindTemplate,
		model.KindMultiSetting,
		model.KindComment,
		model.KindCall,
	}, kinds)
}

func TestParseFoldsContinuationLines(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    Keyword    one\n" +
		"    ...    two\n" +
		"    ...    three\n"
	file, diags := ParseString(src)
	assert.False(t, diags.HasErrors())

	body := file.Sections[0].Procedures[0].Body
	require.Len(t, body, 1)
	stmt := body[0].(*model.Statement)
	assert.Len(t, stmt.Lines, 3)
	assert.True(t, stmt.Lines[1].HasContinuation())
}

func TestParseOrphanContinuationIsAnError(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    ...    orphan\n"
	file, diags := ParseString(src)
	assert.True(t, diags.HasErrors())

	body := file.Sections[0].Procedures[0].Body
	require.Len(t, body, 1)
	assert.True(t, body[0].(*model.Statement).HasErrors())
}

func TestParseNestedBlocks(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    FOR    ${i}    IN RANGE    10\n" +
		"        IF    ${i} > 5\n" +
		"            Log    big\n" +
		"        ELSE IF    ${i} > 2\n" +
		"            Log    medium\n" +
		"        ELSE\n" +
		"            Log    small\n" +
		"        END\n" +
		"    END\n"
	file, diags := ParseString(src)
	assert.False(t, diags.HasErrors())

	body := file.Sections[0].Procedures[0].Body
	require.Len(t, body, 1)
	loop := body[0].(*model.Block)
	assert.Equal(t, model.BlockFor, loop.Kind)
	require.NotNil(t, loop.End)

	require.Len(t, loop.Body, 1)
	cond := loop.Body[0].(*model.Block)
	assert.Equal(t, model.BlockIf, cond.Kind)
	require.Len(t, cond.Branches, 2)
	assert.Equal(t, "ELSE IF", cond.Branches[0].Header.Name())
	assert.Equal(t, "ELSE", cond.Branches[1].Header.Name())
	require.Len(t, cond.Branches[1].Body, 1)
	require.NotNil(t, cond.End)
	assert.Equal(t, src, file.Render())
}

func TestParseTryExceptFinally(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    TRY\n" +
		"        Risky Call\n" +
		"    EXCEPT    Some error\n" +
		"        Recover\n" +
		"    FINALLY\n" +
		"        Cleanup\n" +
		"    END\n"
	file, diags := ParseString(src)
	assert.False(t, diags.HasErrors())

	block := file.Sections[0].Procedures[0].Body[0].(*model.Block)
	assert.Equal(t, model.BlockTry, block.Kind)
	require.Len(t, block.Branches, 2)
	assert.Equal(t, "EXCEPT", block.Branches[0].Header.Name())
	assert.Equal(t, "FINALLY", block.Branches[1].Header.Name())
}

func TestParseUnclosedBlockIsAnError(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    FOR    ${i}    IN RANGE    10\n" +
		"        Log    ${i}\n"
	file, diags := ParseString(src)
	assert.True(t, diags.HasErrors())

	block := file.Sections[0].Procedures[0].Body[0].(*model.Block)
	assert.True(t, block.Header.HasErrors())
	assert.Nil(t, block.End)
	assert.Equal(t, src, file.Render())
}

func TestParseDanglingEndIsAnError(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    Log    hi\n" +
		"    END\n"
	file, diags := ParseString(src)
	assert.True(t, diags.HasErrors())

	body := file.Sections[0].Procedures[0].Body
	require.Len(t, body, 2)
	assert.True(t, body[1].(*model.Statement).HasErrors())
}

func TestParseDanglingBranchIsAnError(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    ELSE\n"
	file, diags := ParseString(src)
	assert.True(t, diags.HasErrors())
	assert.Equal(t, src, file.Render())
}

func TestParseCommentCells(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    Log    hi    # inline comment\n"
	file, _ := ParseString(src)
	stmt := file.Sections[0].Procedures[0].Body[0].(*model.Statement)

	cells := stmt.Lines[0].DataCells()
	require.Len(t, cells, 3)
	assert.Equal(t, model.CellComment, cells[2].Kind)
	assert.Equal(t, "# inline comment", cells[2].Text)
}

func TestParseTabSeparators(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"\tLog\thi\n"
	file, _ := ParseString(src)
	stmt := file.Sections[0].Procedures[0].Body[0].(*model.Statement)

	cells := stmt.Lines[0].DataCells()
	require.Len(t, cells, 2)
	assert.Equal(t, "Log", cells[0].Text)
	assert.Equal(t, "hi", cells[1].Text)
	assert.Equal(t, src, file.Render())
}

func TestParseSingleSpaceJoinsWords(t *testing.T) {
	src := "*** Keywords ***\n" +
		"Compound Name Keyword\n" +
		"    Run Keyword And Ignore Error    Some Keyword\n"
	file, _ := ParseString(src)
	proc := file.Sections[0].Procedures[0]
	assert.Equal(t, "Compound Name Keyword", proc.Name())

	stmt := proc.Body[0].(*model.Statement)
	cells := stmt.Lines[0].DataCells()
	require.Len(t, cells, 2)
	assert.Equal(t, "Run Keyword And Ignore Error", cells[0].Text)
}

func TestParseStatementSpansCoverTheirSource(t *testing.T) {
	src := "*** Keywords ***\n" +
		"K\n" +
		"    Log    hi\n"
	file, _ := ParseString(src)
	stmt := file.Sections[0].Procedures[0].Body[0].(*model.Statement)
	assert.Equal(t, "    Log    hi\n", src[stmt.Span.Start:stmt.Span.End])
}
