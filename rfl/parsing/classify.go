package parsing

import (
	"regexp"
	"strings"

	"github.com/MarketSquare/robotfmt/rfl/model"
)

// sectionHeaderRe matches `*** Settings ***` style section headers. The
// trailing stars and the plural `s` are both optional.
var sectionHeaderRe = regexp.MustCompile(`(?i)^\*+\s*(settings?|variables?|test cases?|tasks?|keywords?|comments?)\s*\**\s*$`)

// sectionKindOf returns the section kind for a header line.
func sectionKindOf(headerText string) (model.SectionKind, bool) {
	m := sectionHeaderRe.FindStringSubmatch(headerText)
	if m == nil {
		return 0, false
	}
	name := strings.ToLower(strings.TrimSuffix(m[1], "s"))
	switch name {
	case "setting":
		return model.SectionSettings, true
	case "variable":
		return model.SectionVariables, true
	case "test case":
		return model.SectionTestCases, true
	case "task":
		return model.SectionTasks, true
	case "keyword":
		return model.SectionKeywords, true
	case "comment":
		return model.SectionComments, true
	}
	return 0, false
}

// suiteSettingKinds maps normalized Settings-section entry names to kinds.
var suiteSettingKinds = map[string]model.StatementKind{
	"documentation": model.KindDocumentation,
	"force tags":    model.KindTagList,
	"default tags":  model.KindTagList,
	"test tags":     model.KindTagList,
	"task tags":     model.KindTagList,
	"keyword tags":  model.KindTagList,
	"test timeout":  model.KindSingleSetting,
	"task timeout":  model.KindSingleSetting,
	"test template": model.KindTemplate,
	"task template": model.KindTemplate,
}

// bracketSettingKinds maps `[Name]` settings in procedure bodies to kinds.
var bracketSettingKinds = map[string]model.StatementKind{
	"[documentation]": model.KindDocumentation,
	"[tags]":          model.KindTagList,
	"[template]":      model.KindTemplate,
	"[timeout]":       model.KindSingleSetting,
}

// blockMarkers are the statements that open a nested block.
var blockMarkers = map[string]model.BlockKind{
	"FOR":   model.BlockFor,
	"WHILE": model.BlockWhile,
	"IF":    model.BlockIf,
	"TRY":   model.BlockTry,
	"GROUP": model.BlockGroup,
}

// branchMarkers are the statements that continue an open block.
var branchMarkers = map[string]bool{
	"ELSE":    true,
	"ELSE IF": true,
	"EXCEPT":  true,
	"FINALLY": true,
}

// normalizeName lowercases and collapses inner whitespace for name lookups.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// classifySuiteStatement classifies a flat statement of a Settings section.
func classifySuiteStatement(first string) model.StatementKind {
	if kind, ok := suiteSettingKinds[normalizeName(first)]; ok {
		return kind
	}
	return model.KindMultiSetting
}

// classifyBodyStatement classifies a statement inside a procedure body.
func classifyBodyStatement(first string) model.StatementKind {
	if _, ok := blockMarkers[first]; ok {
		return model.KindBlockHeader
	}
	if branchMarkers[first] {
		return model.KindBlockHeader
	}
	if first == "END" {
		return model.KindEnd
	}
	if strings.HasPrefix(first, "[") {
		if kind, ok := bracketSettingKinds[normalizeName(first)]; ok {
			return kind
		}
		return model.KindMultiSetting
	}
	if strings.HasPrefix(first, "#") {
		return model.KindComment
	}
	return model.KindCall
}
