package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarketSquare/robotfmt/rfl/model"
)

func TestSkipConfigNilSkipsNothing(t *testing.T) {
	var skip *SkipConfig
	assert.False(t, skip.SkipsKeyword("Anything"))
	assert.False(t, skip.SkipsSection(model.SectionSettings))
	assert.False(t, skip.SkipsReturnValues())
	assert.False(t, skip.SkipsStatement(kindStmt(model.KindCall, "Log", "x")))
}

func TestSkipKeywordsGlobMatching(t *testing.T) {
	skip := &SkipConfig{Keywords: []string{"Run Keyword*", "sleep"}}
	assert.True(t, skip.SkipsKeyword("Run Keyword If"))
	assert.True(t, skip.SkipsKeyword("run keyword and ignore error"))
	assert.True(t, skip.SkipsKeyword("Sleep"))
	assert.False(t, skip.SkipsKeyword("Log"))
}

func TestSkipSettingsAcceptBracketAndBareNames(t *testing.T) {
	skip := &SkipConfig{Settings: []string{"[Tags]", "timeout"}}
	assert.True(t, skip.SkipsStatement(kindStmt(model.KindTagList, "[Tags]", "smoke")))
	assert.True(t, skip.SkipsStatement(kindStmt(model.KindSingleSetting, "[Timeout]", "1 min")))
	assert.False(t, skip.SkipsStatement(kindStmt(model.KindMultiSetting, "[Setup]", "Open")))
}

func TestSkipSuiteSettingNamesNormalizeWhitespace(t *testing.T) {
	skip := &SkipConfig{Settings: []string{"force  tags"}}
	assert.True(t, skip.SkipsStatement(kindStmt(model.KindTagList, "Force Tags", "smoke")))
}

func TestSkipDocumentation(t *testing.T) {
	skip := &SkipConfig{Documentation: true}
	assert.True(t, skip.SkipsStatement(kindStmt(model.KindDocumentation, "[Documentation]", "text")))
	assert.False(t, skip.SkipsStatement(kindStmt(model.KindCall, "Log", "x")))
}

func TestSkipSections(t *testing.T) {
	skip := &SkipConfig{Sections: []string{"Settings", "test cases"}}
	assert.True(t, skip.SkipsSection(model.SectionSettings))
	assert.True(t, skip.SkipsSection(model.SectionTestCases))
	assert.False(t, skip.SkipsSection(model.SectionKeywords))
}
