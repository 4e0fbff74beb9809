package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarketSquare/robotfmt/rfl/formatting"
)

func TestDefaultConfigTranslatesToFormatting(t *testing.T) {
	cfg, skip, err := DefaultConfig().ToFormatting()
	require.NoError(t, err)
	assert.Equal(t, formatting.DefaultConfig(), cfg)
	assert.False(t, skip.SkipsReturnValues())
	assert.False(t, skip.SkipsKeyword("Log"))
}

func TestToFormattingParsesWidths(t *testing.T) {
	c := DefaultConfig()
	c.Widths = "24,28,20"
	c.AlignmentType = "fixed"

	cfg, _, err := c.ToFormatting()
	require.NoError(t, err)
	assert.Equal(t, []int{24, 28, 20}, cfg.Widths)
	assert.Equal(t, formatting.AlignFixed, cfg.AlignmentType)
}

func TestToFormattingRejectsBadValues(t *testing.T) {
	c := DefaultConfig()
	c.AlignmentType = "diagonal"
	_, _, err := c.ToFormatting()
	assert.Error(t, err)

	c = DefaultConfig()
	c.HandleTooLong = "panic"
	_, _, err = c.ToFormatting()
	assert.Error(t, err)

	c = DefaultConfig()
	c.Widths = "24,nope"
	_, _, err = c.ToFormatting()
	assert.Error(t, err)

	c = DefaultConfig()
	c.MinSeparatorWidth = 0
	_, _, err = c.ToFormatting()
	assert.Error(t, err)
}

func TestToFormattingCarriesSkipRules(t *testing.T) {
	c := DefaultConfig()
	c.SkipDocumentation = true
	c.SkipKeywords = []string{"Run Keyword*"}
	c.SkipSections = []string{"variables"}

	_, skip, err := c.ToFormatting()
	require.NoError(t, err)
	assert.True(t, skip.Documentation)
	assert.True(t, skip.SkipsKeyword("Run Keyword If"))
}

func TestSaveConfigWritesYAML(t *testing.T) {
	oldFs := AppFs
	AppFs = afero.NewMemMapFs()
	defer func() { AppFs = oldFs }()

	cfg := DefaultConfig()
	cfg.Widths = "24,28"
	path, err := SaveConfig(cfg, ".")
	require.NoError(t, err)

	content, err := afero.ReadFile(AppFs, path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `widths: "24,28"`)
	assert.Contains(t, string(content), "alignment_type: auto")
	assert.Contains(t, string(content), "handle_too_long: overflow")
	assert.Contains(t, string(content), "min_separator_width: 4")
}
