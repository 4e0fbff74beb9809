package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"negative width", func(c *Config) { c.Widths = []int{24, -1} }, "widths"},
		{"zero compact overflow limit", func(c *Config) { c.CompactOverflowLimit = 0 }, "compact_overflow_limit"},
		{"zero min separator", func(c *Config) { c.MinSeparator = 0 }, "min_separator_width"},
		{"zero indent unit", func(c *Config) { c.IndentUnit = 0 }, "indent_unit"},
		{"negative max line length", func(c *Config) { c.MaxLineLength = -1 }, "max_line_length"},
		{"unknown alignment type", func(c *Config) { c.AlignmentType = AlignmentType(9) }, "alignment_type"},
		{"unknown overflow policy", func(c *Config) { c.HandleTooLong = OverflowPolicy(9) }, "handle_too_long"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

func TestParseAlignmentType(t *testing.T) {
	at, err := ParseAlignmentType("auto")
	require.NoError(t, err)
	assert.Equal(t, AlignAuto, at)

	at, err = ParseAlignmentType("FIXED")
	require.NoError(t, err)
	assert.Equal(t, AlignFixed, at)

	_, err = ParseAlignmentType("sideways")
	assert.Error(t, err)
}

func TestParseOverflowPolicy(t *testing.T) {
	for name, want := range map[string]OverflowPolicy{
		"overflow":         PolicyOverflow,
		"compact_overflow": PolicyCompactOverflow,
		"ignore_line":      PolicyIgnoreLine,
		"ignore_rest":      PolicyIgnoreRest,
	} {
		got, err := ParseOverflowPolicy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "policy %q", name)
		assert.Equal(t, name, got.String())
	}
	_, err := ParseOverflowPolicy("explode")
	assert.Error(t, err)
}

func TestParseWidths(t *testing.T) {
	widths, err := ParseWidths("24, 28,20")
	require.NoError(t, err)
	assert.Equal(t, []int{24, 28, 20}, widths)

	widths, err = ParseWidths("")
	require.NoError(t, err)
	assert.Nil(t, widths)

	widths, err = ParseWidths("0")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, widths)

	_, err = ParseWidths("24,x")
	assert.Error(t, err)
	_, err = ParseWidths("-4")
	assert.Error(t, err)
}

func TestConfigCapFor(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0, cfg.capFor(0))

	cfg.Widths = []int{24, 28}
	assert.Equal(t, 24, cfg.capFor(0))
	assert.Equal(t, 28, cfg.capFor(1))
	assert.Equal(t, 28, cfg.capFor(5))
}
