// Package config loads robotfmt configuration from files, environment
// variables and defaults.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/MarketSquare/robotfmt/rfl/formatting"
)

// AppFs is the filesystem all CLI file access goes through. Tests swap it for
// an in-memory filesystem.
var AppFs = afero.NewOsFs()

// Config holds the application configuration as read from `.robotfmt.yaml`,
// the `ROBOTFMT_*` environment, and flag overrides.
type Config struct {
	Widths                  string
	AlignmentType           string
	HandleTooLong           string
	CompactOverflowLimit    int
	AlignComments           bool
	AlignSettingsSeparately bool
	PreserveAssignments     bool
	MinSeparatorWidth       int
	IndentUnit              int
	MaxLineLength           int

	SkipDocumentation bool
	SkipReturnValues  bool
	SkipKeywords      []string
	SkipSettings      []string
	SkipSections      []string
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".robotfmt")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "robotfmt"))

	// Set environment variable prefix
	viper.SetEnvPrefix("ROBOTFMT")
	viper.AutomaticEnv()

	setDefaults()

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Widths:                  viper.GetString("widths"),
		AlignmentType:           viper.GetString("alignment_type"),
		HandleTooLong:           viper.GetString("handle_too_long"),
		CompactOverflowLimit:    viper.GetInt("compact_overflow_limit"),
		AlignComments:           viper.GetBool("align_comments"),
		AlignSettingsSeparately: viper.GetBool("align_settings_separately"),
		PreserveAssignments:     viper.GetBool("preserve_assignments"),
		MinSeparatorWidth:       viper.GetInt("min_separator_width"),
		IndentUnit:              viper.GetInt("indent_unit"),
		MaxLineLength:           viper.GetInt("max_line_length"),
		SkipDocumentation:       viper.GetBool("skip.documentation"),
		SkipReturnValues:        viper.GetBool("skip.return_values"),
		SkipKeywords:            viper.GetStringSlice("skip.keywords"),
		SkipSettings:            viper.GetStringSlice("skip.settings"),
		SkipSections:            viper.GetStringSlice("skip.sections"),
	}
	return cfg, nil
}

// DefaultConfig returns the configuration robotfmt ships with.
func DefaultConfig() *Config {
	defaults := formatting.DefaultConfig()
	return &Config{
		AlignmentType:           defaults.AlignmentType.String(),
		HandleTooLong:           defaults.HandleTooLong.String(),
		CompactOverflowLimit:    defaults.CompactOverflowLimit,
		AlignSettingsSeparately: defaults.AlignSettingsSeparately,
		MinSeparatorWidth:       defaults.MinSeparator,
		IndentUnit:              defaults.IndentUnit,
		MaxLineLength:           defaults.MaxLineLength,
	}
}

// setDefaults registers the shipped defaults with viper.
func setDefaults() {
	d := DefaultConfig()
	viper.SetDefault("widths", d.Widths)
	viper.SetDefault("alignment_type", d.AlignmentType)
	viper.SetDefault("handle_too_long", d.HandleTooLong)
	viper.SetDefault("compact_overflow_limit", d.CompactOverflowLimit)
	viper.SetDefault("align_comments", d.AlignComments)
	viper.SetDefault("align_settings_separately", d.AlignSettingsSeparately)
	viper.SetDefault("preserve_assignments", d.PreserveAssignments)
	viper.SetDefault("min_separator_width", d.MinSeparatorWidth)
	viper.SetDefault("indent_unit", d.IndentUnit)
	viper.SetDefault("max_line_length", d.MaxLineLength)
	viper.SetDefault("skip.documentation", d.SkipDocumentation)
	viper.SetDefault("skip.return_values", d.SkipReturnValues)
	viper.SetDefault("skip.keywords", d.SkipKeywords)
	viper.SetDefault("skip.settings", d.SkipSettings)
	viper.SetDefault("skip.sections", d.SkipSections)
}

// ToFormatting translates the string-encoded configuration into the validated
// alignment configuration and skip rules. Invalid values are rejected here,
// before any file is touched.
func (c *Config) ToFormatting() (formatting.Config, *formatting.SkipConfig, error) {
	cfg := formatting.DefaultConfig()

	widths, err := formatting.ParseWidths(c.Widths)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Widths = widths

	cfg.AlignmentType, err = formatting.ParseAlignmentType(c.AlignmentType)
	if err != nil {
		return cfg, nil, err
	}
	cfg.HandleTooLong, err = formatting.ParseOverflowPolicy(c.HandleTooLong)
	if err != nil {
		return cfg, nil, err
	}

	cfg.CompactOverflowLimit = c.CompactOverflowLimit
	cfg.AlignComments = c.AlignComments
	cfg.AlignSettingsSeparately = c.AlignSettingsSeparately
	cfg.PreserveAssignments = c.PreserveAssignments
	cfg.MinSeparator = c.MinSeparatorWidth
	cfg.IndentUnit = c.IndentUnit
	cfg.MaxLineLength = c.MaxLineLength

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	skip := &formatting.SkipConfig{
		Documentation: c.SkipDocumentation,
		ReturnValues:  c.SkipReturnValues,
		Keywords:      c.SkipKeywords,
		Settings:      c.SkipSettings,
		Sections:      c.SkipSections,
	}
	return cfg, skip, nil
}

// SaveConfig writes the configuration to `.robotfmt.yaml` in the given
// directory (the working directory when dir is empty).
func SaveConfig(cfg *Config, dir string) (string, error) {
	content := fmt.Sprintf(`alignment_type: %s
handle_too_long: %s
compact_overflow_limit: %d
align_comments: %v
align_settings_separately: %v
preserve_assignments: %v
min_separator_width: %d
indent_unit: %d
max_line_length: %d
`,
		cfg.AlignmentType,
		cfg.HandleTooLong,
		cfg.CompactOverflowLimit,
		cfg.AlignComments,
		cfg.AlignSettingsSeparately,
		cfg.PreserveAssignments,
		cfg.MinSeparatorWidth,
		cfg.IndentUnit,
		cfg.MaxLineLength,
	)
	if cfg.Widths != "" {
		content = fmt.Sprintf("widths: %q\n%s", cfg.Widths, content)
	}

	path := filepath.Join(dir, ".robotfmt.yaml")
	if err := afero.WriteFile(AppFs, path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
