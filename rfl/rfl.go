// Package rfl provides the main API for working with robot source files.
package rfl

import (
	"github.com/MarketSquare/robotfmt/rfl/diagnostics"
	"github.com/MarketSquare/robotfmt/rfl/formatting"
	"github.com/MarketSquare/robotfmt/rfl/model"
	"github.com/MarketSquare/robotfmt/rfl/parsing"
)

// Re-export key types for convenience.
type (
	File        = model.File
	Statement   = model.Statement
	Config      = formatting.Config
	SkipConfig  = formatting.SkipConfig
	Diagnostics = diagnostics.Collection
)

// DefaultConfig returns the default alignment configuration.
func DefaultConfig() Config {
	return formatting.DefaultConfig()
}

// Parse reads robot source text into the document model. Parse problems are
// collected per statement rather than aborting the parse.
func Parse(filename, source string) (*File, *Diagnostics) {
	return parsing.Parse(filename, source)
}

// Format parses the source, aligns it with the given configuration, and
// renders it back to text. Statements with parse errors pass through
// unmodified. The returned diagnostics describe those parse problems.
func Format(filename, source string, cfg Config, skip *SkipConfig) (string, *Diagnostics, error) {
	aligner, err := formatting.NewAligner(cfg, skip)
	if err != nil {
		return "", nil, err
	}
	file, diags := parsing.Parse(filename, source)
	aligner.FormatFile(file)
	return file.Render(), diags, nil
}
