package formatting

import (
	"path"
	"strings"

	"github.com/MarketSquare/robotfmt/rfl/model"
)

// SkipConfig decides which statements and sections the formatter must leave
// untouched. A zero SkipConfig skips nothing.
type SkipConfig struct {
	// Documentation skips documentation statements.
	Documentation bool
	// ReturnValues keeps the original spacing of assignment target cells.
	ReturnValues bool
	// Keywords holds glob patterns of keyword call names to skip.
	Keywords []string
	// Settings holds names of settings to skip (e.g. "tags", "timeout").
	Settings []string
	// Sections holds section names to skip (e.g. "settings", "variables").
	Sections []string
}

// SkipsStatement reports whether the statement must pass through unmodified.
func (s *SkipConfig) SkipsStatement(stmt *model.Statement) bool {
	if s == nil {
		return false
	}
	switch stmt.Kind {
	case model.KindDocumentation:
		return s.Documentation
	case model.KindTagList, model.KindSingleSetting, model.KindMultiSetting, model.KindTemplate:
		return s.skipsSetting(stmt.Name())
	case model.KindCall:
		return s.SkipsKeyword(stmt.Name())
	default:
		return false
	}
}

// SkipsKeyword reports whether a keyword call with the given name is skipped.
// Patterns match case-insensitively with `path.Match` globbing.
func (s *SkipConfig) SkipsKeyword(name string) bool {
	if s == nil {
		return false
	}
	normalized := normalizeSkipName(name)
	for _, pattern := range s.Keywords {
		if ok, err := path.Match(normalizeSkipName(pattern), normalized); err == nil && ok {
			return true
		}
	}
	return false
}

// SkipsSection reports whether a whole section is excluded from formatting.
func (s *SkipConfig) SkipsSection(kind model.SectionKind) bool {
	if s == nil {
		return false
	}
	name := normalizeSkipName(kind.String())
	for _, section := range s.Sections {
		if normalizeSkipName(section) == name {
			return true
		}
	}
	return false
}

// SkipsReturnValues reports whether assignment target cells keep their
// original spacing.
func (s *SkipConfig) SkipsReturnValues() bool {
	return s != nil && s.ReturnValues
}

// skipsSetting reports whether a named setting is skipped. Both the bracket
// form ("[Tags]") and the bare name ("tags") are accepted in configuration.
func (s *SkipConfig) skipsSetting(name string) bool {
	normalized := normalizeSkipName(name)
	for _, setting := range s.Settings {
		if normalizeSkipName(setting) == normalized {
			return true
		}
	}
	return false
}

// normalizeSkipName lowercases a name, collapses inner whitespace and strips
// the bracket form of settings.
func normalizeSkipName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.TrimPrefix(name, "[")
	name = strings.TrimSuffix(name, "]")
	return strings.Join(strings.Fields(name), " ")
}
