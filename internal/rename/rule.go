package rename

// CaseMode selects a whole-name case conversion.
type CaseMode string

const (
	CaseNone  CaseMode = ""
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseTitle CaseMode = "title"
)

// Rule is the declarative description of one transformation pass. Every
// stage is optional; an empty field means the stage is skipped. Stages
// always execute in the fixed order replace → regex → custom transform →
// prefix → suffix → case. A non-empty Template replaces the output of
// the whole chain (see Pipeline.Apply).
type Rule struct {
	// Replace stage: literal substring substitution, all occurrences.
	Find        string
	ReplaceWith string

	// Regex stage: pattern substitution with \1-style back-references in
	// the replacement, all occurrences.
	Pattern        string
	PatternReplace string

	// Custom transform stage: one of date, datetime, counter, random,
	// hash, parsedate.
	Transform string

	// Prefix/suffix stages. The suffix is inserted before the extension
	// separator when one exists.
	Prefix string
	Suffix string

	// Case stage, applied to the whole name including the extension.
	Case CaseMode

	// Template stage. When set, its expansion becomes the final name
	// regardless of what the other stages produced.
	Template string
}

// Empty reports whether the rule carries no stages at all.
func (r Rule) Empty() bool {
	return r.Find == "" && r.Pattern == "" && r.Transform == "" &&
		r.Prefix == "" && r.Suffix == "" && r.Case == CaseNone && r.Template == ""
}

// ValidCaseMode reports whether s names a supported case conversion.
func ValidCaseMode(s string) bool {
	switch CaseMode(s) {
	case CaseNone, CaseUpper, CaseLower, CaseTitle:
		return true
	}
	return false
}
