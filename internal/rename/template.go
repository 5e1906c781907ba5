package rename

import (
	"fmt"
	"regexp"
)

// templateVarRe finds {variable} placeholders in a template.
var templateVarRe = regexp.MustCompile(`\{([^}]+)\}`)

// expandTemplate resolves the template against the name the stage chain
// produced. Supported variables:
//
//	{basename}  the chain result without its extension
//	{extension} the chain result's extension, without the dot
//	{name}      the full chain result
//	{counter}   the template counter, zero-padded to three digits
//	{date}      today as YYYYMMDD
//	{datetime}  now as YYYYMMDD_HHMMSS
//	{random}    four random alphanumeric characters
//
// Unresolvable variables expand to the empty string.
func (p *Pipeline) expandTemplate(template, name string) string {
	base, ext := splitExt(name)

	// Substitution is a single pass over the template, so a substituted
	// value containing brace syntax is never expanded again. Each
	// variable resolves once per invocation; repeated placeholders share
	// the value, so {counter}{counter} renders one number twice.
	resolved := map[string]string{}
	return templateVarRe.ReplaceAllStringFunc(template, func(placeholder string) string {
		varName := placeholder[1 : len(placeholder)-1]
		if value, ok := resolved[varName]; ok {
			return value
		}

		var value string
		switch varName {
		case "basename":
			value = base
		case "extension", "ext":
			value = ext
		case "name":
			value = name
		case "counter":
			value = fmt.Sprintf("%03d", p.Counters.NextTemplate())
		case "date":
			value = p.Clock().Format("20060102")
		case "datetime":
			value = p.Clock().Format("20060102_150405")
		case "random":
			value = p.Rand(4)
		default:
			p.logger.Warn("unknown template variable", "variable", varName)
		}

		resolved[varName] = value
		return value
	})
}
