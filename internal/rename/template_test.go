package rename

import "testing"

func TestExpandTemplateVariables(t *testing.T) {
	tests := []struct {
		name     string
		template string
		in       string
		want     string
	}{
		{"basename and extension", "{basename}_new.{extension}", "old.txt", "old_new.txt"},
		{"ext alias", "{basename}.{ext}", "file.mkv", "file.mkv"},
		{"full name", "copy of {name}", "a.txt", "copy of a.txt"},
		{"date", "{basename}_{date}.{extension}", "f.jpg", "f_20240315.jpg"},
		{"datetime", "{datetime}.{extension}", "f.jpg", "20240315_103045.jpg"},
		{"random", "{basename}_{random}.{extension}", "f.jpg", "f_abcd.jpg"},
		{"unknown variable becomes empty", "{basename}{nope}.{extension}", "f.jpg", "f.jpg"},
		{"no variables is literal", "fixed-name.txt", "anything.mkv", "fixed-name.txt"},
		{"no extension on input", "{basename}-{extension}-end", "README", "README--end"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPipeline(t)
			if got := p.Apply(tc.in, Rule{Template: tc.template}, ""); got != tc.want {
				t.Errorf("template %q on %q = %q, want %q", tc.template, tc.in, got, tc.want)
			}
		})
	}
}

func TestTemplatePlaceholderSyntaxInNameStaysLiteral(t *testing.T) {
	p := testPipeline(t)

	// A chain result whose basename happens to contain brace syntax must
	// pass through verbatim, not get expanded as a variable.
	got := p.Apply("a{extension}b.txt", Rule{Template: "{basename}.{extension}"}, "")
	if got != "a{extension}b.txt" {
		t.Errorf("template over brace-bearing name = %q, want %q", got, "a{extension}b.txt")
	}

	got = p.Apply("x{counter}y.txt", Rule{Template: "{basename}_{counter}.{extension}"}, "")
	if got != "x{counter}y_001.txt" {
		t.Errorf("template over counter-bearing name = %q, want %q", got, "x{counter}y_001.txt")
	}
}

func TestTemplateCounterIncrementsPerInvocation(t *testing.T) {
	p := testPipeline(t)
	rule := Rule{Template: "{counter}.{extension}"}

	if got := p.Apply("a.txt", rule, ""); got != "001.txt" {
		t.Errorf("first template counter = %q, want %q", got, "001.txt")
	}
	if got := p.Apply("b.txt", rule, ""); got != "002.txt" {
		t.Errorf("second template counter = %q, want %q", got, "002.txt")
	}
}

func TestTemplateRepeatedCounterSharesValue(t *testing.T) {
	p := testPipeline(t)

	// A repeated placeholder resolves once per invocation, not once per
	// occurrence.
	got := p.Apply("a.txt", Rule{Template: "{counter}_{counter}.{extension}"}, "")
	if got != "001_001.txt" {
		t.Errorf("repeated counter template = %q, want %q", got, "001_001.txt")
	}
}
