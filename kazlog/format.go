package kazlog

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports a mismatch between a template's positional
// placeholders and the arguments supplied to Format.
type FormatError struct {
	// Template is the original template string.
	Template string
	// Placeholder is the index of the offending placeholder.
	Placeholder int
	// NoArgument is true when the placeholder appears in the template
	// but no argument was supplied for it; false when an argument was
	// supplied but its placeholder is missing from the template.
	NoArgument bool
}

func (e *FormatError) Error() string {
	if e.NoArgument {
		return fmt.Sprintf("format: no argument for placeholder {%d} in %q", e.Placeholder, e.Template)
	}
	return fmt.Sprintf("format: placeholder {%d} not found in %q", e.Placeholder, e.Template)
}

// Format substitutes positional placeholders {0}, {1}, ... in template
// with the textual form of each argument, one argument per step. Only
// the first occurrence of each placeholder is replaced; placeholders are
// expected to appear at most once, in ascending order.
//
// A supplied argument whose placeholder is absent, or a placeholder left
// over after all arguments are consumed, yields a *FormatError and no
// output; a partially substituted string is never returned.
//
// There is no escaping mechanism for literal '{' or '}'.
func Format(template string, args ...any) (string, error) {
	out := template
	for i, arg := range args {
		token := "{" + strconv.Itoa(i) + "}"
		at := strings.Index(out, token)
		if at < 0 {
			return "", &FormatError{Template: template, Placeholder: i}
		}
		out = out[:at] + fmt.Sprintf("%v", arg) + out[at+len(token):]
	}
	// Placeholders ascend from 0 and appear at most once, so an
	// unconsumed placeholder is exactly {len(args)}.
	if strings.Contains(out, "{"+strconv.Itoa(len(args))+"}") {
		return "", &FormatError{Template: template, Placeholder: len(args), NoArgument: true}
	}
	return out, nil
}
