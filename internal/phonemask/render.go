package phonemask

import (
	"strings"
	"unicode/utf8"
)

// Placeholder consumes one digit per occurrence in a format pattern.
const Placeholder = '.'

// RenderOptions zero value is the default: "+" shown, auto-format on,
// overflow digits dropped.
type RenderOptions struct {
	DisableCountryCode bool `json:"disable_country_code"`
	DisableAutoFormat  bool `json:"disable_auto_format"`
	EnableLongNumbers  bool `json:"enable_long_numbers"`
}

// Render lays digits over pattern. Literal pattern characters are copied,
// each Placeholder takes the next digit, and rendering stops as soon as the
// digits run out, so trailing literals are never emitted. An opened "(" with
// no ")" in the output gets one closing paren appended.
func Render(digits, pattern string, opts RenderOptions) string {
	if digits == "" {
		if opts.DisableCountryCode {
			return ""
		}
		return "+"
	}

	if utf8.RuneCountInString(digits) < 2 || pattern == "" || opts.DisableAutoFormat {
		if opts.DisableCountryCode {
			return digits
		}
		return "+" + digits
	}

	remaining := []rune(digits)
	var b strings.Builder
	b.Grow(len(pattern) + 1)
	for _, ch := range pattern {
		if len(remaining) == 0 {
			break
		}
		if ch != Placeholder {
			b.WriteRune(ch)
			continue
		}
		b.WriteRune(remaining[0])
		remaining = remaining[1:]
	}

	if opts.EnableLongNumbers && len(remaining) > 0 {
		b.WriteString(string(remaining))
	}

	out := b.String()
	if strings.Contains(out, "(") && !strings.Contains(out, ")") {
		out += ")"
	}
	return out
}
