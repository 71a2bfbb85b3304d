package llm

import (
	"encoding/json"
	"strings"
)

// StripFences removes a single leading markdown code fence (with or without a
// language tag) and a single trailing fence from raw, then trims whitespace.
// Models wrap JSON output in fences despite instructions not to; anything
// that is not fenced passes through unchanged.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = stripLangTag(s[3:])
	}
	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}

// stripLangTag drops a language tag directly after an opening fence: a short
// run of tag characters ending at whitespace or at the start of a JSON value.
func stripLangTag(s string) string {
	i := 0
	for i < len(s) && i < 16 && isTagChar(s[i]) {
		i++
	}
	if i == 0 {
		return s
	}
	if i == len(s) {
		return ""
	}
	switch s[i] {
	case '\n', '\r', ' ', '\t', '{', '[', '"':
		return s[i:]
	}
	return s
}

func isTagChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-' || c == '+'
}

// DecodeJSON strips fences from raw model output and unmarshals the result
// into v. A successful parse is accepted as-is; missing keys are left at
// their zero values.
func DecodeJSON(raw string, v any) error {
	return json.Unmarshal([]byte(StripFences(raw)), v)
}
