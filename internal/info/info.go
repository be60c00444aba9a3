// Package info extracts the embedded documentation block from a model file.
package info

import (
	"regexp"
	"strings"
)

// infoRe matches the first documentation block. Case-insensitive, and the
// block may span any number of lines.
var infoRe = regexp.MustCompile(`(?is)<info><!\[CDATA\[(.*?)\]\]></info>`)

// Extract returns the trimmed inner text of the model's documentation block,
// or "" when the file carries none. An absent block is not an error; callers
// render a placeholder instead.
func Extract(text string) string {
	m := infoRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Sanitize replaces byte sequences that are not valid UTF-8 with the
// replacement character, so one corrupt model file cannot abort a build.
func Sanitize(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}
