package bfcode

import "strings"

// Returns the text with all the recognized tags removed. Unterminated
// and unknown tags are kept as literal text, exactly like renderers
// treat them. Argument errors are returned as [*ArgumentError].
//
// Tags are removed regardless of whether a font would enable them.
func Strip(text string) (string, error) {
	if !MayContainTags(text) { return text, nil }

	var builder strings.Builder
	builder.Grow(len(text))
	index := 0
	for index < len(text) {
		next := strings.IndexByte(text[index : ], '[')
		if next == -1 {
			builder.WriteString(text[index : ])
			break
		}
		next += index
		builder.WriteString(text[index : next])

		_, end, err := ParseAt(text, next)
		if err != nil {
			if !IsRecoverable(err) { return "", err }
			builder.WriteByte('[')
			index = next + 1
		} else {
			index = end
		}
	}
	return builder.String(), nil
}
