package helpchunk

import "strings"

// Section is a heading line together with the text that follows it up to
// the next heading line.
type Section struct {
	// Heading is the heading line without its line terminator.
	Heading string `json:"heading"`

	// Body is everything after the heading line, starting with the newline
	// that ends the heading, up to the start of the next heading line.
	Body string `json:"body"`
}

// Level returns the number of leading '#' characters of the heading.
func (s Section) Level() int {
	return len(s.Heading) - len(strings.TrimLeft(s.Heading, "#"))
}

// IsHeading reports whether line is an ATX heading: one or more '#'
// characters, a whitespace character and at least one more character.
func IsHeading(line string) bool {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) {
		return false
	}
	switch line[n] {
	case ' ', '\t', '\f', '\r':
	default:
		return false
	}
	return len(line) > n+1
}

// SplitSections partitions text at heading lines.
// The preamble is the text before the first heading (the whole text when
// there are no headings). Concatenating the preamble and each section's
// Heading and Body in order reproduces text exactly.
func SplitSections(text string) (preamble string, sections []Section) {
	type boundary struct{ start, headingEnd int }

	var bounds []boundary
	pos := 0
	for {
		lineEnd := len(text)
		if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
			lineEnd = pos + i
		}
		if IsHeading(text[pos:lineEnd]) {
			bounds = append(bounds, boundary{start: pos, headingEnd: lineEnd})
		}
		if lineEnd == len(text) {
			break
		}
		pos = lineEnd + 1
	}

	if len(bounds) == 0 {
		return text, nil
	}

	sections = make([]Section, 0, len(bounds))
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1].start
		}
		sections = append(sections, Section{
			Heading: text[b.start:b.headingEnd],
			Body:    text[b.headingEnd:end],
		})
	}

	return text[:bounds[0].start], sections
}
