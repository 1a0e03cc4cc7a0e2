package convert

import (
	"regexp"
	"strings"
)

// sectionSeparator delimits trainer and encounter sections.
const sectionSeparator = "#-------------------------------"

var blockHeader = regexp.MustCompile(`^\[(\d+)\]`)

type field struct {
	key   string
	value string
}

// block is one [id] section of Key=Value lines.
type block struct {
	id     int
	fields []field
}

// normalizeNewlines drops carriage returns so no record carries them.
func normalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// parseBlocks reads [id] headed sections. Lines before the first header,
// comment lines and lines without '=' are ignored.
func parseBlocks(content string) []block {
	var blocks []block
	var current *block

	for _, line := range strings.Split(normalizeNewlines(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m := blockHeader.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{id: atoi(m[1])})
			current = &blocks[len(blocks)-1]
			continue
		}
		if current == nil {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		current.fields = append(current.fields, field{key: strings.TrimSpace(key), value: strings.TrimSpace(value)})
	}
	return blocks
}

// splitSections splits content on separator lines and returns the
// non-empty, trimmed lines of every section.
func splitSections(content string, keepComments bool) [][]string {
	var sections [][]string
	for _, raw := range strings.Split(normalizeNewlines(content), sectionSeparator) {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !keepComments && strings.HasPrefix(line, "#") {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) > 0 {
			sections = append(sections, lines)
		}
	}
	return sections
}
