package pkg

import "strings"

// ColumnSeparator is the gap between side by side blocks.
var ColumnSeparator = strings.Repeat(" ", 10)

// JoinColumns - places multi-line blocks next to each other, line by line.
// Output has as many lines as the shortest block.
func JoinColumns(separator string, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}

	split := make([][]string, len(blocks))
	rows := -1
	for i, block := range blocks {
		split[i] = strings.Split(block, "\n")
		if rows == -1 || len(split[i]) < rows {
			rows = len(split[i])
		}
	}

	lines := make([]string, rows)
	parts := make([]string, len(blocks))
	for row := range rows {
		for i := range split {
			parts[i] = split[i][row]
		}
		lines[row] = strings.Join(parts, separator)
	}

	return strings.Join(lines, "\n")
}
