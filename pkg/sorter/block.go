package sorter

const (
	openDelimiter  = "import("
	closeDelimiter = ")"
)

// matchesDelimiter checks a line against a delimiter after removing all
// whitespace and truncating any trailing line comment.
func matchesDelimiter(line Line, delimiter string) bool {
	return stripComment(stripSpaces(line.Text)) == delimiter
}

// Locate finds the half-open range [begin, end) of lines inside the
// first grouped import block. The delimiter lines themselves are
// outside the range. If no open delimiter exists, begin == end ==
// len(lines); if the close delimiter is missing, end == len(lines).
// begin >= end means the file has no import block.
//
// Only the first textual occurrence is considered; files with multiple
// blocks, or "import(" inside string literals, are not handled.
func Locate(lines []Line) (begin, end int) {
	begin = len(lines)
	for i := range lines {
		if matchesDelimiter(lines[i], openDelimiter) {
			begin = i + 1
			break
		}
	}
	end = begin
	for end < len(lines) {
		if matchesDelimiter(lines[end], closeDelimiter) {
			break
		}
		end++
	}
	return begin, end
}
