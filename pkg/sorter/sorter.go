package sorter

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/siyuan-infoblox/order-includes/pkg/errors"
)

// Config holds the per-file sorter configuration
type Config struct {
	FilePath string      // path to the Go source file
	Logger   *zap.Logger // optional; defaults to a nop logger
}

// Result is the per-file processing outcome
type Result struct {
	Path    string
	Message string
}

func (r Result) String() string {
	return fmt.Sprintf("[%s][%s]", r.Path, r.Message)
}

// sorter orders the imports of a single file
type sorter struct {
	config Config
	logger *zap.Logger
}

// New creates a new sorter for the configured file
func New(config Config) *sorter {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sorter{
		config: config,
		logger: logger,
	}
}

func (s *sorter) getFilePath() string {
	return s.config.FilePath
}

// removeBlankLines marks blank lines inside [begin, end) as removed.
// Pure comment lines are left alone; Classify maps them to None.
func removeBlankLines(lines []Line, begin, end int) {
	for i := begin; i < end; i++ {
		if lines[i].IsBlank() {
			lines[i] = Line{Removed: true}
		}
	}
}

// less is the total order used to sort the import block: removed lines
// last, then by category rank, then lexicographically by path key.
func less(lhs, rhs Line) bool {
	if lhs.Removed {
		return false
	}
	if rhs.Removed {
		return true
	}
	lhsCategory := Classify(lhs)
	rhsCategory := Classify(rhs)
	if lhsCategory != rhsCategory {
		return lhsCategory.Rank() < rhsCategory.Rank()
	}
	return pathKey(lhs.Text) < pathKey(rhs.Text)
}

// render emits every surviving line of the file in order, inserting one
// blank line between adjacent surviving block lines whose categories
// are both non-None and differ. It re-locates the block and checks the
// bounds still match; the sort must never move the delimiter lines.
func render(lines []Line, begin, end int) ([]string, error) {
	checkBegin, checkEnd := Locate(lines)
	if checkBegin != begin || checkEnd != end {
		return nil, fmt.Errorf("%s: [%d, %d) became [%d, %d)",
			errors.ErrMsgBlockBoundsMoved, begin, end, checkBegin, checkEnd)
	}

	var out []string
	for i := range lines {
		if !lines[i].Removed {
			out = append(out, lines[i].Text)
		}
		if lines[i].Removed || i == len(lines)-1 || lines[i+1].Removed {
			continue
		}
		if i < begin || i+1 >= end {
			continue
		}
		current := Classify(lines[i])
		next := Classify(lines[i+1])
		if current != None && next != None && current != next {
			out = append(out, "")
		}
	}
	return out, nil
}

// FormatLines runs the whole pipeline on raw file lines. The boolean is
// false when the file has no import block, in which case the input is
// returned unchanged.
func (s *sorter) FormatLines(raw []string) ([]string, bool, error) {
	lines := NewLines(raw)
	begin, end := Locate(lines)
	if begin >= end {
		return raw, false, nil
	}
	s.logger.Debug("located import block",
		zap.String("path", s.getFilePath()),
		zap.Int("begin", begin),
		zap.Int("end", end),
	)

	removeBlankLines(lines, begin, end)
	block := lines[begin:end]
	sort.Slice(block, func(i, j int) bool {
		return less(block[i], block[j])
	})

	out, err := render(lines, begin, end)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// FormatFile reads the configured file, orders its import block and
// writes the result back in place. Per-file failures are reported in
// the Result; the error is reserved for faults that must abort the
// whole batch.
func (s *sorter) FormatFile() (Result, error) {
	path := s.getFilePath()

	raw, err := readLines(path)
	if err != nil || len(raw) == 0 {
		s.logger.Debug("read failed", zap.String("path", path), zap.Error(err))
		return Result{Path: path, Message: errors.StatusReadFailed}, nil
	}

	out, found, err := s.FormatLines(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if !found {
		return Result{Path: path, Message: errors.StatusNoIncludes}, nil
	}

	if err := writeLines(path, out); err != nil {
		return Result{}, fmt.Errorf("%s: %s: %w", path, errors.ErrMsgFailedToWriteFile, err)
	}
	return Result{Path: path, Message: errors.StatusDone}, nil
}

// readLines reads the file into lines without terminators
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// writeLines rewrites the file with a newline after every line
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
