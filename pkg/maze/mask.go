package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyMask is returned by [ParseMask] when the stencil contains no lines.
var ErrEmptyMask = errors.New("mask stencil is empty")

// ParseMask reads a text stencil and returns a masking predicate plus the
// stencil dimensions. Each line is one row; an 'X' (or 'x') excludes the
// position, a '.' keeps it. Columns is the length of the longest line, and
// positions past the end of a shorter line are excluded.
//
// A 5×5 plus-shaped maze:
//
//	XX.XX
//	XX.XX
//	.....
//	XX.XX
//	XX.XX
func ParseMask(r io.Reader) (AllowFunc, int, int, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("read mask: %w", err)
	}
	if len(lines) == 0 {
		return nil, 0, 0, ErrEmptyMask
	}

	columns := 0
	for i, line := range lines {
		if len(line) > columns {
			columns = len(line)
		}
		for j, ch := range line {
			if ch != '.' && ch != 'X' && ch != 'x' {
				return nil, 0, 0, fmt.Errorf("mask line %d, column %d: unexpected %q", i+1, j+1, ch)
			}
		}
	}
	if columns == 0 {
		return nil, 0, 0, ErrEmptyMask
	}

	allowed := func(row, column int) bool {
		if row < 0 || row >= len(lines) || column < 0 || column >= len(lines[row]) {
			return false
		}
		ch := lines[row][column]
		return ch != 'X' && ch != 'x'
	}
	return allowed, len(lines), columns, nil
}
