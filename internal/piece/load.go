//
// pcsolver - four-wide perfect-clear reachability and search engine
//
// MIT License
//
// Copyright (c) 2026 pcsolver contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package piece

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tmikkel/pcsolver/internal/types"
)

// LoadGeometry reads pieces.txt (spec.md §6): line 1 is the seven shape
// identifiers in canonical order, then for each shape two lines of four
// '.'/'#' characters - the upper line is row 1, the lower is row 0 of the
// spawn rotation. Rotations 1-3 are derived, not read. Grounded in
// FrankyGo's openingbook.Book.Initialize: a bufio.Scanner line-oriented
// state machine that turns ParseErrors into descriptive, line-numbered
// messages rather than panicking on malformed input.
func LoadGeometry(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return scanner.Text(), true
	}

	header, ok := nextLine()
	if !ok {
		return nil, &types.ParseError{Path: path, Line: lineNo, Msg: "missing shape header line"}
	}
	if len(header) != 7 {
		return nil, &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("header must list exactly 7 shapes, got %q", header)}
	}

	t := &Table{geometry: make(map[types.Shape][4][]types.CellOffset, 7)}

	for i := 0; i < 7; i++ {
		shape := types.Shape(header[i])
		if !types.IsValidShape(header[i]) {
			return nil, &types.ParseError{Path: path, Line: 1, Msg: fmt.Sprintf("unknown shape %q in header", string(header[i]))}
		}

		upper, ok := nextLine()
		if !ok || len(upper) != 4 {
			return nil, &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s: expected a 4-character upper row", shape)}
		}
		lower, ok := nextLine()
		if !ok || len(lower) != 4 {
			return nil, &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s: expected a 4-character lower row", shape)}
		}

		var cells []types.CellOffset
		for x := 0; x < 4; x++ {
			if upper[x] != '.' {
				cells = append(cells, types.CellOffset{Dy: 1, Dx: x})
			}
		}
		for x := 0; x < 4; x++ {
			if lower[x] != '.' {
				cells = append(cells, types.CellOffset{Dy: 0, Dx: x})
			}
		}
		if len(cells) != 4 {
			return nil, &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s: expected exactly 4 filled cells, found %d", shape, len(cells))}
		}

		t.geometry[shape] = deriveRotations(cells)
	}

	if err := scanner.Err(); err != nil {
		return nil, &types.IOError{Path: path, Err: err}
	}
	return t, nil
}

// LoadKicks reads kicks.txt (spec.md §6) into an existing Table's kick
// lookup. Seven blocks, one per shape: a shape-identifier line, then for
// each rotation 0-3 and turn 1-3, a count line (ignored, redundant) and a
// "dy, dx; dy, dx; ..." line of candidate offsets.
func LoadKicks(path string, t *Table) error {
	f, err := os.Open(path)
	if err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	defer f.Close()

	if t.kicks == nil {
		t.kicks = make(map[rotationKey][]types.CellOffset)
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSpace(scanner.Text()), true
	}

	for block := 0; block < 7; block++ {
		shapeLine, ok := nextLine()
		if !ok || len(shapeLine) != 1 || !types.IsValidShape(shapeLine[0]) {
			return &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("expected a single shape identifier, got %q", shapeLine)}
		}
		shape := types.Shape(shapeLine[0])

		for rot := 0; rot < 4; rot++ {
			for turn := 1; turn <= 3; turn++ {
				countLine, ok := nextLine()
				if !ok {
					return &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s rotation %d turn %d: missing count line", shape, rot, turn)}
				}
				if _, err := strconv.Atoi(countLine); err != nil {
					return &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s rotation %d turn %d: count %q is not an integer", shape, rot, turn, countLine)}
				}

				listLine, ok := nextLine()
				if !ok {
					return &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s rotation %d turn %d: missing offset list", shape, rot, turn)}
				}
				offsets, err := parseOffsetList(listLine)
				if err != nil {
					return &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s rotation %d turn %d: %v", shape, rot, turn, err)}
				}
				if len(offsets) == 0 || offsets[0] != (types.CellOffset{}) {
					return &types.ParseError{Path: path, Line: lineNo, Msg: fmt.Sprintf("shape %s rotation %d turn %d: kick list must be non-empty and begin with (0,0)", shape, rot, turn)}
				}
				t.kicks[rotationKey{shape, types.Rotation(rot), turn}] = offsets
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	return nil
}

func parseOffsetList(line string) ([]types.CellOffset, error) {
	var offsets []types.CellOffset
	for _, pair := range strings.Split(line, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed offset %q", pair)
		}
		dy, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("non-integer dy in %q", pair)
		}
		dx, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("non-integer dx in %q", pair)
		}
		offsets = append(offsets, types.CellOffset{Dy: dy, Dx: dx})
	}
	return offsets, nil
}
