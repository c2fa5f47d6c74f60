/*
 * cursor.go, part of gomol2.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol2

import (
	"regexp"
	"strings"
)

const (
	// HeaderPrefix starts every section header of a MOL2 file.
	HeaderPrefix = "@<TRIPOS>"

	// CompoundBoundary is the line that separates compounds in a multi-record
	// file. Note the trailing '>': it is not the MOLECULE section header.
	CompoundBoundary = "@<TRIPOS>MOLECULE>"
)

var lineBreak = regexp.MustCompile(`\r\n|\n|\r`)

// splitLines splits text on \r\n, \n and \r. An empty text gives one empty line.
func splitLines(text string) []string {
	return lineBreak.Split(text, -1)
}

// Cursor walks the lines of a MOL2 text. It keeps an anchor, the first line of
// the compound being read, and a position, the current line.
// Reads never fail: a line that doesn't exist is returned as ("", false),
// and the lookups relative to the anchor fall back to the anchor line.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	lines    []string
	anchor   int
	position int
}

// NewCursor splits text into lines and returns a cursor at line 0.
func NewCursor(text string) *Cursor {
	return &Cursor{lines: splitLines(text)}
}

// newCursorLines returns a cursor over lines, which must not be modified afterwards.
func newCursorLines(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Len returns the number of lines.
func (C *Cursor) Len() int {
	return len(C.lines)
}

// Anchor returns the index of the first line of the current compound.
func (C *Cursor) Anchor() int {
	return C.anchor
}

// Position returns the index of the current line. It can be past the last line.
func (C *Cursor) Position() int {
	return C.position
}

// Line returns the ith line, or ("", false) if there is no such line.
func (C *Cursor) Line(i int) (string, bool) {
	if i < 0 || i >= len(C.lines) {
		return "", false
	}
	return C.lines[i], true
}

// Lines returns a copy of the lines from i (inclusive) to j (exclusive),
// clamped to the existing lines.
func (C *Cursor) Lines(i, j int) []string {
	i = clamp(i, 0, len(C.lines))
	j = clamp(j, i, len(C.lines))
	ret := make([]string, j-i)
	copy(ret, C.lines[i:j])
	return ret
}

func clamp(n, lo, hi int) int {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}

// SetStart sets both the anchor and the position to n, clamped so that it
// never points past the last line.
func (C *Cursor) SetStart(n int) {
	n = clamp(n, 0, len(C.lines)-1)
	C.anchor = n
	C.position = n
}

// Next advances the position by one and returns the line there. The position
// keeps advancing past the end of the text.
func (C *Cursor) Next() (string, bool) {
	C.position++
	return C.Line(C.position)
}

// Current returns the line at the current position.
func (C *Cursor) Current() (string, bool) {
	return C.Line(C.position)
}

// FromStart moves to the line offset lines after the anchor and returns it.
// If there is no such line, it moves to the anchor and returns the anchor line.
func (C *Cursor) FromStart(offset int) (string, bool) {
	target := C.anchor + offset
	if line, ok := C.Line(target); ok {
		C.position = target
		return line, true
	}
	C.position = C.anchor
	return C.Current()
}

// FindHeader moves to the first line at or after the anchor that contains
// @<TRIPOS>tag and returns it. The line only has to contain the header, it
// doesn't need to start with it. If no such line exists, it behaves as FromStart(0).
func (C *Cursor) FindHeader(tag string) (string, bool) {
	header := HeaderPrefix + tag
	C.FromStart(0)
	for line, ok := C.Current(); ok; line, ok = C.Next() {
		if strings.Contains(line, header) {
			return line, true
		}
	}
	return C.FromStart(0)
}

// HeaderFromStart finds the header for tag (see FindHeader) and then moves
// offset lines forward from it. The offset is applied only if the header was
// actually found and the line offset lines after the anchor exists; otherwise
// the position stays on the line FindHeader returned. It returns the line at
// the final position, so callers must check it themselves.
func (C *Cursor) HeaderFromStart(tag string, offset int) (string, bool) {
	line, _ := C.FindHeader(tag)
	_, inRange := C.Line(C.anchor + offset)
	if strings.Contains(line, HeaderPrefix+tag) && inRange {
		C.position += offset
	}
	return C.Current()
}

// NextCompound scans forward from the current position to the next
// compound boundary line (CompoundBoundary, surrounding spaces ignored) and
// anchors the cursor right after it. If there is no boundary, the cursor ends
// anchored on the last line. The scan starts on the current line, so a cursor
// sitting on a boundary anchors on the line after it. It returns HasMoreData
// for the new position.
func (C *Cursor) NextCompound() bool {
	line, ok := C.Current()
	for ok && strings.TrimSpace(line) != CompoundBoundary {
		line, ok = C.Next()
	}
	C.SetStart(C.position + 1)
	return C.HasMoreData()
}

// HasMoreData reports whether the position is at least two lines away from the
// end of the text. The margin tolerates a trailing empty line.
func (C *Cursor) HasMoreData() bool {
	return C.position < len(C.lines)-2
}
