// Copyright 2024 The AIDL Tools Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"sort"

	"github.com/aidl-tools/aidl/ast"
)

// FileInfo records the offsets at which each line of a source file begins,
// so every AST range can be expressed both as byte offsets and as
// line/column positions without rescanning the source.
type FileInfo struct {
	Key   string
	Data  []byte
	lines []int // lines[i] is the byte offset where line i+1 begins
}

// NewFileInfo scans content once to build the line-offset table.
func NewFileInfo(key string, content []byte) *FileInfo {
	fi := &FileInfo{Key: key, Data: content, lines: []int{0}}
	for i, b := range content {
		if b == '\n' {
			fi.lines = append(fi.lines, i+1)
		}
	}
	return fi
}

// Position converts a zero-based byte offset into a one-based line/column.
func (fi *FileInfo) Position(offset int) ast.Position {
	line := sort.Search(len(fi.lines), func(i int) bool {
		return fi.lines[i] > offset
	})
	col := offset
	if line > 0 {
		col -= fi.lines[line-1]
	}
	return ast.Position{Line: line, Column: col + 1}
}

// RangeAt builds an ast.Range for the half-open byte span [start, end).
func (fi *FileInfo) RangeAt(start, end int) ast.Range {
	return ast.Range{
		Start:       fi.Position(start),
		End:         fi.Position(end),
		OffsetStart: start,
		OffsetEnd:   end,
	}
}

// ZeroWidthRangeAt builds a zero-width Range at offset, used for ranges
// like Method.OnewayRange when the keyword is absent.
func (fi *FileInfo) ZeroWidthRangeAt(offset int) ast.Range {
	return fi.RangeAt(offset, offset)
}
