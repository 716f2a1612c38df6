package mdsrc_test

import (
	"testing"

	"github.com/yaklabco/mdconv/pkg/mdsrc"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []mdsrc.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []mdsrc.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []mdsrc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []mdsrc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []mdsrc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []mdsrc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []mdsrc.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			src := mdsrc.New("", []byte(testCase.content))
			if len(src.Lines) != len(testCase.expected) {
				t.Fatalf("got %d lines, want %d", len(src.Lines), len(testCase.expected))
			}
			for i, want := range testCase.expected {
				if src.Lines[i] != want {
					t.Errorf("line %d: got %+v, want %+v", i, src.Lines[i], want)
				}
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	src := mdsrc.New("", []byte("one\ntwo\r\nthree"))

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{name: "start of first line", offset: 0, wantLine: 1, wantCol: 1},
		{name: "middle of first line", offset: 2, wantLine: 1, wantCol: 3},
		{name: "newline of first line", offset: 3, wantLine: 1, wantCol: 4},
		{name: "start of second line", offset: 4, wantLine: 2, wantCol: 1},
		{name: "start of third line", offset: 9, wantLine: 3, wantCol: 1},
		{name: "last byte", offset: 13, wantLine: 3, wantCol: 5},
		{name: "end of input", offset: 14, wantLine: 3, wantCol: 6},
		{name: "negative offset", offset: -1, wantLine: 0, wantCol: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line, col := src.LineAt(testCase.offset)
			if line != testCase.wantLine || col != testCase.wantCol {
				t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)",
					testCase.offset, line, col, testCase.wantLine, testCase.wantCol)
			}
		})
	}
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	src := mdsrc.New("", []byte("one\ntwo\r\nthree"))

	if got := string(src.LineContent(1)); got != "one" {
		t.Errorf("line 1: got %q, want %q", got, "one")
	}
	if got := string(src.LineContent(2)); got != "two" {
		t.Errorf("line 2: got %q, want %q", got, "two")
	}
	if got := string(src.LineContent(3)); got != "three" {
		t.Errorf("line 3: got %q, want %q", got, "three")
	}
	if got := src.LineContent(4); got != nil {
		t.Errorf("line 4: got %q, want nil", got)
	}
	if got := src.LineContent(0); got != nil {
		t.Errorf("line 0: got %q, want nil", got)
	}
}
