package render

import (
	"testing"

	"github.com/yaklabco/mdconv/pkg/mdsrc"
)

func newTestParser(input string) *parser {
	return &parser{
		src:   mdsrc.New("", []byte(input)),
		text:  input,
		out:   &fragments{},
		links: newLinkTable(),
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		input           string
		wantName        string
		wantClosing     bool
		wantSelfClosing bool
		wantEnd         int
	}{
		{name: "plain open", input: "<div>", wantName: "div", wantEnd: 5},
		{name: "close", input: "</div>", wantName: "div", wantClosing: true, wantEnd: 6},
		{name: "self-closed", input: "<br/>", wantName: "br", wantSelfClosing: true, wantEnd: 5},
		{name: "self-closed with space", input: "<br />", wantName: "br", wantSelfClosing: true, wantEnd: 6},
		{name: "attributes", input: `<a href="x">`, wantName: "a", wantEnd: 12},
		{name: "gt inside quoted attr", input: `<a title="a>b">`, wantName: "a", wantEnd: 15},
		{name: "hyphenated name", input: "<my-tag>", wantName: "my-tag", wantEnd: 8},
		{name: "never closed", input: "<div class=", wantName: "div", wantEnd: -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tag, ok := parseTag(testCase.input, 0)
			if !ok {
				t.Fatalf("parseTag(%q) not recognized", testCase.input)
			}
			if tag.name != testCase.wantName {
				t.Errorf("name: got %q, want %q", tag.name, testCase.wantName)
			}
			if tag.closing != testCase.wantClosing {
				t.Errorf("closing: got %v, want %v", tag.closing, testCase.wantClosing)
			}
			if tag.selfClosing != testCase.wantSelfClosing {
				t.Errorf("selfClosing: got %v, want %v", tag.selfClosing, testCase.wantSelfClosing)
			}
			if tag.end != testCase.wantEnd {
				t.Errorf("end: got %d, want %d", tag.end, testCase.wantEnd)
			}
		})
	}

	if _, ok := parseTag("<1div>", 0); ok {
		t.Error("parseTag accepted a name starting with a digit")
	}
	if _, ok := parseTag("< div>", 0); ok {
		t.Error("parseTag accepted a name starting with a space")
	}
}

func TestConsumeHTMLUnexpectedClose(t *testing.T) {
	t.Parallel()

	p := newTestParser("</div>")

	_, err := p.consumeHTML(0)
	if err == nil {
		t.Fatal("consumeHTML accepted a leading closing tag")
	}
	if err.Kind != KindUnexpectedCloseTag {
		t.Errorf("kind: got %s, want %s", err.Kind, KindUnexpectedCloseTag)
	}
	if err.Line != 1 || err.Column != 1 {
		t.Errorf("position: got %d:%d, want 1:1", err.Line, err.Column)
	}
}

func TestFindRawClose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		tag  string
		want int
	}{
		{name: "simple", text: "x</script>", tag: "script", want: 10},
		{name: "case-insensitive", text: "x</SCRIPT>", tag: "script", want: 10},
		{name: "space before gt", text: "x</style >", tag: "style", want: 10},
		{name: "skips lookalikes", text: "a<scripty></script>", tag: "script", want: 19},
		{name: "missing", text: "no close here", tag: "script", want: -1},
		{name: "wrong tag only", text: "x</style>", tag: "script", want: -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := findRawClose(testCase.text, testCase.tag, 0)
			if got != testCase.want {
				t.Errorf("findRawClose(%q, %q) = %d, want %d",
					testCase.text, testCase.tag, got, testCase.want)
			}
		})
	}
}

func TestBeginsWithBlankLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "two newlines", input: "\n\ntext", want: true},
		{name: "whitespace blank line", input: "  \n \t\ntext", want: true},
		{name: "crlf blank line", input: "\r\n\r\ntext", want: true},
		{name: "only line break", input: "\ntext", want: false},
		{name: "immediate text", input: "text", want: false},
		{name: "empty", input: "", want: false},
		{name: "trailing blank only", input: "\n \t", want: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := beginsWithBlankLine(testCase.input); got != testCase.want {
				t.Errorf("beginsWithBlankLine(%q) = %v, want %v", testCase.input, got, testCase.want)
			}
		})
	}
}

func TestVoidTagsNeverPushed(t *testing.T) {
	t.Parallel()

	// Every void tag must terminate a single-tag island on its own.
	for name := range voidTags {
		p := newTestParser("<" + name + ">")
		end, err := p.consumeHTML(0)
		if err != nil {
			t.Errorf("<%s>: unexpected error %v", name, err)
			continue
		}
		if end != len(p.text) {
			t.Errorf("<%s>: end = %d, want %d", name, end, len(p.text))
		}
	}
}
