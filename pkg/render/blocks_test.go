package render

import "testing"

func TestIsLinkDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "[x]: http://u", want: true},
		{input: "[label with words]: u", want: true},
		{input: "[x]:", want: true},
		{input: "[x] : u", want: false},
		{input: "[a][x]", want: false},
		{input: "[a](u)", want: false},
		{input: "text [x]: u", want: false},
		{input: "[x", want: false},
	}

	for _, testCase := range tests {
		if got := isLinkDefinition(testCase.input); got != testCase.want {
			t.Errorf("isLinkDefinition(%q) = %v, want %v", testCase.input, got, testCase.want)
		}
	}
}

func TestBlankLineScanning(t *testing.T) {
	t.Parallel()

	input := "  \n\t\nfirst\nsecond\n \nthird"
	p := newTestParser(input)

	pos := p.skipBlankLines(0, len(input))
	if input[pos:pos+5] != "first" {
		t.Fatalf("skipBlankLines stopped at %d (%q)", pos, input[pos:])
	}

	boundary := p.nextBlankLine(pos, len(input))
	if input[boundary:boundary+2] != " \n" {
		t.Fatalf("nextBlankLine stopped at %d (%q)", boundary, input[boundary:])
	}
}

func TestCheckIndentation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "no indentation", body: "a\nb"},
		{name: "consistent spaces", body: "  a\n  b"},
		{name: "consistent tabs", body: "\ta\n\tb"},
		{name: "unindented continuation", body: "  a\nb"},
		{name: "tab after spaces", body: "  a\n\tb", wantErr: true},
		{name: "space after tabs", body: "\ta\n  b", wantErr: true},
		{name: "mix within one line", body: " \ta", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			p := newTestParser(testCase.body)
			err := p.checkIndentation(0, testCase.body)
			if (err != nil) != testCase.wantErr {
				t.Errorf("checkIndentation(%q) error = %v, wantErr %v",
					testCase.body, err, testCase.wantErr)
			}
			if err != nil && err.Kind != KindMixedIndentation {
				t.Errorf("kind: got %s, want %s", err.Kind, KindMixedIndentation)
			}
		})
	}
}
