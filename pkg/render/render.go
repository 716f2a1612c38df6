// Package render converts a restricted, line-oriented Markdown dialect into
// HTML while preserving source positions for diagnostics.
//
// The engine works in two levels: a block splitter partitions the input
// into paragraphs, headings, quotes, link definitions, and HTML islands on
// blank-line boundaries, and an inline tokenizer scans block text for
// escapes, emphasis, inline code, and links. Link references may appear
// before their definitions; they are emitted as placeholder fragments and
// back-patched in a resolution pass at the end of the parse.
//
// The canonical mode fails fast on the first malformed construct with a
// precise line/column. Options.CollectErrors switches to a best-effort mode
// that drops the failed block, records the error, and keeps going.
package render

import (
	"github.com/yaklabco/mdconv/pkg/mdsrc"
)

// DefaultMaxDepth bounds HTML tag nesting and embedded-markdown recursion.
// Pathological inputs trip a NestingTooDeep error instead of growing the
// call stack without limit.
const DefaultMaxDepth = 64

// Options controls a conversion.
type Options struct {
	// CollectErrors keeps parsing past malformed blocks, accumulating an
	// ordered error list instead of aborting on the first one. The
	// resulting HTML is best-effort: failed blocks are omitted entirely,
	// never half-rendered.
	CollectErrors bool

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Converter renders documents with a fixed set of options. A Converter is
// stateless across calls and safe for concurrent use; every call owns its
// own output arena and link table.
type Converter struct {
	opts Options
}

// New creates a Converter.
func New(opts Options) *Converter {
	return &Converter{opts: opts}
}

// ConvertSource renders one document. On success the error slice is empty.
// In fail-fast mode (the default) the slice holds at most one error and the
// HTML is empty when it is non-empty; in collect mode the HTML is the
// best-effort output alongside all recorded errors, in document order.
func (c *Converter) ConvertSource(src *mdsrc.Source) (string, []*ParseError) {
	p := &parser{
		src:   src,
		text:  string(src.Content),
		out:   &fragments{},
		links: newLinkTable(),
		opts:  c.opts,
	}

	if err := p.runBlocks(0, len(p.text)); err != nil {
		return "", []*ParseError{err}
	}

	p.links.resolve(p.out)

	return p.out.join(), p.errs
}

// Convert is the fail-fast convenience entry point for in-memory content.
// No partial HTML is returned when the input is malformed.
func Convert(content []byte) (string, error) {
	html, errs := New(Options{}).ConvertSource(mdsrc.New("", content))
	if len(errs) > 0 {
		return "", errs[0]
	}
	return html, nil
}

// parser is the per-call state: one source, one output arena, one link
// table, one recursion depth counter. Nothing here outlives the call.
type parser struct {
	src   *mdsrc.Source
	text  string
	out   *fragments
	links *linkTable
	opts  Options
	errs  []*ParseError
	depth int
}

func (p *parser) maxDepth() int {
	if p.opts.MaxDepth > 0 {
		return p.opts.MaxDepth
	}
	return DefaultMaxDepth
}
