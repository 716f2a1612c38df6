package render

import (
	"strings"
	"unicode/utf8"
)

// styleID identifies one of the three emphasis toggles.
type styleID int

const (
	styleItalic styleID = iota
	styleBold
	styleStrike
)

var styleTags = [...]struct{ open, close string }{
	styleItalic: {"<i>", "</i>"},
	styleBold:   {"<b>", "</b>"},
	styleStrike: {"<s>", "</s>"},
}

var styleNames = [...]string{
	styleItalic: "italic",
	styleBold:   "bold",
	styleStrike: "strikethrough",
}

// inlineMarkers are the characters that interrupt a literal run.
const inlineMarkers = "\\*_`~!["

// span is a block's inline text together with the mapping from text indices
// back to absolute source offsets. For text that is a contiguous slice of
// the source the mapping is base+i; blockquote bodies, which are
// reassembled from prefix-stripped lines, carry an explicit offset table
// with one extra sentinel entry for the end-of-span offset.
type span struct {
	text string
	base int
	offs []int
}

func (sp span) abs(i int) int {
	if sp.offs != nil {
		return sp.offs[i]
	}
	return sp.base + i
}

// openToggle records an emphasis style that is currently open and where it
// was opened, for nesting-order enforcement and error positions.
type openToggle struct {
	style styleID
	off   int
}

// inlineScanner consumes a block's text left to right, appending literal
// and generated fragments to the parser's output arena. Deferred link
// references go through the parser's link table.
type inlineScanner struct {
	p    *parser
	sp   span
	pos  int
	open [3]bool
	// order is the stack of currently open toggles; closes must match its top.
	order []openToggle
}

// scanInline tokenizes one inline span into the output arena.
func (p *parser) scanInline(sp span) *ParseError {
	s := &inlineScanner{p: p, sp: sp}
	return s.run()
}

func (s *inlineScanner) run() *ParseError {
	text := s.sp.text

	for s.pos < len(text) {
		i := strings.IndexAny(text[s.pos:], inlineMarkers)
		if i < 0 {
			s.literal(text[s.pos:])
			s.pos = len(text)
			break
		}
		if i > 0 {
			s.literal(text[s.pos : s.pos+i])
			s.pos += i
		}
		if err := s.marker(); err != nil {
			return err
		}
	}

	if len(s.order) > 0 {
		top := s.order[len(s.order)-1]
		return errorAt(s.p.src, KindMismatchedEmphasis, top.off,
			"%s emphasis is never closed in this block", styleNames[top.style])
	}
	return nil
}

// marker handles the marker character at the cursor.
func (s *inlineScanner) marker() *ParseError {
	text := s.sp.text

	switch c := text[s.pos]; c {
	case '\\':
		if s.pos+1 >= len(text) {
			return errorAt(s.p.src, KindUnterminatedEscape, s.sp.abs(s.pos),
				"escape character at end of block")
		}
		_, size := utf8.DecodeRuneInString(text[s.pos+1:])
		s.literal(text[s.pos+1 : s.pos+1+size])
		s.pos += 1 + size

	case '`':
		rest := text[s.pos+1:]
		end := strings.IndexByte(rest, '`')
		if end < 0 {
			return errorAt(s.p.src, KindUnterminatedInlineCode, s.sp.abs(s.pos),
				"inline code is never closed")
		}
		s.emit("<code>" + escapeText(rest[:end]) + "</code>")
		s.pos += end + 2

	case '*', '_':
		style, width := styleItalic, 1
		if s.pos+1 < len(text) && text[s.pos+1] == c {
			style, width = styleBold, 2
		}
		return s.toggle(style, width)

	case '~':
		if s.pos+1 < len(text) && text[s.pos+1] == '~' {
			return s.toggle(styleStrike, 2)
		}
		// A lone tilde is plain text.
		s.literal("~")
		s.pos++

	case '!':
		if s.pos+1 < len(text) && text[s.pos+1] == '[' {
			s.pos++
			return s.link(true, s.pos-1)
		}
		s.literal("!")
		s.pos++

	case '[':
		return s.link(false, s.pos)
	}

	return nil
}

// toggle opens or closes an emphasis style. Closing a style that is not the
// most recently opened one would produce overlapping markup, so it is
// rejected as a nesting error.
func (s *inlineScanner) toggle(style styleID, width int) *ParseError {
	off := s.sp.abs(s.pos)

	if !s.open[style] {
		s.open[style] = true
		s.order = append(s.order, openToggle{style: style, off: off})
		s.emit(styleTags[style].open)
	} else {
		top := s.order[len(s.order)-1]
		if top.style != style {
			return errorAt(s.p.src, KindMismatchedEmphasis, off,
				"cannot close %s while %s is still open",
				styleNames[style], styleNames[top.style])
		}
		s.order = s.order[:len(s.order)-1]
		s.open[style] = false
		s.emit(styleTags[style].close)
	}

	s.pos += width
	return nil
}

// link parses a link or image starting at the cursor, which sits on '['.
// markerPos is the index of '!' for images, of '[' for links; it anchors
// error positions.
//
// Three forms:
//
//	[text](url)   resolved immediately
//	[text][label] deferred through the link table
//	[label]       deferred, the text doubles as the label
func (s *inlineScanner) link(isImage bool, markerPos int) *ParseError {
	text := s.sp.text
	openOff := s.sp.abs(markerPos)

	end := strings.IndexByte(text[s.pos+1:], ']')
	if end < 0 {
		return errorAt(s.p.src, KindUnclosedBracket, openOff,
			"bracket is never closed")
	}
	display := text[s.pos+1 : s.pos+1+end]
	rest := s.pos + 2 + end

	switch {
	case rest < len(text) && text[rest] == '(':
		closeParen := strings.IndexByte(text[rest+1:], ')')
		if closeParen < 0 {
			return errorAt(s.p.src, KindUnclosedBracket, s.sp.abs(rest),
				"link destination is never closed")
		}
		url := strings.TrimSpace(text[rest+1 : rest+1+closeParen])
		s.emit(renderLink(url, display, isImage))
		s.pos = rest + 2 + closeParen

	case rest < len(text) && text[rest] == '[':
		closeBracket := strings.IndexByte(text[rest+1:], ']')
		if closeBracket < 0 {
			return errorAt(s.p.src, KindUnclosedBracket, s.sp.abs(rest),
				"label bracket is never closed")
		}
		label := text[rest+1 : rest+1+closeBracket]
		s.deferRef(label, display, isImage)
		s.pos = rest + 2 + closeBracket

	default:
		s.deferRef(display, display, isImage)
		s.pos = rest
	}

	return nil
}

// deferRef emits the display text as a placeholder fragment and registers the
// reference for the resolution pass.
func (s *inlineScanner) deferRef(label, display string, isImage bool) {
	idx := s.p.out.append(escapeText(display))
	s.p.links.refer(label, display, idx, isImage)
}

func (s *inlineScanner) literal(text string) {
	s.p.out.append(escapeText(text))
}

func (s *inlineScanner) emit(fragment string) {
	s.p.out.append(fragment)
}
