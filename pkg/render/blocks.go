package render

import (
	"strconv"
	"strings"
)

// runBlocks drives the block loop over content[start:end): skip blank
// lines, hand HTML islands to the tag validator, otherwise cut one block at
// the next blank-line boundary and classify it. Re-entered by the HTML
// validator for embedded markdown, with absolute offsets throughout.
func (p *parser) runBlocks(start, end int) *ParseError {
	pos := start

	for pos < end {
		pos = p.skipBlankLines(pos, end)
		if pos >= end {
			break
		}

		if p.text[pos] == '<' && pos+1 < end && isASCIILetter(p.text[pos+1]) {
			mark := p.out.mark()
			islandEnd, err := p.consumeHTML(pos)
			if err != nil {
				if !p.opts.CollectErrors {
					return err
				}
				p.out.truncate(mark)
				p.links.dropRefsAtOrAfter(mark)
				p.errs = append(p.errs, err)
				pos = p.nextBlankLine(max(pos, min(err.Offset, end)), end)
				continue
			}
			p.out.append("\n")
			pos = islandEnd
			continue
		}

		boundary := p.nextBlankLine(pos, end)
		body := strings.TrimRight(p.text[pos:boundary], "\r\n")

		mark := p.out.mark()
		if err := p.block(pos, body); err != nil {
			if !p.opts.CollectErrors {
				return err
			}
			p.out.truncate(mark)
			p.links.dropRefsAtOrAfter(mark)
			p.errs = append(p.errs, err)
		}
		pos = boundary
	}

	return nil
}

// skipBlankLines advances past whitespace-only lines, returning the offset
// of the first line with content (or end).
func (p *parser) skipBlankLines(pos, end int) int {
	for pos < end {
		lineEnd, blank := p.lineAfter(pos, end)
		if !blank {
			return pos
		}
		pos = lineEnd
	}
	return end
}

// nextBlankLine returns the offset of the first blank line at or after pos,
// or end if there is none. The returned offset is a line start, so block
// bodies never include the blank separator.
func (p *parser) nextBlankLine(pos, end int) int {
	for pos < end {
		lineEnd, blank := p.lineAfter(pos, end)
		if blank {
			return pos
		}
		pos = lineEnd
	}
	return end
}

// lineAfter returns the offset just past the line starting at pos and
// whether that line is blank (whitespace only).
func (p *parser) lineAfter(pos, end int) (int, bool) {
	blank := true
	for pos < end {
		c := p.text[pos]
		if c == '\n' {
			return pos + 1, blank
		}
		if c != ' ' && c != '\t' && c != '\r' {
			blank = false
		}
		pos++
	}
	return end, blank
}

// block classifies one blank-line-delimited block and renders it.
// start is the absolute offset of body[0].
func (p *parser) block(start int, body string) *ParseError {
	if body == "" {
		return nil
	}

	switch {
	case body[0] == '#':
		return p.heading(start, body)

	case body[0] == '>':
		return p.blockquote(start, body)

	case isLinkDefinition(body):
		idx := strings.IndexByte(body, ']')
		label := body[1:idx]
		p.links.define(label, strings.TrimSpace(body[idx+2:]))
		return nil

	default:
		return p.paragraph(start, body)
	}
}

// heading renders an ATX-style heading. The level is the hash count, with
// no upper bound.
func (p *parser) heading(start int, body string) *ParseError {
	level := 0
	for level < len(body) && body[level] == '#' {
		level++
	}
	rest := strings.TrimLeft(body[level:], " \t")
	base := start + len(body) - len(rest)

	tag := strconv.Itoa(level)
	p.out.append("<h" + tag + ">")
	if err := p.scanInline(span{text: rest, base: base}); err != nil {
		return err
	}
	p.out.append("</h" + tag + ">\n")
	return nil
}

// blockquote strips the '>' marker (and one following space) from every
// line, then inline-tokenizes the joined body. The stripped text is no
// longer a contiguous source slice, so the span carries an explicit offset
// table to keep error positions exact.
func (p *parser) blockquote(start int, body string) *ParseError {
	var text strings.Builder
	offs := make([]int, 0, len(body)+1)

	lineStart := 0
	for lineStart <= len(body) {
		lineEnd := strings.IndexByte(body[lineStart:], '\n')
		last := lineEnd < 0
		if last {
			lineEnd = len(body)
		} else {
			lineEnd += lineStart
		}

		line := body[lineStart:lineEnd]
		drop := 0
		if strings.HasPrefix(line, ">") {
			drop = 1
			if len(line) > 1 && line[1] == ' ' {
				drop = 2
			}
		}
		for i := drop; i < len(line); i++ {
			text.WriteByte(line[i])
			offs = append(offs, start+lineStart+i)
		}

		if last {
			break
		}
		text.WriteByte('\n')
		offs = append(offs, start+lineEnd)
		lineStart = lineEnd + 1
	}
	offs = append(offs, start+len(body))

	p.out.append("<blockquote>")
	if err := p.scanInline(span{text: text.String(), offs: offs}); err != nil {
		return err
	}
	p.out.append("</blockquote>\n")
	return nil
}

// paragraph renders a plain block. Blocks with leading indentation are not
// given any special structure yet (nested lists and indented code blocks
// are an extension point); their text is kept verbatim so surrounding
// output stays intact, but inconsistent indentation is still an error.
func (p *parser) paragraph(start int, body string) *ParseError {
	if err := p.checkIndentation(start, body); err != nil {
		return err
	}

	p.out.append("<p>")
	if err := p.scanInline(span{text: body, base: start}); err != nil {
		return err
	}
	p.out.append("</p>\n")
	return nil
}

// checkIndentation enforces that every indented line of a block uses the
// same whitespace kind for its leading run. The first indented line
// establishes whether the block indents with spaces or with tabs; a leading
// run that mixes kinds or contradicts the established one is a
// MixedIndentation error at the offending byte.
func (p *parser) checkIndentation(start int, body string) *ParseError {
	var established byte

	lineStart := 0
	for lineStart < len(body) {
		lineEnd := strings.IndexByte(body[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(body)
		} else {
			lineEnd += lineStart
		}

		for i := lineStart; i < lineEnd; i++ {
			c := body[i]
			if c != ' ' && c != '\t' {
				break
			}
			if established == 0 {
				established = c
			} else if c != established {
				return errorAt(p.src, KindMixedIndentation, start+i,
					"indentation mixes tabs and spaces")
			}
		}

		lineStart = lineEnd + 1
	}
	return nil
}

// isLinkDefinition reports whether a block has the shape `[label]: rest`.
func isLinkDefinition(body string) bool {
	if body[0] != '[' {
		return false
	}
	idx := strings.IndexByte(body, ']')
	return idx >= 0 && idx+1 < len(body) && body[idx+1] == ':'
}
