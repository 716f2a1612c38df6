package render

import "strings"

// voidTags never take a closing tag and are never pushed onto the open-tag
// stack.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// rawTags have their body copied through untouched, with no markdown
// parsing and no entity handling, up to the literal closing tag.
var rawTags = map[string]bool{
	"script": true,
	"style":  true,
}

// htmlTag is one matched opening or closing tag.
type htmlTag struct {
	name        string
	closing     bool
	selfClosing bool
	start       int // offset of '<'
	end         int // offset just past '>', or -1 when the tag never closes
}

// tagFrame is one entry on the open-tag stack.
type tagFrame struct {
	name string // lower-cased
	off  int    // offset of the opening '<'
}

// consumeHTML validates one HTML island starting at an opening tag and
// copies it to the output. Text strictly between tags is passed through
// verbatim, unless it begins with a blank line, in which case it is
// embedded markdown and re-enters the block splitter with its absolute
// offsets intact. Returns the offset just past the island.
//
// The island ends exactly when the open-tag stack becomes empty again after
// having been non-empty, or immediately after the first tag when that tag
// is self-contained (void, explicitly self-closed, or a raw tag).
func (p *parser) consumeHTML(start int) (int, *ParseError) {
	pos := start
	lastEnd := start
	var stack []tagFrame

	for {
		tag, found := p.nextTag(pos)
		if !found {
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				return 0, errorAt(p.src, KindUnclosedTag, top.off,
					"<%s> is never closed", top.name)
			}
			// Unreachable from the block splitter, which only enters on a
			// well-formed first tag; bail out without consuming anything.
			return p.src.Len(), nil
		}
		if tag.end < 0 {
			return 0, errorAtEOF(p.src, KindUnclosedTag,
				"tag <%s is missing its closing '>'", tag.name)
		}

		if tag.start > lastEnd && len(stack) > 0 {
			if err := p.intervening(lastEnd, tag.start); err != nil {
				return 0, err
			}
		}

		name := strings.ToLower(tag.name)

		if tag.closing {
			if len(stack) == 0 {
				return 0, errorAt(p.src, KindUnexpectedCloseTag, tag.start,
					"closing tag </%s> without a matching opening tag", tag.name)
			}
			top := stack[len(stack)-1]
			if top.name != name {
				return 0, errorAt(p.src, KindTagMismatch, tag.start,
					"expected </%s>, found </%s>", top.name, tag.name)
			}
			stack = stack[:len(stack)-1]
			p.out.append(p.text[tag.start:tag.end])
			lastEnd, pos = tag.end, tag.end
			if len(stack) == 0 {
				return tag.end, nil
			}
			continue
		}

		p.out.append(p.text[tag.start:tag.end])
		lastEnd, pos = tag.end, tag.end

		switch {
		case rawTags[name]:
			rawEnd := findRawClose(p.text, name, tag.end)
			if rawEnd < 0 {
				return 0, errorAt(p.src, KindUnclosedRawTag, tag.start,
					"<%s> is never closed", name)
			}
			p.out.append(p.text[tag.end:rawEnd])
			lastEnd, pos = rawEnd, rawEnd
			if len(stack) == 0 {
				return rawEnd, nil
			}

		case tag.selfClosing || voidTags[name]:
			if len(stack) == 0 {
				return tag.end, nil
			}

		default:
			if len(stack) >= p.maxDepth() {
				return 0, errorAt(p.src, KindNestingTooDeep, tag.start,
					"HTML nesting exceeds the maximum depth of %d", p.maxDepth())
			}
			stack = append(stack, tagFrame{name: name, off: tag.start})
		}
	}
}

// intervening handles the text strictly between two tag matches.
func (p *parser) intervening(start, end int) *ParseError {
	if beginsWithBlankLine(p.text[start:end]) {
		if p.depth >= p.maxDepth() {
			return errorAt(p.src, KindNestingTooDeep, start,
				"embedded markdown exceeds the maximum depth of %d", p.maxDepth())
		}
		p.depth++
		err := p.runBlocks(start, end)
		p.depth--
		return err
	}
	p.out.append(p.text[start:end])
	return nil
}

// nextTag finds the next parseable tag at or after pos. Stray '<' bytes
// that do not start a tag are skipped; they remain part of the intervening
// text.
func (p *parser) nextTag(pos int) (htmlTag, bool) {
	for pos < len(p.text) {
		i := strings.IndexByte(p.text[pos:], '<')
		if i < 0 {
			return htmlTag{}, false
		}
		if tag, ok := parseTag(p.text, pos+i); ok {
			return tag, true
		}
		pos += i + 1
	}
	return htmlTag{}, false
}

// parseTag parses a single tag at offset i, where text[i] == '<'.
// Attribute values may be quoted with single or double quotes; a '>' inside
// quotes does not end the tag.
func parseTag(text string, i int) (htmlTag, bool) {
	tag := htmlTag{start: i, end: -1}

	j := i + 1
	if j < len(text) && text[j] == '/' {
		tag.closing = true
		j++
	}

	nameStart := j
	for j < len(text) && (isASCIILetter(text[j]) || (j > nameStart && isTagNameByte(text[j]))) {
		j++
	}
	if j == nameStart {
		return htmlTag{}, false
	}
	tag.name = text[nameStart:j]

	lastMeaningful := byte(0)
	for j < len(text) {
		switch c := text[j]; c {
		case '"', '\'':
			quoteEnd := strings.IndexByte(text[j+1:], c)
			if quoteEnd < 0 {
				return tag, true // end stays -1: the tag never closes
			}
			j += quoteEnd + 2
			lastMeaningful = c
		case '>':
			tag.selfClosing = lastMeaningful == '/'
			tag.end = j + 1
			return tag, true
		default:
			if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
				lastMeaningful = c
			}
			j++
		}
	}
	return tag, true
}

// findRawClose locates the first literal closing tag </name> at or after
// pos, case-insensitively. Returns the offset just past its '>', or -1.
func findRawClose(text, name string, pos int) int {
	for pos < len(text) {
		i := strings.IndexByte(text[pos:], '<')
		if i < 0 {
			return -1
		}
		j := pos + i
		if j+1 < len(text) && text[j+1] == '/' &&
			len(text) >= j+2+len(name) &&
			strings.EqualFold(text[j+2:j+2+len(name)], name) {
			k := j + 2 + len(name)
			for k < len(text) && (text[k] == ' ' || text[k] == '\t') {
				k++
			}
			if k < len(text) && text[k] == '>' {
				return k + 1
			}
		}
		pos = j + 1
	}
	return -1
}

// beginsWithBlankLine reports whether s starts with the remainder of the
// previous tag's line (whitespace only) followed by a blank line. This is
// the marker that the intervening text is embedded markdown rather than
// literal HTML content.
func beginsWithBlankLine(s string) bool {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r') {
		i++
	}
	if i >= len(s) || s[i] != '\n' {
		return false
	}
	i++
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r') {
		i++
	}
	return i >= len(s) || s[i] == '\n'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagNameByte(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '-'
}
