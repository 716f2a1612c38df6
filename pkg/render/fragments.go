package render

import "strings"

// fragments is the append-only output arena. The final document is the
// in-order concatenation of all parts. Placeholder slots reserved for
// deferred links are addressed by index and back-patched in place during
// the resolution pass; nothing is ever reordered or appended elsewhere.
type fragments struct {
	parts []string
}

// append adds a fragment and returns its index.
func (f *fragments) append(s string) int {
	f.parts = append(f.parts, s)
	return len(f.parts) - 1
}

// set replaces the fragment at index i. Used only by link resolution.
func (f *fragments) set(i int, s string) {
	f.parts[i] = s
}

// mark returns the index the next appended fragment will get.
func (f *fragments) mark() int {
	return len(f.parts)
}

// truncate discards all fragments at or after index i. Used by the
// error-collecting mode to drop partial output of a failed block.
func (f *fragments) truncate(i int) {
	f.parts = f.parts[:i]
}

// join concatenates all fragments in document order.
func (f *fragments) join() string {
	var b strings.Builder
	total := 0
	for _, p := range f.parts {
		total += len(p)
	}
	b.Grow(total)
	for _, p := range f.parts {
		b.WriteString(p)
	}
	return b.String()
}
