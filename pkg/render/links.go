package render

// linkEntry tracks what is known about one link label. An entry is created
// lazily on first mention, whether that mention is a definition or a
// reference, and consumed once during the resolution pass.
type linkEntry struct {
	// url is the destination from a `[label]: url` definition.
	// Last definition wins when a label is defined more than once.
	url    string
	hasURL bool

	// frag is the index of the placeholder fragment emitted for the most
	// recent reference to this label, or -1 when the label has only been
	// defined. Last reference wins.
	frag    int
	text    string
	isImage bool
}

// linkTable maps labels (case-sensitive, as written) to their entries.
// One table is scoped to a single parse call; it is the side channel
// through which the inline tokenizer defers resolution to the orchestrator.
type linkTable struct {
	entries map[string]*linkEntry
}

func newLinkTable() *linkTable {
	return &linkTable{entries: make(map[string]*linkEntry)}
}

func (t *linkTable) entry(label string) *linkEntry {
	e, ok := t.entries[label]
	if !ok {
		e = &linkEntry{frag: -1}
		t.entries[label] = e
	}
	return e
}

// define records the destination for label. Last write wins.
func (t *linkTable) define(label, url string) {
	e := t.entry(label)
	e.url = url
	e.hasURL = true
}

// refer records a deferred reference to label: the placeholder fragment
// index, the display text, and whether the reference is an image.
func (t *linkTable) refer(label, text string, frag int, isImage bool) {
	e := t.entry(label)
	e.frag = frag
	e.text = text
	e.isImage = isImage
}

// dropRefsAtOrAfter forgets references whose placeholder index is at or
// past mark. Called when the error-collecting mode truncates the output of
// a failed block, so resolution never patches a reused slot.
func (t *linkTable) dropRefsAtOrAfter(mark int) {
	for _, e := range t.entries {
		if e.frag >= mark {
			e.frag = -1
			e.text = ""
			e.isImage = false
		}
	}
}

// resolve back-patches every placeholder whose label has a known
// destination. Labels that were referenced but never defined keep their
// placeholder content, which is the escaped display text, so unresolved
// references degrade to plain text.
func (t *linkTable) resolve(out *fragments) {
	for _, e := range t.entries {
		if !e.hasURL || e.frag < 0 {
			continue
		}
		out.set(e.frag, renderLink(e.url, e.text, e.isImage))
	}
}

// renderLink renders a resolved link or image.
func renderLink(url, text string, isImage bool) string {
	if isImage {
		return `<img src="` + escapeAttr(url) + `" alt="` + escapeAttr(text) + `">`
	}
	return `<a href="` + escapeAttr(url) + `">` + escapeText(text) + `</a>`
}
