package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"

	"github.com/yaklabco/mdconv/pkg/mdsrc"
	"github.com/yaklabco/mdconv/pkg/render"
)

// benchmarkDoc is a representative mixed document, repeated to a realistic
// size for each benchmark run.
var benchmarkDoc = strings.Repeat(`# Section heading

A paragraph with *italic*, **bold**, ~~strike~~, an inline `+
	"`code span`"+`, an [immediate link](http://example.com), and a
deferred [reference][ref].

> A quote block with *emphasis* spanning
> several source lines.

<div class="widget">

## Embedded heading

</div>

[ref]: http://example.com/deferred

`, 64)

func BenchmarkConvert(b *testing.B) {
	conv := render.New(render.Options{})
	content := []byte(benchmarkDoc)

	b.SetBytes(int64(len(content)))
	b.ResetTimer()

	for b.Loop() {
		src := mdsrc.New("bench.md", content)
		if _, errs := conv.ConvertSource(src); len(errs) > 0 {
			b.Fatalf("benchmark document failed to parse: %v", errs)
		}
	}
}

// BenchmarkGoldmark renders the same document through goldmark as a
// performance baseline. The two engines implement different dialects, so
// only throughput is comparable, not output.
func BenchmarkGoldmark(b *testing.B) {
	md := goldmark.New()
	content := []byte(benchmarkDoc)

	b.SetBytes(int64(len(content)))
	b.ResetTimer()

	for b.Loop() {
		var buf bytes.Buffer
		if err := md.Convert(content, &buf); err != nil {
			b.Fatalf("goldmark failed: %v", err)
		}
	}
}
