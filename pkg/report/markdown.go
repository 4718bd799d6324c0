package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs the report in Markdown, for documentation and
// sharing. Built on nao1215/markdown for type-safe tables.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter{output: output}}
}

func (w *MarkdownWriter) Write(result *Result) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("CorpusRank Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Corpus", "`" + result.Corpus + "`"},
			{"Pages", strconv.Itoa(len(result.Iterated))},
			{"Damping factor", formatRank(result.Damping)},
			{"Samples", strconv.Itoa(result.Samples)},
			{"Iterations", strconv.Itoa(result.Iterations)},
			{"L1 distance", formatRank(result.Agreement())},
		},
	})
	md.PlainText("")

	w.writeRanks(md, result)

	return md.Build()
}

// writeRanks writes one table per estimator, pages sorted by name.
func (w *MarkdownWriter) writeRanks(md *markdown.Markdown, result *Result) {
	pages := result.Pages()

	sampled := make([][]string, 0, len(pages))
	iterated := make([][]string, 0, len(pages))
	for _, page := range pages {
		sampled = append(sampled, []string{string(page), formatRank(result.Sampled[page])})
		iterated = append(iterated, []string{string(page), formatRank(result.Iterated[page])})
	}

	md.H2("Sampling")
	md.PlainText("")
	md.Table(markdown.TableSet{Header: []string{"Page", "Rank"}, Rows: sampled})
	md.PlainText("")

	md.H2("Iteration")
	md.PlainText("")
	md.Table(markdown.TableSet{Header: []string{"Page", "Rank"}, Rows: iterated})
}

func formatRank(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
