package report

import (
	"encoding/json"
	"io"

	"github.com/pagelab/corpusrank/pkg/models"
)

// JSONWriter outputs the report as a single indented JSON object, for
// consumption by other tools.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter{output: output}}
}

type jsonReport struct {
	Corpus     string              `json:"corpus"`
	Damping    float64             `json:"damping"`
	Samples    int                 `json:"samples"`
	Iterations int                 `json:"iterations"`
	Sampled    models.Distribution `json:"sampled"`
	Iterated   models.Distribution `json:"iterated"`
	Agreement  float64             `json:"agreement"`
}

func (w *JSONWriter) Write(result *Result) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(jsonReport{
		Corpus:     result.Corpus,
		Damping:    result.Damping,
		Samples:    result.Samples,
		Iterations: result.Iterations,
		Sampled:    result.Sampled,
		Iterated:   result.Iterated,
		Agreement:  result.Agreement(),
	})
}
