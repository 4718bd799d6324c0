package report

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/pagelab/corpusrank/pkg/models"
)

func testResult() *Result {
	return &Result{
		Corpus:     "corpus",
		Damping:    0.85,
		Samples:    10000,
		Iterations: 12,
		Sampled:    models.Distribution{"1.html": 0.4981, "2.html": 0.5019},
		Iterated:   models.Distribution{"1.html": 0.5, "2.html": 0.5},
	}
}

func TestResult(t *testing.T) {
	result := testResult()

	t.Run("Pages are sorted", func(t *testing.T) {
		expected := []models.Page{"1.html", "2.html"}
		if pages := result.Pages(); !reflect.DeepEqual(pages, expected) {
			t.Errorf("Pages(): expected %v, got %v", expected, pages)
		}
	})

	t.Run("Agreement is the L1 distance", func(t *testing.T) {
		if agreement := result.Agreement(); math.Abs(agreement-0.0038) > 1e-9 {
			t.Errorf("Agreement(): expected 0.0038, got %v", agreement)
		}
	})
}

func TestTextWriter(t *testing.T) {
	var buffer bytes.Buffer

	if err := NewTextWriter(&buffer).Write(testResult()); err != nil {
		t.Fatalf("Write(): expected nil, got %v", err)
	}

	output := buffer.String()
	for _, expected := range []string{
		"PageRank Results from Sampling (n = 10000)",
		"PageRank Results from Iteration",
		"  1.html: 0.4981",
		"  2.html: 0.5000",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Write(): expected output to contain %q, got:\n%s", expected, output)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var buffer bytes.Buffer

	if err := NewJSONWriter(&buffer).Write(testResult()); err != nil {
		t.Fatalf("Write(): expected nil, got %v", err)
	}

	var decoded jsonReport
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal(): expected nil, got %v", err)
	}

	if decoded.Corpus != "corpus" || decoded.Samples != 10000 {
		t.Errorf("Write(): unexpected header fields in %+v", decoded)
	}
	if decoded.Iterated["1.html"] != 0.5 {
		t.Errorf("Write(): expected iterated rank 0.5, got %v", decoded.Iterated["1.html"])
	}
	if math.Abs(decoded.Agreement-0.0038) > 1e-9 {
		t.Errorf("Write(): expected agreement 0.0038, got %v", decoded.Agreement)
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buffer bytes.Buffer

	if err := NewMarkdownWriter(&buffer).Write(testResult()); err != nil {
		t.Fatalf("Write(): expected nil, got %v", err)
	}

	output := buffer.String()
	for _, expected := range []string{
		"# CorpusRank Report",
		"## Sampling",
		"## Iteration",
		"1.html",
		"0.5019",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Write(): expected output to contain %q, got:\n%s", expected, output)
		}
	}
}
