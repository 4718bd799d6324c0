package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCorpus creates a small two page corpus whose pages link to each
// other, so both estimators should settle near 0.5 for each page.
func writeCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	pages := map[string]string{
		"1.html": `<html><body><a href="2.html">two</a></body></html>`,
		"2.html": `<html><body><a href="1.html">one</a></body></html>`,
	}
	for name, contents := range pages {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRankCmd(t *testing.T) {
	t.Run("text report", func(t *testing.T) {
		var buffer bytes.Buffer

		cmd := NewRootCmd()
		cmd.SetOut(&buffer)
		cmd.SetArgs([]string{"rank", writeCorpus(t), "-n", "2000"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute(): expected nil, got %v", err)
		}

		output := buffer.String()
		for _, expected := range []string{
			"PageRank Results from Sampling (n = 2000)",
			"PageRank Results from Iteration",
			"1.html",
			"2.html",
		} {
			if !strings.Contains(output, expected) {
				t.Errorf("Execute(): expected output to contain %q, got:\n%s", expected, output)
			}
		}
	})

	t.Run("json report", func(t *testing.T) {
		var buffer bytes.Buffer

		cmd := NewRootCmd()
		cmd.SetOut(&buffer)
		cmd.SetArgs([]string{"rank", writeCorpus(t), "-n", "2000", "--json"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute(): expected nil, got %v", err)
		}

		var decoded struct {
			Iterated map[string]float64 `json:"iterated"`
		}
		if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
			t.Fatalf("Unmarshal(): expected nil, got %v", err)
		}

		if v := decoded.Iterated["1.html"]; v < 0.49 || v > 0.51 {
			t.Errorf("Execute(): expected iterated rank near 0.5, got %v", v)
		}
	})

	t.Run("conflicting format flags", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"rank", writeCorpus(t), "--json", "--markdown"})

		if err := cmd.Execute(); err == nil {
			t.Errorf("Execute(): expected an error, got nil")
		}
	})

	t.Run("invalid damping flag", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"rank", writeCorpus(t), "-d", "1.5"})

		if err := cmd.Execute(); err == nil {
			t.Errorf("Execute(): expected an error, got nil")
		}
	})

	t.Run("sequential run", func(t *testing.T) {
		var buffer bytes.Buffer

		cmd := NewRootCmd()
		cmd.SetOut(&buffer)
		cmd.SetArgs([]string{"rank", writeCorpus(t), "-n", "1000", "--sequential"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute(): expected nil, got %v", err)
		}
	})
}
