/*
The crawler package builds the link graph of a corpus: a directory of HTML
documents whose anchors point at each other by file name.

It is the only component that touches the filesystem. The estimators consume
the finished models.LinkGraph and never parse markup themselves.
*/
package crawler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagelab/corpusrank/pkg/models"
)

// Extension of the files that make up the corpus; anything else in the
// directory is ignored.
const Extension = ".html"

/*
Crawl() scans the directory for HTML files and returns the link graph of the
corpus. Each file becomes a page keyed by its file name; its links are the
href targets of its anchor elements, restricted to pages of the corpus.
Links a page has to itself and links to files outside the directory are
dropped, so the returned graph always satisfies models.LinkGraph.Validate:
in particular, a page whose links all point outside the corpus comes out
dangling, which is how the estimators expect it.

A directory without HTML files yields models.ErrEmptyGraph.
*/
func Crawl(dir string) (models.LinkGraph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	graph := models.NewLinkGraph()
	targets := make(map[models.Page][]string)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		page := models.Page(entry.Name())
		links, err := parseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}

		graph.AddPage(page)
		targets[page] = links
	}

	// only keep links that point to other pages of the corpus
	for page, links := range targets {
		for _, link := range links {
			to := models.Page(link)
			if to == page {
				continue
			}
			if _, inCorpus := graph[to]; !inCorpus {
				continue
			}
			graph.AddLink(page, to)
		}
	}

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return graph, nil
}

// parseFile opens path and extracts its anchor targets.
func parseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return extractLinks(f)
}
