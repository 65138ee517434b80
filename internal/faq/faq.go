package faq

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed faq.yml
var defaultCatalog []byte

type Entry struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Catalog is an immutable, ordered list of FAQ entries.
type Catalog struct {
	entries []Entry
}

type catalogFile struct {
	Entries []Entry `yaml:"entries"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file; an empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read faq catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse faq catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Entries))
	for i, e := range file.Entries {
		if e.ID == "" || e.Question == "" {
			return nil, fmt.Errorf("faq entry %d: id and question are required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("faq entry %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
	}
	return &Catalog{entries: file.Entries}, nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Search returns the entries whose question or answer contains query,
// case-insensitively, keeping catalog order. An empty query matches every
// entry. A non-empty category restricts results to that category.
func (c *Catalog) Search(query, category string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	results := make([]Entry, 0)
	for _, e := range c.entries {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Question), q) &&
			!strings.Contains(strings.ToLower(e.Answer), q) {
			continue
		}
		results = append(results, e)
	}
	return results
}

// Categories lists the categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories
}
