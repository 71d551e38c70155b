package server

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// CatalogProduct is a product as the development server stores it
type CatalogProduct struct {
	ASIN       string   `json:"asin"`
	Title      string   `json:"title"`
	Group      string   `json:"group"`
	Categories []string `json:"categories"`
	AvgRating  float64  `json:"avg_rating"`
	SalesRank  int      `json:"salesrank"`
}

// Catalog is an in-memory product catalog
type Catalog struct {
	products []CatalogProduct
	byASIN   map[string]int
	mu       sync.RWMutex
}

// NewCatalog creates a catalog holding the given products
func NewCatalog(products []CatalogProduct) *Catalog {
	c := &Catalog{byASIN: make(map[string]int)}
	for _, p := range products {
		c.Add(p)
	}
	return c
}

// LoadCatalog reads a JSON array of products from path
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	var products []CatalogProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	for i, p := range products {
		if strings.TrimSpace(p.ASIN) == "" {
			return nil, fmt.Errorf("catalog %s: product %d has no asin", path, i)
		}
	}
	return NewCatalog(products), nil
}

// Add inserts or replaces a product
func (c *Catalog) Add(p CatalogProduct) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.byASIN[p.ASIN]; ok {
		c.products[i] = p
		return
	}
	c.byASIN[p.ASIN] = len(c.products)
	c.products = append(c.products, p)
}

// Get looks a product up by ASIN
func (c *Catalog) Get(asin string) (CatalogProduct, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byASIN[asin]
	if !ok {
		return CatalogProduct{}, false
	}
	return c.products[i], true
}

// Len returns the number of products
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// scored pairs a name or product with its match score
type scored struct {
	name  string
	index int
	score float64
}

// MatchTitles returns products whose title shares terms with the query,
// best match first
func (c *Catalog) MatchTitles(terms []string, limit int) []CatalogProduct {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var hits []scored
	for i, p := range c.products {
		if s := overlap(terms, tokenize(p.Title)); s > 0 {
			hits = append(hits, scored{index: i, score: s})
		}
	}
	sortScored(hits)

	out := make([]CatalogProduct, 0, min(limit, len(hits)))
	for _, h := range hits {
		if len(out) == limit {
			break
		}
		out = append(out, c.products[h.index])
	}
	return out
}

// MatchCategories returns category names sharing terms with the query
func (c *Catalog) MatchCategories(terms []string, limit int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var hits []scored
	for _, p := range c.products {
		for _, cat := range p.Categories {
			if seen[cat] {
				continue
			}
			seen[cat] = true
			if s := overlap(terms, tokenize(cat)); s > 0 {
				hits = append(hits, scored{name: cat, score: s})
			}
		}
	}
	return topNames(hits, limit)
}

// MatchGroups returns product group names sharing terms with the query
func (c *Catalog) MatchGroups(terms []string, limit int) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var hits []scored
	for _, p := range c.products {
		if p.Group == "" || seen[p.Group] {
			continue
		}
		seen[p.Group] = true
		if s := overlap(terms, tokenize(p.Group)); s > 0 {
			hits = append(hits, scored{name: p.Group, score: s})
		}
	}
	return topNames(hits, limit)
}

// InCategories returns up to limit products belonging to any of the categories
func (c *Catalog) InCategories(categories []string, limit int) []CatalogProduct {
	want := make(map[string]bool, len(categories))
	for _, cat := range categories {
		want[cat] = true
	}
	return c.filter(limit, func(p CatalogProduct) bool {
		for _, cat := range p.Categories {
			if want[cat] {
				return true
			}
		}
		return false
	})
}

// InGroups returns up to limit products belonging to any of the groups
func (c *Catalog) InGroups(groups []string, limit int) []CatalogProduct {
	want := make(map[string]bool, len(groups))
	for _, g := range groups {
		want[g] = true
	}
	return c.filter(limit, func(p CatalogProduct) bool {
		return want[p.Group]
	})
}

func (c *Catalog) filter(limit int, keep func(CatalogProduct) bool) []CatalogProduct {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []CatalogProduct
	for _, p := range c.products {
		if len(out) == limit {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func topNames(hits []scored, limit int) []string {
	sortScored(hits)
	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits {
		if len(out) == limit {
			break
		}
		out = append(out, h.name)
	}
	return out
}

// sortScored orders by score, keeping insertion order for ties
func sortScored(hits []scored) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
}

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true, "for": true,
	"to": true, "in": true, "on": true, "me": true, "my": true, "i": true,
	"some": true, "any": true, "about": true, "with": true, "is": true,
	"show": true, "find": true, "want": true, "looking": true, "please": true,
}

// tokenize lowercases text and splits it into search terms
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := fields[:0]
	for _, f := range fields {
		if len(f) < 2 || stopWords[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// overlap returns the fraction of query terms found in the candidate terms
func overlap(query, candidate []string) float64 {
	if len(query) == 0 || len(candidate) == 0 {
		return 0
	}
	set := make(map[string]bool, len(candidate))
	for _, t := range candidate {
		set[t] = true
	}
	hits := 0
	for _, t := range query {
		if set[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}
