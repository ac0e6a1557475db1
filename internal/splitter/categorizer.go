package splitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultFallbackCategory receives every identifier the table does not claim.
const DefaultFallbackCategory = "other"

// patternRule is a compiled glob entry together with the category it routes to.
type patternRule struct {
	label   string
	pattern string
	g       glob.Glob
}

// Categorizer assigns category labels to declaration identifiers. Exact
// entries are resolved through a precomputed inverse index; glob entries are
// tried in order only when no exact entry matches. The categorizer is built
// once per run and is a pure lookup afterwards.
type Categorizer struct {
	exact    map[string]string
	rules    []patternRule
	fallback string
}

// NewCategorizer builds a categorizer from a category table. An identifier
// claimed by more than one category goes to the first label in sorted order,
// so categorization stays deterministic regardless of map iteration. Entries
// containing glob metacharacters are compiled with gobwas/glob; a malformed
// pattern is a configuration error.
func NewCategorizer(table CategoryTable, fallback string) (*Categorizer, error) {
	if fallback == "" {
		fallback = DefaultFallbackCategory
	}

	labels := make([]string, 0, len(table))
	for label := range table {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	c := &Categorizer{
		exact:    make(map[string]string),
		fallback: fallback,
	}

	for _, label := range labels {
		for _, entry := range table[label] {
			if isGlobEntry(entry) {
				g, err := glob.Compile(entry)
				if err != nil {
					return nil, fmt.Errorf("category %q: bad pattern %q: %w", label, entry, err)
				}
				c.rules = append(c.rules, patternRule{label: label, pattern: entry, g: g})
				continue
			}
			if _, claimed := c.exact[entry]; !claimed {
				c.exact[entry] = label
			}
		}
	}

	return c, nil
}

// Categorize returns the label owning name, or the fallback label when no
// entry claims it.
func (c *Categorizer) Categorize(name string) string {
	if label, ok := c.exact[name]; ok {
		return label
	}
	for _, rule := range c.rules {
		if rule.g.Match(name) {
			return rule.label
		}
	}
	return c.fallback
}

// Fallback returns the label used for unclaimed identifiers.
func (c *Categorizer) Fallback() string {
	return c.fallback
}

func isGlobEntry(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}
