package splitter

import (
	"regexp"
	"strings"
)

// DefaultLookahead bounds how many lines past an enum body the extractor
// scans for an impl block before giving up.
const DefaultLookahead = 200

var (
	enumDeclPattern = regexp.MustCompile(`^\s*pub enum (\w+)`)
	implPattern     = regexp.MustCompile(`^\s*impl (\w+)`)
	nextDeclPattern = regexp.MustCompile(`^\s*pub (?:enum|struct) `)
)

// Extractor scans raw source text and recovers one span per enum
// declaration. It is a line-oriented textual scanner, not a parser: body
// extents are found by counting brace characters per line, so braces inside
// string literals or comments corrupt the count. The input is assumed
// well-formed (it compiles), which makes the heuristic acceptable.
type Extractor struct {
	lookahead int
}

// NewExtractor creates an extractor with the given impl-block lookahead
// window, in lines. Non-positive values fall back to DefaultLookahead.
func NewExtractor(lookahead int) *Extractor {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return &Extractor{lookahead: lookahead}
}

// Extract scans content top to bottom and returns one Block per enum
// declaration, in file order. Category is left empty; the categorizer fills
// it in later. Each input line belongs to at most one block: the cursor only
// advances, and a block's leading-comment walk never crosses into the span
// consumed by a previous block.
func (e *Extractor) Extract(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := []Block{}

	// First line not yet claimed by an emitted block.
	floor := 0

	i := 0
	for i < len(lines) {
		m := enumDeclPattern.FindStringSubmatch(lines[i])
		if m == nil {
			// Declaration keyword without an extractable identifier is
			// skipped like any other line.
			i++
			continue
		}
		name := m[1]

		start := e.walkBack(lines, i, floor)
		bodyEnd := scanBalanced(lines, i)
		end := e.extendImpl(lines, name, bodyEnd)

		blocks = append(blocks, Block{
			Name:      name,
			Content:   strings.Join(lines[start:end+1], "\n"),
			StartLine: start + 1,
			EndLine:   end + 1,
		})

		i = end + 1
		floor = i
	}

	return blocks
}

// walkBack absorbs the contiguous run of doc comments, attributes and blank
// lines above the declaration, then trims blank lines off the head so a
// block never starts with empty lines. floor caps the walk at the first line
// not consumed by a previous block.
func (e *Extractor) walkBack(lines []string, decl, floor int) int {
	start := decl
	for start > floor && isLeadingLine(lines[start-1]) {
		start--
	}
	for start < decl && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	return start
}

// extendImpl looks past the enum body for an impl block scoped to the same
// identifier. The scan is bounded by the lookahead window and stops early at
// the next enum or struct declaration, which means the enum has no impl of
// its own. An impl for a different identifier is scanned over, not a
// stopper: the matching impl may still follow it inside the window, and the
// resulting span is contiguous, so anything between the enum and its impl
// rides along.
func (e *Extractor) extendImpl(lines []string, name string, bodyEnd int) int {
	limit := bodyEnd + e.lookahead
	if limit > len(lines)-1 {
		limit = len(lines) - 1
	}

	for j := bodyEnd + 1; j <= limit; j++ {
		if m := implPattern.FindStringSubmatch(lines[j]); m != nil {
			if m[1] == name {
				return scanBalanced(lines, j)
			}
			// Skip the foreign impl's body so nothing inside it can be
			// mistaken for a declaration or impl line.
			j = scanBalanced(lines, j)
			continue
		}
		if nextDeclPattern.MatchString(lines[j]) {
			return bodyEnd
		}
	}
	return bodyEnd
}

// scanBalanced returns the index of the line on which the brace count first
// returns to zero after having gone positive, starting the count at from.
// If the braces never balance before end of file, the final line is
// returned, clamping the span rather than scanning unbounded.
func scanBalanced(lines []string, from int) int {
	depth := 0
	opened := false
	for j := from; j < len(lines); j++ {
		opens := strings.Count(lines[j], "{")
		closes := strings.Count(lines[j], "}")
		if opens > 0 {
			opened = true
		}
		depth += opens - closes
		if opened && depth <= 0 && closes > 0 {
			return j
		}
	}
	return len(lines) - 1
}

// isLeadingLine reports whether a line may belong to a declaration's leading
// span: a doc comment, an attribute, or a blank line.
func isLeadingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "///") ||
		strings.HasPrefix(trimmed, "#[")
}
