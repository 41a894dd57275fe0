// Package extract scans object bodies for wikilinks and citation brackets.
//
// Both scanners are pure: they take a text snapshot and return freshly
// allocated links, never erroring on malformed input. Partial or unbalanced
// bracket sequences simply do not match.
package extract

import (
	"regexp"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

var (
	// [[target]] or [[target|display]]. The target run excludes ']' and '|',
	// so nested "[[a[[b]]" resolves at the first closing "]]" and leftover
	// characters stay literal. A backslash before the brackets is not
	// honored as an escape; callers needing literal brackets must
	// pre-process the text.
	wikiLinkRe = regexp.MustCompile(`\[\[([^\]|]*)(?:\|([^\]]*))?\]\]`)

	// Bracket groups that may carry citations: any non-']' run.
	citeBracketRe = regexp.MustCompile(`\[([^\]]*)\]`)

	// Citation keys are ASCII: a key stops at the first character outside
	// this set, including any non-ASCII rune.
	citeKeyRe = regexp.MustCompile(`@([A-Za-z0-9_:.\-]+)`)
)

// contextWindow runes kept on each side of a match.
const contextWindow = 30

// ParseWikiLinks returns every wikilink in text, in document order.
// Targets and display text are trimmed; a whitespace-only target still
// yields a link with an empty target id. Links inside fenced code blocks
// are parsed like prose.
func ParseWikiLinks(text string) []models.Link {
	matches := wikiLinkRe.FindAllStringSubmatchIndex(text, -1)
	var out []models.Link
	for _, m := range matches {
		link := models.Link{
			TargetID: strings.TrimSpace(text[m[2]:m[3]]),
			Context:  contextAround(text, m[0], m[1]),
			Type:     models.LinkTypeWikilink,
		}
		if m[4] >= 0 {
			link.DisplayText = strings.TrimSpace(text[m[4]:m[5]])
		}
		out = append(out, link)
	}
	return out
}

// ParseCitations returns the citation keys referenced in text, deduplicated
// by first occurrence across the whole input. Bracket groups containing
// "mailto:" and brackets immediately followed by '(' (markdown link syntax)
// are skipped. Context is computed per bracket and shared by every key the
// bracket contains.
func ParseCitations(text string) []models.Link {
	brackets := citeBracketRe.FindAllStringSubmatchIndex(text, -1)
	seen := make(map[string]struct{})
	var out []models.Link
	for _, m := range brackets {
		content := text[m[2]:m[3]]
		if !strings.Contains(content, "@") {
			continue
		}
		if strings.Contains(strings.ToLower(content), "mailto:") {
			continue
		}
		if m[1] < len(text) && text[m[1]] == '(' {
			continue
		}

		ctx := contextAround(text, m[0], m[1])
		for _, k := range citeKeyRe.FindAllStringSubmatch(content, -1) {
			key := k[1]
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, models.Link{
				TargetID: key,
				Context:  ctx,
				Type:     models.LinkTypeCitation,
			})
		}
	}
	return out
}

// contextAround builds the snippet surrounding a match: up to contextWindow
// runes before, the match itself, up to contextWindow runes after. Newlines
// collapse to spaces. The snippet is prefixed with "..." when truncated at
// the start and suffixed with "..." unless it reaches the end of text.
func contextAround(text string, start, end int) string {
	before := []rune(text[:start])
	after := []rune(text[end:])

	truncatedStart := len(before) > contextWindow
	if truncatedStart {
		before = before[len(before)-contextWindow:]
	}
	truncatedEnd := len(after) > contextWindow
	if truncatedEnd {
		after = after[:contextWindow]
	}

	snippet := string(before) + text[start:end] + string(after)
	snippet = collapseNewlines(snippet)

	if truncatedStart {
		snippet = "..." + snippet
	}
	if truncatedEnd {
		snippet += "..."
	}
	return snippet
}

func collapseNewlines(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
