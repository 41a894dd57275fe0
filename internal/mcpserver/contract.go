package mcpserver

// ObjectFormatContract describes the canonical Markdown object format that
// LLM consumers should assume when reading vault objects.
const ObjectFormatContract = `# Ansuz Object Format Contract

Every Markdown object stored in an Ansuz vault follows this structure.

## Structure

` + "```" + `markdown
---
id: stable-identifier               # OPTIONAL – defaults to the path without .md
type: note                          # OPTIONAL – e.g. note, bibtex_entry
title: Human-readable title         # OPTIONAL – defaults to first heading or filename
project: thesis                     # OPTIONAL – project the object belongs to
citation_key: smith2024             # bibtex_entry only – key used by [@citations]
tags:                               # OPTIONAL – YAML list; used for filtering
  - tag-one
  - tag-two
---

Body text in standard Markdown.

Use [[wikilinks]] to reference other objects (without .md extension).
Use [[target|alias]] for display text that differs from the target.
Use [@citation_key] to cite a bibtex entry; [@a; @b] cites several at once.
` + "```" + `

## Rules

1. **YAML frontmatter is optional** but when present the ` + "```" + `---` + "```" + ` fences must
   be the first thing in the file (no leading blank lines).
2. **Identity:** an object is addressed by its ` + "`" + `id` + "`" + ` frontmatter field, or by
   its path without the ` + "`" + `.md` + "`" + ` extension when no id is set. Wikilinks may also
   target the bare filename stem (e.g. ` + "`" + `[[smith2024]]` + "`" + ` for ` + "`" + `refs/smith2024.md` + "`" + `).
3. **Citations** resolve against objects with ` + "`" + `type: bibtex_entry` + "`" + ` and a
   non-empty ` + "`" + `citation_key` + "`" + `. Keys use letters, digits, and ` + "`" + `_ : . -` + "`" + `.
4. **Wikilinks** use double brackets: ` + "`" + `[[other-object]]` + "`" + `. The target is the
   id or filename stem (no ` + "`" + `.md` + "`" + ` extension, path separators OK: ` + "`" + `[[folder/object]]` + "`" + `).
5. **File paths** end with ` + "`" + `.md` + "`" + ` and use forward slashes.
6. **Encoding** is UTF-8 with a trailing newline.
7. **Tags** are lowercase, kebab-case (e.g. ` + "`" + `project-x` + "`" + `, ` + "`" + `reading-list` + "`" + `).

## Example

` + "```" + `markdown
---
id: zettel-0042
type: note
title: Retrieval notes
project: thesis
tags:
  - reading-list
---

# Retrieval notes

Dense retrieval beats BM25 on this benchmark [@smith2024; @jones2023].

Compare with [[zettel-0041|the previous note]] and [[refs/smith2024]].
` + "```" + `
`
