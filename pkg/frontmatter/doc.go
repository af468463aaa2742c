// Package frontmatter reads and writes YAML frontmatter in Markdown files.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end of the document. The content between the delimiters is YAML; the rest
// of the file is the body.
//
//	var meta map[string]any
//	body, err := frontmatter.ParseFile("post.md", &meta)
//	if errors.Is(err, frontmatter.ErrInvalidYAML) {
//		// the header exists but is not valid YAML
//	}
//
// Both LF and CRLF line endings are accepted.
package frontmatter
