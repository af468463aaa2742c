// Package pelican converts Pelican-style frontmatter into the YAML
// frontmatter understood by Jekyll, Gatsby and Hugo.
//
// Pelican metadata is not YAML. It is a sequence of "Key: value" lines at the
// top of the file, terminated by the first empty line:
//
//	Title: With Proper TDD, You Get That
//	Date: 2012-07-27 12:00
//	Category: Allgemein, Test Driving
//	Tags: TDD, Testing
//	Slug: with-proper-tdd-you-get-that
//
//	Body text...
//
// Conversion runs in three pure stages:
//
//   - [ParseFrontMatter] splits each line at the first colon into a [RawFrontMatter].
//   - [Normalize] lower-cases keys, turns "tags" and "category" into lists
//     ("category" is renamed to "categories") and drops "slug".
//   - [FrontMatter.Render] emits a "---" delimited block with the keys in
//     ascending order.
//
// [Adapt] wires the stages to an io.Reader and io.Writer and copies the body
// unchanged. [AdaptFile] is the file based wrapper used by the CLI.
//
// # Errors
//
// All failures are marked with one of [ErrOpenSource], [ErrOpenDestination],
// [ErrRead] or [ErrWrite] and can be checked with errors.Is. The message of
// the returned error includes the underlying cause.
//
// Scalar values are wrapped in double quotes verbatim. Embedded quotes are
// not escaped.
package pelican
