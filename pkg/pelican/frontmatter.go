package pelican

import (
	"slices"
	"strings"
)

// RawFrontMatter holds the Pelican fields exactly as found: key case is
// preserved and values are trimmed. Later duplicates overwrite earlier ones.
type RawFrontMatter map[string]string

// ValueKind distinguishes the two shapes a normalized field can take.
type ValueKind int

const (
	// KindScalar is a single string value.
	KindScalar ValueKind = iota
	// KindList is an ordered list of strings.
	KindList
)

// Value is a normalized frontmatter value: either a scalar or a list.
type Value struct {
	Kind   ValueKind
	Scalar string
	List   []string
}

// Scalar returns a scalar Value.
func Scalar(s string) Value {
	return Value{Kind: KindScalar, Scalar: s}
}

// List returns a list Value holding items in the given order.
func List(items ...string) Value {
	return Value{Kind: KindList, List: items}
}

// String flattens the value back into its Pelican form. Lists are joined
// with ", ".
func (v Value) String() string {
	if v.Kind == KindList {
		return strings.Join(v.List, ", ")
	}
	return v.Scalar
}

// FrontMatter is the normalized field set, keyed by lower-cased field name.
// It never contains a "slug" key.
type FrontMatter map[string]Value

// Keys returns the field names in ascending lexicographic order. This is the
// order used by every renderer.
func (fm FrontMatter) Keys() []string {
	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ParseFrontMatter reads "Key: value" lines into a RawFrontMatter.
// Each line is split at the first colon only. The value is trimmed, the key
// is not. A line without a colon becomes a key with an empty value.
// It never fails and returns an empty map for empty input.
func ParseFrontMatter(lines []string) RawFrontMatter {
	fields := make(RawFrontMatter, len(lines))
	for _, line := range lines {
		key, value, found := strings.Cut(line, ":")
		if !found {
			fields[line] = ""
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}

// Normalize maps Pelican fields onto their Jekyll/Gatsby names:
//
//	tags     -> tags        (list)
//	category -> categories  (list)
//	slug     -> dropped
//	other    -> lower-cased key, scalar value
//
// Raw keys are visited in sorted order so that keys differing only in case
// resolve the same way on every run.
func Normalize(raw RawFrontMatter) FrontMatter {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make(FrontMatter, len(raw))
	for _, k := range keys {
		v := raw[k]
		switch key := strings.ToLower(k); key {
		case "tags":
			fields["tags"] = List(splitList(v)...)
		case "category":
			fields["categories"] = List(splitList(v)...)
		case "slug":
			// dropped, Jekyll derives it from the file name
		default:
			fields[key] = Scalar(v)
		}
	}
	return fields
}

func splitList(s string) []string {
	items := strings.Split(s, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}

// Render serializes the frontmatter as a "---" delimited YAML block.
// Scalars are written as key: "value", lists as a key line followed by
// one `- "item"` line per element. Every line ends with a newline.
func (fm FrontMatter) Render() string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, k := range fm.Keys() {
		v := fm[k]
		switch v.Kind {
		case KindList:
			b.WriteString(k)
			b.WriteString(":\n")
			for _, item := range v.List {
				b.WriteString(`- "`)
				b.WriteString(item)
				b.WriteString("\"\n")
			}
		default:
			b.WriteString(k)
			b.WriteString(`: "`)
			b.WriteString(v.Scalar)
			b.WriteString("\"\n")
		}
	}
	b.WriteString("---\n")
	return b.String()
}
