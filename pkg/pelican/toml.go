package pelican

import (
	"github.com/pelletier/go-toml/v2"
)

// RenderTOML serializes the frontmatter as a "+++" delimited TOML block, the
// native frontmatter syntax of Hugo. Scalars become strings and lists
// become string arrays.
func RenderTOML(fm FrontMatter) (string, error) {
	doc := make(map[string]any, len(fm))
	for k, v := range fm {
		if v.Kind == KindList {
			doc[k] = v.List
			continue
		}
		doc[k] = v.Scalar
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return "+++\n" + string(data) + "+++\n", nil
}
