package property

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML property file. Nested mappings are flattened with
// dots, so
//
//	drush:
//	  root: /var/www
//
// yields "drush.root" = "/var/www". Scalars keep their YAML spelling and
// sequences are joined with commas.
func LoadYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read property file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML is LoadYAML on an in-memory document.
func ParseYAML(data []byte) (map[string]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse property file: %w", err)
	}

	out := make(map[string]string)
	if len(root.Content) == 0 {
		return out, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse property file: top level must be a mapping, got %s", kindName(doc.Kind))
	}
	if err := flatten("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, n *yaml.Node, out map[string]string) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flatten(key, n.Content[i+1], out); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("property %q: sequences may only hold scalars (line %d)", prefix, item.Line)
			}
			items = append(items, item.Value)
		}
		out[prefix] = strings.Join(items, ",")
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			out[prefix] = ""
			return nil
		}
		out[prefix] = n.Value
	case yaml.AliasNode:
		return flatten(prefix, n.Alias, out)
	default:
		return fmt.Errorf("property %q: unsupported YAML node (line %d)", prefix, n.Line)
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
