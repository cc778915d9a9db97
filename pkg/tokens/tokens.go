// Package tokens flattens nested theme token files into CSS custom
// properties.
//
// A token file is a JSON, YAML or TOML document of nested tables. Every
// scalar leaf becomes one property named after its path:
//
//	color:
//	  brand:
//	    primary: "#ff3e00"
//
// yields --color-brand-primary: #ff3e00. A table holding a "value" or
// "$value" key is treated as a single design token and its other keys
// (description, type, ...) are ignored.
package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultSelector is the CSS selector the properties are declared under.
const DefaultSelector = ":root"

// Token is one flattened custom property.
type Token struct {
	Name  string
	Value string
}

// Load reads path and parses it according to its extension.
func Load(fsys types.FS, path string) (map[string]interface{}, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path).WithPath(path)
	}
	tree, perr := parse(data, filepath.Ext(path))
	if perr != nil {
		return nil, perr.WithPath(path)
	}
	if err := Validate(tree); err != nil {
		return nil, errors.EnsurePath(err, path)
	}
	return tree, nil
}

// Parse decodes data in the format named by ext (".json", ".yaml", ".yml"
// or ".toml").
func Parse(data []byte, ext string) (map[string]interface{}, error) {
	tree, err := parse(data, ext)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func parse(data []byte, ext string) (map[string]interface{}, *errors.BarrelError) {
	tree := map[string]interface{}{}

	var err error
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&tree)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tree)
	case ".toml":
		err = toml.Unmarshal(data, &tree)
	default:
		return nil, errors.Newf(errors.ErrConfig, "unsupported token file extension %q", ext).
			WithDetail("extension", ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to parse token file")
	}
	return tree, nil
}

// Flatten walks tree and returns one token per leaf, sorted by name. Names
// are the path segments joined with "-", preceded by prefix when set.
func Flatten(tree map[string]interface{}, prefix string) ([]Token, error) {
	var out []Token
	var path []string
	if prefix != "" {
		path = append(path, prefix)
	}
	if err := flatten(tree, path, &out); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	for i := 1; i < len(out); i++ {
		if out[i].Name == out[i-1].Name {
			return nil, errors.Newf(errors.ErrNaming, "token name %q is defined twice", out[i].Name).
				WithDetail("name", out[i].Name)
		}
	}
	return out, nil
}

func flatten(node map[string]interface{}, path []string, out *[]Token) error {
	for key, value := range node {
		segment := strings.Join(strings.Fields(key), "-")
		if segment == "" {
			return errors.Newf(errors.ErrNaming, "empty token key under %q", strings.Join(path, "-")).
				WithDetail("name", strings.Join(path, "-"))
		}
		next := append(append([]string(nil), path...), segment)

		child, isTable := asTable(value)
		if !isTable {
			*out = append(*out, Token{Name: strings.Join(next, "-"), Value: formatValue(value)})
			continue
		}
		if leaf, ok := tokenValue(child); ok {
			*out = append(*out, Token{Name: strings.Join(next, "-"), Value: formatValue(leaf)})
			continue
		}
		if err := flatten(child, next, out); err != nil {
			return err
		}
	}
	return nil
}

func asTable(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		table := make(map[string]interface{}, len(v))
		for key, val := range v {
			table[fmt.Sprint(key)] = val
		}
		return table, true
	}
	return nil, false
}

func tokenValue(table map[string]interface{}) (interface{}, bool) {
	if v, ok := table["$value"]; ok {
		return v, true
	}
	if v, ok := table["value"]; ok {
		if _, nested := asTable(v); !nested {
			return v, true
		}
	}
	return nil, false
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// RenderCSS declares tokens as custom properties under selector, preceded by
// the generated-file header.
func RenderCSS(tokens []Token, selector string) string {
	if selector == "" {
		selector = DefaultSelector
	}

	var sb strings.Builder
	sb.WriteString(types.CSSHeader)
	sb.WriteString("\n\n")
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, token := range tokens {
		fmt.Fprintf(&sb, "  --%s: %s;\n", token.Name, token.Value)
	}
	sb.WriteString("}\n")
	return sb.String()
}
