// Package frontmatter reads the small key/value block at the top of an entry:
//
//	---
//	date: 2025-06-15
//	tags: [daily, reflection]
//	mood: good
//	---
package frontmatter

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// Fields is a decoded frontmatter block
type Fields map[string]any

// Parse splits content into its frontmatter and body. Content without a
// frontmatter block returns nil fields and the whole content as body. A block
// that isn't valid YAML is read line by line as flat "key: value" pairs.
func Parse(content []byte) (Fields, string) {
	block, body, ok := split(content)
	if !ok {
		return nil, string(content)
	}

	var fm Fields
	if err := yaml.Unmarshal(block, &fm); err != nil || fm == nil {
		fm = parseFlat(block)
	}
	return fm, body
}

// split finds the block between a leading "---" line and the next "---" line
func split(content []byte) (block []byte, body string, ok bool) {
	if !bytes.HasPrefix(content, []byte(delim)) {
		return nil, "", false
	}
	nl := bytes.IndexByte(content, '\n')
	if nl < 0 || strings.TrimSpace(string(content[len(delim):nl])) != "" {
		return nil, "", false
	}

	rest := content[nl+1:]
	// closing delimiter right after the opening one: empty block
	if bytes.HasPrefix(rest, []byte(delim)) {
		return nil, strings.TrimLeft(string(rest[len(delim):]), "\r\n"), true
	}
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		return nil, "", false
	}
	block = rest[:end]
	body = strings.TrimLeft(string(rest[end+1+len(delim):]), "\r\n")
	return block, body, true
}

// parseFlat reads "key: value" lines; "[a, b]" values become lists
func parseFlat(block []byte) Fields {
	fm := Fields{}
	for _, line := range strings.Split(string(block), "\n") {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
			var items []any
			for _, item := range strings.Split(value[1:len(value)-1], ",") {
				items = append(items, strings.TrimSpace(item))
			}
			fm[key] = items
			continue
		}
		fm[key] = value
	}
	return fm
}

// String returns a scalar field as text, or "" when absent or empty
func (f Fields) String(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return t.Format("2006-01-02")
	case []any, map[string]any:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// List returns a field as a list of strings. A scalar becomes a one item list.
func (f Fields) List(key string) []string {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		if s := f.String(key); s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ReadField returns one scalar field from the file at path. Any read or parse
// problem yields "".
func ReadField(path, key string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	fm, _ := Parse(content)
	return fm.String(key)
}

// Render writes fields back as a frontmatter block, keys in the given order.
// Empty values are kept so the field can be filled in later.
func Render(keys []string, fields Fields) string {
	var b strings.Builder
	b.WriteString(delim + "\n")
	for _, k := range keys {
		switch v := fields[k].(type) {
		case []string:
			fmt.Fprintf(&b, "%s: [%s]\n", k, strings.Join(v, ", "))
		case nil:
			fmt.Fprintf(&b, "%s:\n", k)
		default:
			fmt.Fprintf(&b, "%s: %v\n", k, v)
		}
	}
	b.WriteString(delim + "\n")
	return b.String()
}
