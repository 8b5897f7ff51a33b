package docconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/krachkiste/doctools/internal/foundation"
)

// Format selects how settings are rendered.
type Format string

const (
	FormatPython Format = "python"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
)

var formats = foundation.NewNormalizer("format", map[string]Format{
	"python": FormatPython,
	"yaml":   FormatYAML,
	"json":   FormatJSON,
})

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f, err := formats.Normalize(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	return f, nil
}

// Encode writes the settings to w in the given format.
func (s *Settings) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPython:
		return s.encodePython(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode settings as yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode settings as json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// encodePython renders module-level assignments in the order Sphinx documents them.
func (s *Settings) encodePython(w io.Writer) error {
	assignments := []struct {
		name  string
		value any
	}{
		{"project", s.Project},
		{"author", s.Author},
		{"copyright", s.Copyright},
		{"version", s.Version},
		{"release", s.Release},
		{"exclude_patterns", s.ExcludePatterns},
		{"extensions", s.Extensions},
		{"master_doc", s.MasterDoc},
		{"templates_path", s.TemplatesPath},
		{"source_suffix", s.SourceSuffix},
		{"autosectionlabel_prefix_document", s.AutosectionlabelPrefixDocument},
		{"autosectionlabel_maxdepth", s.AutosectionlabelMaxDepth},
		{"intersphinx_mapping", s.IntersphinxMapping},
		{"intersphinx_cache_limit", s.IntersphinxCacheLimit},
		{"extlinks", s.ExtLinks},
		{"breathe_projects", s.BreatheProjects},
		{"breathe_default_project", s.BreatheDefaultProject},
		{"html_theme", s.HTMLTheme},
		{"html_theme_options", s.HTMLThemeOptions},
		{"html_static_path", s.HTMLStaticPath},
	}

	var buf bytes.Buffer
	buf.WriteString("# Generated by doctools. Do not edit.\n")
	for _, a := range assignments {
		literal, err := pyLiteral(a.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", a.name, err)
		}
		fmt.Fprintf(&buf, "%s = %s\n", a.name, literal)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// pyLiteral renders v as a Python expression. Dict keys are sorted.
func pyLiteral(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "None", nil
	case string:
		return strconv.Quote(v), nil
	case bool:
		if v {
			return "True", nil
		}
		return "False", nil
	case int:
		return strconv.Itoa(v), nil
	case []string:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = strconv.Quote(item)
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	case ExtLink:
		return pyTuple(v.URL, v.Caption)
	case IntersphinxTarget:
		return pyTuple(v.URL, v.inventory())
	case map[string]string:
		return pyDict(v)
	case map[string]ExtLink:
		return pyDict(v)
	case map[string]IntersphinxTarget:
		return pyDict(v)
	case map[string]any:
		return pyDict(v)
	default:
		return "", fmt.Errorf("no python literal for %T", v)
	}
}

func pyTuple(items ...any) (string, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		lit, err := pyLiteral(item)
		if err != nil {
			return "", err
		}
		parts[i] = lit
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

func pyDict[V any](m map[string]V) (string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		lit, err := pyLiteral(m[k])
		if err != nil {
			return "", err
		}
		parts = append(parts, strconv.Quote(k)+": "+lit)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func marshalPair(first, second any) ([]byte, error) {
	return json.Marshal([]any{first, second})
}
