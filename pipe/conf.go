package pipe

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"feedpipe/internal/diagnostic"
	"feedpipe/internal/ident"
)

// Diagnostic codes reported by Conf.Validate.
const (
	CodeInvalidDescriptor   = "CONF001"
	CodeUnknownTerminal     = "CONF002"
	CodeAmbiguousDescriptor = "CONF003"
	CodeEmptyDescriptor     = "CONF004"
	CodeLiteralShorthand    = "CONF005"
	CodeRenamedTerminal     = "CONF006"
)

// Conf is a stage's declarative configuration.
type Conf map[string]any

// LoadConf loads and parses a YAML stage configuration from path.
func LoadConf(path string) (Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}

	return ParseConf(data)
}

// ParseConf parses YAML data into a Conf. Empty input gives an empty Conf.
func ParseConf(data []byte) (Conf, error) {
	var raw map[string]any

	// Decoding into Conf would make yaml.v3 decode nested mappings as Conf
	// too, so decode plain maps and convert only the top level.
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse configuration YAML: %w", err)
	}

	if raw == nil {
		return Conf{}, nil
	}

	return Conf(raw), nil
}

// asMap returns v as a plain mapping when it is one, accepting Conf.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Conf:
		return t, true
	default:
		return nil, false
	}
}

// Marshal serializes c to YAML.
func (c Conf) Marshal() ([]byte, error) {
	return yaml.Marshal(map[string]any(c))
}

// Descriptor returns the descriptor stored under key. A scalar stored
// directly under key is shorthand for a literal.
func (c Conf) Descriptor(key string) (Descriptor, bool, error) {
	v, ok := c[key]
	if !ok {
		return Descriptor{}, false, nil
	}

	if m, isMap := asMap(v); isMap {
		d, err := ParseDescriptor(m)
		if err != nil {
			return Descriptor{}, true, fmt.Errorf("%s: %w", key, err)
		}

		return d, true, nil
	}

	if _, isList := v.([]any); isList {
		return Descriptor{}, true, fmt.Errorf("%s: %w: got a list", key, ErrInvalidDescriptor)
	}

	return Literal(v), true, nil
}

// Literal returns the literal value under key, if key holds a value
// descriptor or a scalar.
func (c Conf) Literal(key string) (any, bool) {
	d, ok, err := c.Descriptor(key)
	if !ok || err != nil || d.Kind() != DescriptorValue {
		return nil, false
	}

	v, _ := GetValue(d, nil, nil)

	return v, true
}

// Value resolves the descriptor under key. A missing key resolves to nil.
func (c Conf) Value(key string, loopItem any, terms *Terminals) (any, error) {
	d, ok, err := c.Descriptor(key)
	if err != nil || !ok {
		return nil, err
	}

	v, err := GetValue(d, loopItem, terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return v, nil
}

// List returns the sub-configurations under key. A single mapping is
// treated as a one-element list; non-mapping entries are skipped.
func (c Conf) List(key string) []Conf {
	raw, ok := c[key]
	if !ok {
		return nil
	}

	items, isList := raw.([]any)
	if !isList {
		items = []any{raw}
	}

	out := make([]Conf, 0, len(items))

	for _, it := range items {
		if m, ok := asMap(it); ok {
			out = append(out, Conf(m))
		}
	}

	return out
}

// Validate checks every descriptor in c. terminals lists the terminal names
// the pipeline provides; stage labels the diagnostics.
func (c Conf) Validate(stage string, terminals []string) diagnostic.Diagnostics {
	known := make(map[string]struct{}, len(terminals))
	names := make([]string, 0, len(terminals))

	for _, t := range terminals {
		key := ident.Sanitize(t)
		known[key] = struct{}{}
		names = append(names, key)
	}

	v := validator{stage: stage, known: known, names: names}
	v.walk("", map[string]any(c))

	return v.diags
}

type validator struct {
	stage string
	known map[string]struct{}
	names []string
	diags diagnostic.Diagnostics
}

func (v *validator) walk(path string, node any) {
	if m, ok := asMap(node); ok {
		if len(m) == 0 && path != "" {
			v.diags.AddInfo(CodeEmptyDescriptor,
				"mapping has no value, terminal or subkey and resolves to nil", v.stage, path)
			return
		}

		if IsDescriptor(m) {
			v.check(path, m)
			return
		}

		for k, child := range m {
			v.walk(join(path, k), child)
		}

		return
	}

	if list, ok := node.([]any); ok {
		for i, child := range list {
			v.walk(join(path, strconv.Itoa(i)), child)
		}

		return
	}

	if path != "" {
		v.diags.AddInfo(CodeLiteralShorthand,
			fmt.Sprintf("bare %T is read as a literal value", node), v.stage, path)
	}
}

func (v *validator) check(path string, m map[string]any) {
	d, err := ParseDescriptor(m)
	if err != nil {
		v.diags.AddError(CodeInvalidDescriptor, err.Error(), v.stage, path)
		return
	}

	if d.Ambiguous() {
		v.diags.AddWarning(CodeAmbiguousDescriptor,
			fmt.Sprintf("descriptor has keys %v; only %q is used", d.Keys(), d.Kind().String()),
			v.stage, path)
	}

	if d.Kind() != DescriptorTerminal {
		return
	}

	name, _ := d.Terminal()
	if !ident.IsSafe(name) {
		v.diags.AddInfo(CodeRenamedTerminal,
			fmt.Sprintf("terminal %q is read as %q", name, ident.Sanitize(name)), v.stage, path)
	}

	if _, ok := v.known[ident.Sanitize(name)]; !ok {
		v.diags.AddError(CodeUnknownTerminal, fmt.Sprintf("unknown terminal %q", name),
			v.stage, path, ident.Suggest(ident.Sanitize(name), v.names)...)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
