package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format uint8

const (
	// FormatYAML keeps snapshot order. It is the default.
	FormatYAML Format = iota

	// FormatTOML sorts keys by feature name.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Ext returns the canonical file extension including the dot.
func (f Format) Ext() string {
	if f == FormatTOML {
		return ".toml"
	}
	return ".yaml"
}

// FormatForPath selects the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: unknown file extension %q", ErrFormat, filepath.Ext(path))
}

// DefaultHeader is the first comment line of every encoded snapshot.
const DefaultHeader = "GenICam feature configuration"

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	header []string
}

// WithHeader adds comment lines to the file header, e.g. the device
// identity and capture time.
func WithHeader(lines ...string) EncodeOption {
	return func(o *encodeOptions) {
		o.header = append(o.header, lines...)
	}
}

// Marshal encodes snap in format f.
func Marshal(snap *Snapshot, f Format, opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, snap, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes snap to w in format f.
//
// Strings are always quoted so that symbols like "Off" or "On" never read
// back as booleans, and floats always carry a decimal point or exponent so
// they read back as floats.
func Encode(w io.Writer, snap *Snapshot, f Format, opts ...EncodeOption) error {
	o := encodeOptions{header: []string{DefaultHeader}}
	for _, opt := range opts {
		opt(&o)
	}

	switch f {
	case FormatYAML:
		return encodeYAML(w, snap, o)
	case FormatTOML:
		return encodeTOML(w, snap, o)
	}
	return fmt.Errorf("%w: %v", ErrFormat, f)
}

// Decode parses a snapshot in format f. Unknown feature names are kept;
// whether they exist is decided when the snapshot is applied.
func Decode(r io.Reader, f Format) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	switch f {
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	}
	return nil, fmt.Errorf("%w: %v", ErrFormat, f)
}

// Unmarshal parses data in format f.
func Unmarshal(data []byte, f Format) (*Snapshot, error) {
	return Decode(bytes.NewReader(data), f)
}

// commentBreaks flattens line breaks so that device-provided header text
// such as a user id stays inside its comment line.
var commentBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func headerComment(lines []string) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("# ")
		b.WriteString(commentBreaks.Replace(l))
	}
	return b.String()
}

// --- YAML ---

func encodeYAML(w io.Writer, snap *Snapshot, o encodeOptions) error {
	mapping := &yaml.Node{Kind: yaml.MappingNode, HeadComment: headerComment(o.header)}
	for _, e := range snap.entries {
		value, err := yamlScalar(e.Value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name}
		mapping.Content = append(mapping.Content, key, value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func yamlScalar(v any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch x := v.(type) {
	case bool:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(x)
	case int64:
		n.Tag, n.Value = "!!int", strconv.FormatInt(x, 10)
	case float64:
		n.Tag, n.Value = "!!float", yamlFloat(x)
	case string:
		n.Tag, n.Value, n.Style = "!!str", x, yaml.DoubleQuotedStyle
	default:
		return nil, fmt.Errorf("%w: %T", ErrValueType, v)
	}
	return n, nil
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func decodeYAML(data []byte) (*Snapshot, error) {
	snap := NewSnapshot()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if root.Kind == 0 {
		return snap, nil // empty document
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: expected a document", ErrFormat)
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of feature names to values", ErrFormat, doc.Line)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: feature name must be a scalar", ErrFormat, key.Line)
		}
		v, err := yamlValue(value)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %w", ErrFormat, value.Line, key.Value, err)
		}
		if err := snap.Add(key.Value, v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, key.Line, err)
		}
	}
	return snap, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, errors.New("nested values are not supported")
	}
	switch n.ShortTag() {
	case "!!null":
		return nil, errors.New("null value")
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		err := n.Decode(&i)
		return i, err
	case "!!float":
		var f float64
		err := n.Decode(&f)
		return f, err
	default:
		return n.Value, nil
	}
}

// --- TOML ---

func encodeTOML(w io.Writer, snap *Snapshot, o encodeOptions) error {
	data, err := toml.Marshal(snap.Map())
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if _, err := io.WriteString(w, headerComment(o.header)+"\n\n"); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func decodeTOML(data []byte) (*Snapshot, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %w", ErrFormat, row, col, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	snap := NewSnapshot()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		switch v := m[name].(type) {
		case bool, int64, float64, string:
			if err := snap.Add(name, v); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFormat, err)
			}
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: %s: nested values are not supported", ErrFormat, name)
		default:
			return nil, fmt.Errorf("%w: %s: unsupported value %T", ErrFormat, name, v)
		}
	}
	return snap, nil
}
