package config

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/genicam-go/genicam/pkg/feature"
)

// FeatureInfo describes one feature: metadata, live access mode, current
// value and live constraints. Fields that do not apply are omitted.
type FeatureInfo struct {
	Name        string   `yaml:"-"`
	Kind        string   `yaml:"kind"`
	Access      string   `yaml:"access"`
	DisplayName string   `yaml:"display_name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Tooltip     string   `yaml:"tooltip,omitempty"`
	Visibility  string   `yaml:"visibility"`
	Unit        string   `yaml:"unit,omitempty"`
	Value       any      `yaml:"value,omitempty"`
	Min         any      `yaml:"min,omitempty"`
	Max         any      `yaml:"max,omitempty"`
	Increment   int64    `yaml:"increment,omitempty"`
	Symbols     []string `yaml:"symbols,omitempty"`

	// Error holds the reason a value or constraint could not be read.
	Error string `yaml:"error,omitempty"`
}

// InfoOptions selects the features described by DumpInfo.
type InfoOptions struct {
	feature.FilterOptions
}

// DumpInfo describes every feature matching opts, in map order. Unlike Dump
// it does not stop at unreadable features; the read error is recorded in
// the entry instead.
func DumpInfo(ctx context.Context, m *feature.Map, opts InfoOptions) ([]FeatureInfo, error) {
	nodes := m.Filter(opts.FilterOptions)
	infos := make([]FeatureInfo, 0, len(nodes))
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		infos = append(infos, describe(n))
	}
	return infos, nil
}

func describe(n feature.Node) FeatureInfo {
	info := FeatureInfo{
		Name:        n.Name(),
		Kind:        n.Kind().String(),
		DisplayName: n.DisplayName(),
		Description: n.Description(),
		Tooltip:     n.Tooltip(),
		Visibility:  n.Visibility().String(),
	}

	mode, err := n.AccessMode()
	if err != nil {
		info.Access = feature.AccessUnavailable.String()
		info.Error = err.Error()
		return info
	}
	info.Access = mode.String()

	var errs []error
	keep := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	if v, ok := n.(feature.Valued); ok && mode.CanRead() {
		val, err := v.Value()
		keep(err)
		info.Value = val
	}

	switch node := n.(type) {
	case *feature.Integer:
		r, err := node.Range()
		keep(err)
		if err == nil {
			info.Min, info.Max, info.Increment = r.Min, r.Max, r.Inc
		}
	case *feature.Float:
		info.Unit = node.Unit()
		r, err := node.Range()
		keep(err)
		if err == nil {
			info.Min, info.Max = r.Min, r.Max
		}
	case *feature.Enumeration:
		symbols, err := node.ValidValues()
		keep(err)
		info.Symbols = symbols
	}

	if len(errs) > 0 {
		info.Error = errs[0].Error()
	}
	return info
}

// EncodeInfo writes infos as a YAML mapping from feature name to
// description, in slice order.
func EncodeInfo(w io.Writer, infos []FeatureInfo, opts ...EncodeOption) error {
	o := encodeOptions{header: []string{"GenICam feature information"}}
	for _, opt := range opts {
		opt(&o)
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, HeadComment: headerComment(o.header)}
	for _, info := range infos {
		var body yaml.Node
		if err := body.Encode(info); err != nil {
			return fmt.Errorf("encode %s: %w", info.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: info.Name}
		mapping.Content = append(mapping.Content, key, &body)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
