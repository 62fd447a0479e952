package feature

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Map errors.
var ErrDuplicateFeature = errors.New("duplicate feature name")

// Map is the ordered, read-only collection of the features of one device.
//
// The key set is fixed when the map is built; no method adds or removes
// entries. Values change only through the nodes. Enumerating keys needs no
// locking.
type Map struct {
	nodes []Node
	index map[string]int
}

// MapOption configures NewMap.
type MapOption func(*mapOptions)

type mapOptions struct {
	subscriber Subscriber
	logger     *slog.Logger
}

// WithSubscriber registers a subscriber that observes every write and
// command execution performed through the map's nodes.
func WithSubscriber(sub Subscriber) MapOption {
	return func(o *mapOptions) { o.subscriber = sub }
}

// WithLogger sets the logger used while building the map.
func WithLogger(logger *slog.Logger) MapOption {
	return func(o *mapOptions) { o.logger = logger }
}

// NewMap enumerates the transport's features and wraps every implemented
// feature of a supported kind in a node. Order is device enumeration order.
func NewMap(ctx context.Context, t Transport, opts ...MapOption) (*Map, error) {
	var o mapOptions
	for _, opt := range opts {
		opt(&o)
	}

	descs, err := t.Features(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate features: %w", err)
	}

	m := &Map{
		nodes: make([]Node, 0, len(descs)),
		index: make(map[string]int, len(descs)),
	}

	for _, d := range descs {
		if !d.Implemented {
			continue
		}
		if _, exists := m.index[d.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeature, d.Name)
		}
		node, ok := newNode(d, t, o.subscriber)
		if !ok {
			if o.logger != nil {
				o.logger.Debug("skipping feature of unsupported kind", "feature", d.Name, "kind", d.Kind)
			}
			continue
		}
		m.index[d.Name] = len(m.nodes)
		m.nodes = append(m.nodes, node)
	}

	if o.logger != nil {
		o.logger.Debug("feature map built", "enumerated", len(descs), "features", len(m.nodes))
	}
	return m, nil
}

// Len returns the number of features.
func (m *Map) Len() int {
	return len(m.nodes)
}

// Has reports whether name is in the key set.
func (m *Map) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Get returns the node for name.
func (m *Map) Get(name string) (Node, error) {
	i, ok := m.index[name]
	if !ok {
		return nil, newError(OpLookup, name, ErrUnknownFeature)
	}
	return m.nodes[i], nil
}

// Keys returns all feature names in enumeration order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.nodes))
	for i, n := range m.nodes {
		keys[i] = n.Name()
	}
	return keys
}

// Nodes returns all nodes in enumeration order.
func (m *Map) Nodes() []Node {
	return slices.Clone(m.nodes)
}

// Item is a (name, node) pair.
type Item struct {
	Name string
	Node Node
}

// Items returns all (name, node) pairs in enumeration order.
func (m *Map) Items() []Item {
	items := make([]Item, len(m.nodes))
	for i, n := range m.nodes {
		items[i] = Item{Name: n.Name(), Node: n}
	}
	return items
}

// All iterates over the nodes in enumeration order.
func (m *Map) All() func(yield func(string, Node) bool) {
	return func(yield func(string, Node) bool) {
		for _, n := range m.nodes {
			if !yield(n.Name(), n) {
				return
			}
		}
	}
}

// Valued returns the node for name if it carries a value.
func (m *Map) Valued(name string) (Valued, error) {
	return lookup[Valued](m, name, "valued")
}

// Boolean returns the Boolean node for name.
func (m *Map) Boolean(name string) (*Boolean, error) {
	return lookup[*Boolean](m, name, KindBoolean.String())
}

// Integer returns the Integer node for name.
func (m *Map) Integer(name string) (*Integer, error) {
	return lookup[*Integer](m, name, KindInteger.String())
}

// Float returns the Float node for name.
func (m *Map) Float(name string) (*Float, error) {
	return lookup[*Float](m, name, KindFloat.String())
}

// Enumeration returns the Enumeration node for name.
func (m *Map) Enumeration(name string) (*Enumeration, error) {
	return lookup[*Enumeration](m, name, KindEnumeration.String())
}

// StringNode returns the String node for name.
func (m *Map) StringNode(name string) (*String, error) {
	return lookup[*String](m, name, KindString.String())
}

// Command returns the Command node for name.
func (m *Map) Command(name string) (*Command, error) {
	return lookup[*Command](m, name, KindCommand.String())
}

func lookup[T Node](m *Map, name, want string) (T, error) {
	var zero T
	n, err := m.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := n.(T)
	if !ok {
		return zero, newError(OpLookup, name, fmt.Errorf("%w: %s is %s, not %s", ErrKindMismatch, name, n.Kind(), want))
	}
	return typed, nil
}

// FilterOptions selects nodes in Filter. Empty fields match everything.
type FilterOptions struct {
	// Kinds restricts the result to these kinds.
	Kinds []Kind

	// Access restricts the result to nodes whose live access mode equals
	// one of these modes.
	Access []AccessMode

	// Contains restricts the result to names containing this substring.
	Contains string

	// MaxVisibility hides nodes above this visibility when non-nil.
	MaxVisibility *Visibility
}

// Filter returns the nodes matching opts in enumeration order. Access modes
// are evaluated live; a node whose access mode cannot be read is treated as
// unavailable.
func (m *Map) Filter(opts FilterOptions) []Node {
	var result []Node
	for _, n := range m.nodes {
		if len(opts.Kinds) > 0 && !slices.Contains(opts.Kinds, n.Kind()) {
			continue
		}
		if opts.Contains != "" && !strings.Contains(n.Name(), opts.Contains) {
			continue
		}
		if opts.MaxVisibility != nil && n.Visibility() > *opts.MaxVisibility {
			continue
		}
		if len(opts.Access) > 0 {
			mode, err := n.AccessMode()
			if err != nil {
				mode = AccessUnavailable
			}
			if !slices.Contains(opts.Access, mode) {
				continue
			}
		}
		result = append(result, n)
	}
	return result
}
