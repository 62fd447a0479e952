package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/genicam-go/genicam/pkg/feature"
)

// Config errors.
var (
	ErrFormat       = errors.New("invalid configuration format")
	ErrFileExists   = errors.New("configuration file already exists")
	ErrFileNotFound = errors.New("configuration file not found")
	ErrDuplicateKey = errors.New("duplicate feature name")
	ErrValueType    = errors.New("unsupported configuration value type")
)

// Entry is one feature value of a snapshot.
type Entry struct {
	Name  string
	Value any
}

// Snapshot is an ordered set of feature name/value pairs. Values are bool,
// int64, float64 or string.
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{index: make(map[string]int)}
}

// Add appends a feature value. Integers are stored as int64 and float32 as
// float64; other types are rejected.
func (s *Snapshot) Add(name string, value any) error {
	if _, dup := s.index[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, name)
	}
	v, err := normalize(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, Value: v})
	return nil
}

// Len returns the number of entries.
func (s *Snapshot) Len() int { return len(s.entries) }

// Get returns the value stored for name.
func (s *Snapshot) Get(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Value, true
}

// Keys returns the feature names in snapshot order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Name
	}
	return keys
}

// Entries returns a copy of the entries in snapshot order.
func (s *Snapshot) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Map returns the entries as an unordered map.
func (s *Snapshot) Map() map[string]any {
	m := make(map[string]any, len(s.entries))
	for _, e := range s.entries {
		m[e.Name] = e.Value
	}
	return m
}

func normalize(v any) (any, error) {
	switch n := v.(type) {
	case bool, int64, float64, string:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float32:
		return float64(n), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrValueType, v)
}

// Dump captures the current value of every feature that is readable and
// writable right now and carries a value. Commands are never included.
// Features whose access mode cannot be queried or whose value cannot be
// read abort the dump.
func Dump(ctx context.Context, m *feature.Map) (*Snapshot, error) {
	snap := NewSnapshot()
	for name, node := range m.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !node.Kind().HasValue() {
			continue
		}
		mode, err := node.AccessMode()
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", name, err)
		}
		if mode != feature.AccessReadWrite {
			continue
		}
		v, err := node.(feature.Valued).Value()
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", name, err)
		}
		if err := snap.Add(name, v); err != nil {
			return nil, fmt.Errorf("dump %s: %w", name, err)
		}
	}
	return snap, nil
}

// Equal reports whether two snapshots hold the same values, ignoring order.
func Equal(a, b *Snapshot) bool {
	return maps.Equal(a.Map(), b.Map())
}
