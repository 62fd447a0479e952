package sfnc

import (
	"maps"
	"slices"

	"github.com/genicam-go/genicam/pkg/feature"
)

// Definition describes a standard feature.
type Definition struct {
	Name     string
	Category string
	Kind     feature.Kind

	// Access is the nominal access mode. Devices report the live mode,
	// which may be more restrictive.
	Access feature.AccessMode

	Unit        string
	Symbols     []string
	Description string
}

var byName = func() map[string]int {
	m := make(map[string]int, len(definitions))
	for i, d := range definitions {
		m[d.Name] = i
	}
	return m
}()

// Lookup returns the definition of a standard feature.
func Lookup(name string) (Definition, bool) {
	i, ok := byName[name]
	if !ok {
		return Definition{}, false
	}
	d := definitions[i]
	d.Symbols = slices.Clone(d.Symbols)
	return d, true
}

// IsStandard reports whether name is a known standard feature.
func IsStandard(name string) bool {
	_, ok := byName[name]
	return ok
}

// Definitions returns all definitions in table order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		d.Symbols = slices.Clone(d.Symbols)
		out[i] = d
	}
	return out
}

// InCategory returns the names of the features of a category in table
// order.
func InCategory(category string) []string {
	var names []string
	for _, d := range definitions {
		if d.Category == category {
			names = append(names, d.Name)
		}
	}
	return names
}

// Categories returns the category names, sorted.
func Categories() []string {
	set := make(map[string]struct{})
	for _, d := range definitions {
		set[d.Category] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Conforms reports whether a device descriptor matches the standard
// definition of the same name. Non-standard features always conform.
func Conforms(d feature.Descriptor) bool {
	def, ok := Lookup(d.Name)
	if !ok {
		return true
	}
	return def.Kind == d.Kind
}
