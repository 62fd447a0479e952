package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/genicam-go/genicam/pkg/feature"
)

// GenerateTable renders the Go source of the sfnc package for table.
func GenerateTable(t *RawTable, pkg string) (string, error) {
	data := tableData{
		Package:    pkg,
		Version:    t.Version,
		Categories: t.Categories,
	}

	idents := make(map[string]string)
	claim := func(ident, owner string) error {
		if prev, ok := idents[ident]; ok {
			return fmt.Errorf("identifier %s generated for both %s and %s", ident, prev, owner)
		}
		idents[ident] = owner
		return nil
	}

	for _, cat := range t.Categories {
		if err := claim("Category"+cat.Name, "category "+cat.Name); err != nil {
			return "", err
		}
		for _, f := range cat.Features {
			if err := claim(f.Name, "feature "+f.Name); err != nil {
				return "", err
			}
			kind, err := feature.ParseKind(f.Kind)
			if err != nil {
				return "", fmt.Errorf("feature %s: %w", f.Name, err)
			}
			access, err := feature.ParseAccessMode(f.Access)
			if err != nil {
				return "", fmt.Errorf("feature %s: %w", f.Name, err)
			}
			if kind == feature.KindEnumeration {
				data.Enums = append(data.Enums, f)
				for _, s := range f.Symbols {
					if err := claim(symbolConst(f.Name, s), "symbol "+f.Name+"."+s); err != nil {
						return "", err
					}
				}
			}
			data.Defs = append(data.Defs, defData{
				Name:        f.Name,
				Category:    cat.Name,
				KindExpr:    "feature.Kind" + kind.String(),
				AccessExpr:  accessConst(access),
				Unit:        f.Unit,
				Description: sentence(f.Description),
				Symbols:     f.Symbols,
			})
		}
	}

	var b strings.Builder
	renderTemplate(&b, "header", data)
	renderTemplate(&b, "names", data)
	renderTemplate(&b, "symbols", data)
	renderTemplate(&b, "definitions", data)
	return b.String(), nil
}

// accessConst returns the pkg/feature constant for an access mode.
func accessConst(a feature.AccessMode) string {
	switch a {
	case feature.AccessReadOnly:
		return "feature.AccessReadOnly"
	case feature.AccessWriteOnly:
		return "feature.AccessWriteOnly"
	case feature.AccessReadWrite:
		return "feature.AccessReadWrite"
	default:
		return "feature.AccessUnavailable"
	}
}

// symbolConst returns the constant name of an enumeration symbol, e.g.
// "PixelFormat", "Mono8" -> "PixelFormatMono8".
func symbolConst(featureName, symbol string) string {
	return featureName + symbol
}

// sentence capitalizes s and terminates it with a period.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	if !strings.HasSuffix(s, ".") {
		r = append(r, '.')
	}
	return string(r)
}
