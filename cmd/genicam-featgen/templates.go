package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":      func(a, b string) string { return a + b },
	"quote":       func(s string) string { return fmt.Sprintf("%q", s) },
	"symbolConst": symbolConst,
	"sentence":    sentence,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		namesTmpl +
		symbolsTmpl +
		definitionsTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// tableData holds pre-computed data for all templates.
type tableData struct {
	Package    string
	Version    string
	Categories []RawCategoryDef
	Enums      []RawFeatureDef
	Defs       []defData
}

// defData holds one row of the definitions table.
type defData struct {
	Name        string
	Category    string
	KindExpr    string
	AccessExpr  string
	Unit        string
	Description string
	Symbols     []string
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by genicam-featgen. DO NOT EDIT.

package {{.Package}}

import "github.com/genicam-go/genicam/pkg/feature"

// Version is the SFNC version the table follows.
const Version = {{quote .Version}}

// Categories.
const (
{{- range .Categories}}
{{concat "Category" .Name}} = {{quote .Name}}
{{- end}}
)
{{end}}`

const namesTmpl = `{{define "names"}}
{{- range .Categories}}
// {{sentence .Description}}
const (
{{- range .Features}}
{{.Name}} = {{quote .Name}}
{{- end}}
)
{{end}}
{{- end}}`

const symbolsTmpl = `{{define "symbols"}}
{{- range .Enums}}
{{- $feature := .Name}}
// {{.Name}} symbols.
const (
{{- range .Symbols}}
{{symbolConst $feature .}} = {{quote .}}
{{- end}}
)
{{end}}
{{- end}}`

const definitionsTmpl = `{{define "definitions"}}
var definitions = []Definition{
{{- range .Defs}}
{{- $name := .Name}}
{Name: {{.Name}}, Category: {{concat "Category" .Category}}, Kind: {{.KindExpr}}, Access: {{.AccessExpr}}
{{- if .Unit}}, Unit: {{quote .Unit}}{{end}}
{{- if .Symbols}}, Symbols: []string{
{{- range $i, $s := .Symbols}}{{if $i}}, {{end}}{{symbolConst $name $s}}{{end -}}
}{{end}}, Description: {{quote .Description}}},
{{- end}}
}
{{end}}`
