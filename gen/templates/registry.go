// Package templates is the default template registry: an embedded set of
// Java, Kotlin and resource templates, one per feature.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/syssam/strata/gen"
	"github.com/syssam/strata/naming"
)

//go:embed files
var files embed.FS

// Registry resolves template identities against the embedded template
// set. It implements gen.Renderer and is safe for concurrent use after
// construction.
type Registry struct {
	templates *template.Template
}

// New parses the embedded templates into a registry. Parsing cannot fail
// at runtime unless the embedded set itself is broken, so failures
// panic.
func New() *Registry {
	t := template.New("strata").Funcs(template.FuncMap{
		"pascal":   naming.Pascal,
		"camel":    naming.Camel,
		"snake":    naming.Snake,
		"plural":   naming.Pluralize,
		"singular": naming.Singularize,
		"lower":    strings.ToLower,
		"gql":      gqlType,
		"oas":      oasType,
	})
	t, err := t.ParseFS(files, "files/*.tmpl")
	if err != nil {
		panic(fmt.Sprintf("strata: parsing embedded templates: %v", err))
	}
	return &Registry{templates: t}
}

// Render implements gen.Renderer.
func (r *Registry) Render(id gen.TemplateID, view *gen.View) (string, error) {
	name := key(id)
	if r.templates.Lookup(name) == nil {
		return "", gen.NewTemplateNotFoundError(id)
	}
	var b strings.Builder
	if err := r.templates.ExecuteTemplate(&b, name, view); err != nil {
		return "", fmt.Errorf("strata: rendering %s: %w", name, err)
	}
	return b.String(), nil
}

// gqlType maps a mapped language type to a GraphQL scalar.
func gqlType(t string) string {
	switch t {
	case "Byte", "Short", "Integer", "Int", "Long":
		return "Int"
	case "Float", "Double", "BigDecimal":
		return "Float"
	case "Boolean":
		return "Boolean"
	default:
		return "String"
	}
}

// oasType maps a mapped language type to an OpenAPI schema type.
func oasType(t string) string {
	switch t {
	case "Byte", "Short", "Integer", "Int", "Long":
		return "integer"
	case "Float", "Double", "BigDecimal":
		return "number"
	case "Boolean":
		return "boolean"
	default:
		return "string"
	}
}

// key maps a template identity to the embedded template name. Templates
// are named by their base file name, so features are disambiguated by a
// language prefix baked into the file name.
func key(id gen.TemplateID) string {
	if id.Lang == "" {
		return id.Feature + ".tmpl"
	}
	return string(id.Lang) + "_" + id.Feature + ".tmpl"
}
