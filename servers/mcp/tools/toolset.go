package tools

import (
	"fmt"
	"strings"

	"github.com/mwiater/pkgdocs/internal/appconfig"
	"github.com/mwiater/pkgdocs/internal/registry"
	"github.com/xeipuuv/gojsonschema"
)

// Toolset binds the tool handlers to their registry clients. Clients are
// injected at construction so tests can point them at local servers instead
// of the public registries.
type Toolset struct {
	npm  *registry.NPMClient
	pypi *registry.PyPIClient
}

// New builds a Toolset from the application configuration.
func New(cfg appconfig.Config) *Toolset {
	timeout := cfg.RequestTimeout()
	return &Toolset{
		npm:  registry.NewNPMClient(cfg.NPMBaseURL(), timeout),
		pypi: registry.NewPyPIClient(cfg.PyPIBaseURL(), timeout),
	}
}

// Definitions returns the static capability list in a fixed order.
func Definitions() []Definition {
	return []Definition{
		GetNPMDocsDefinition(),
		GetPyPIDocsDefinition(),
	}
}

// DefinitionFor looks up a tool definition by name.
func DefinitionFor(name string) (Definition, bool) {
	for _, def := range Definitions() {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// HandlerFor returns the handler for a tool name, or nil when unknown.
func (t *Toolset) HandlerFor(name string) Handler {
	switch name {
	case GetNPMDocsName:
		return t.GetNPMDocs
	case GetPyPIDocsName:
		return t.GetPyPIDocs
	default:
		return nil
	}
}

// ValidateArguments checks args against the named tool's declared input
// schema before any network work happens.
func ValidateArguments(name string, args map[string]any) error {
	def, ok := DefinitionFor(name)
	if !ok {
		return fmt.Errorf("unknown tool: %s", name)
	}

	schemaLoader := gojsonschema.NewGoLoader(def.InputSchema)
	documentLoader := gojsonschema.NewGoLoader(args)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return &ArgumentError{Reason: fmt.Sprintf("invalid arguments: %s", strings.Join(errs, ", "))}
}
