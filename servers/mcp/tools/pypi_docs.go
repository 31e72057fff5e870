package tools

import (
	"context"
	"fmt"

	"github.com/mwiater/pkgdocs/internal/render"
)

// GetPyPIDocsDefinition describes the PyPI docs tool to the MCP host.
func GetPyPIDocsDefinition() Definition {
	return Definition{
		Name:        GetPyPIDocsName,
		Description: "Get documentation and metadata for a Python package from the PyPI index.",
		InputSchema: packageNameSchema("The exact name of the PyPI package, e.g. requests or flask"),
	}
}

// GetPyPIDocs fetches the PyPI record for the requested package and renders
// it into a single Markdown content block.
func (t *Toolset) GetPyPIDocs(ctx context.Context, args map[string]any) ([]ContentPart, error) {
	name, err := packageNameFromArgs(args)
	if err != nil {
		return nil, err
	}

	project, err := t.pypi.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error fetching pypi docs for %q: %w", name, err)
	}

	doc, err := render.PyPIDocument(project, name)
	if err != nil {
		return nil, err
	}

	return []ContentPart{{Type: "text", Text: doc}}, nil
}
