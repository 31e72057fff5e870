package tools

import (
	"context"
	"fmt"

	"github.com/mwiater/pkgdocs/internal/render"
)

// GetNPMDocsDefinition describes the npm docs tool to the MCP host.
func GetNPMDocsDefinition() Definition {
	return Definition{
		Name:        GetNPMDocsName,
		Description: "Get documentation and metadata for an npm package from the npm registry.",
		InputSchema: packageNameSchema("The exact name of the npm package, e.g. left-pad or @types/node"),
	}
}

// GetNPMDocs fetches the npm record for the requested package and renders it
// into a single Markdown content block.
func (t *Toolset) GetNPMDocs(ctx context.Context, args map[string]any) ([]ContentPart, error) {
	name, err := packageNameFromArgs(args)
	if err != nil {
		return nil, err
	}

	pkg, err := t.npm.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error fetching npm docs for %q: %w", name, err)
	}

	doc, err := render.NPMDocument(pkg, name)
	if err != nil {
		return nil, err
	}

	return []ContentPart{{Type: "text", Text: doc}}, nil
}
