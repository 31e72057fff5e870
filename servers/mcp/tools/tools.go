package tools

import "context"

// Definition describes the metadata the MCP server exposes for a tool.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// ContentPart represents a piece of data returned from a tool invocation.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Handler executes a tool using the provided arguments and returns content
// for the MCP host. The context bounds the upstream fetch: canceling it
// abandons the in-flight registry request.
type Handler func(ctx context.Context, args map[string]any) ([]ContentPart, error)

const (
	// GetNPMDocsName is the canonical name for the npm docs tool.
	GetNPMDocsName = "get_npm_docs"
	// GetPyPIDocsName is the canonical name for the PyPI docs tool.
	GetPyPIDocsName = "get_pypi_docs"
)

// ArgumentError reports a missing or malformed tool argument. It is kept
// distinct from upstream failures so the dispatcher can report it as an
// invalid-params error.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return e.Reason }

// packageNameSchema is the argument schema shared by both tools: exactly one
// required, non-empty string field.
func packageNameSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"package_name": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": description,
			},
		},
		"required": []string{"package_name"},
	}
}

// packageNameFromArgs extracts and checks the package_name argument. The
// dispatcher validates arguments against the schema before invoking a
// handler; this re-check keeps handlers safe when called directly.
func packageNameFromArgs(args map[string]any) (string, error) {
	value, ok := args["package_name"]
	if !ok {
		return "", &ArgumentError{Reason: "'package_name' argument is required"}
	}
	name, ok := value.(string)
	if !ok {
		return "", &ArgumentError{Reason: "'package_name' argument must be a string"}
	}
	if name == "" {
		return "", &ArgumentError{Reason: "'package_name' argument cannot be empty"}
	}
	return name, nil
}
