// internal/registry/registry.go
// Package registry contains the HTTP clients for the upstream package
// registries and the record types their responses parse into. Each client
// performs exactly one lookup per call: no retries, no caching.
package registry

import "fmt"

// userAgent identifies outbound registry requests.
const userAgent = "pkgdocs-mcp/0.1.0 (dev)"

// SchemaError reports a successful upstream response whose body is missing
// the structure the rest of the pipeline depends on. It is kept distinct from
// transport failures so the dispatcher can report it as its own error kind.
type SchemaError struct {
	Registry string
	Detail   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s registry returned a malformed response: %s", e.Registry, e.Detail)
}
