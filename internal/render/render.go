// internal/render/render.go
// Package render turns registry records into Markdown documents. Rendering is
// a pure function of the record and the originally requested package name:
// the same inputs always produce byte-identical output. Section order is
// fixed per registry; a missing field skips its section, nothing more.
package render

import (
	"fmt"
	"strings"

	"github.com/mwiater/pkgdocs/internal/registry"
)

// NPMDocument renders an npm package record. requested is the identifier the
// caller asked for and is embedded verbatim in the install command, even when
// it differs from the resolved package name.
func NPMDocument(pkg *registry.NPMPackage, requested string) (string, error) {
	tag, latest, err := pkg.Latest()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s v%s\n", pkg.Name, tag))

	if pkg.Description != "" {
		b.WriteString("\n" + pkg.Description + "\n")
	}

	b.WriteString("\n## Installation\n\n")
	b.WriteString(fmt.Sprintf("```\nnpm install %s\n```\n", requested))

	if latest.Homepage != "" {
		b.WriteString("\n## Homepage\n\n" + latest.Homepage + "\n")
	}

	if latest.Repository != nil && latest.Repository.URL != "" {
		url := strings.Replace(latest.Repository.URL, "git+", "", 1)
		b.WriteString("\n## Repository\n\n" + url + "\n")
	}

	if len(latest.Keywords) > 0 {
		b.WriteString("\n## Keywords\n\n" + strings.Join(latest.Keywords, ", ") + "\n")
	}

	if pkg.Readme != "" {
		b.WriteString("\n## Documentation\n\n" + pkg.Readme + "\n")
	}

	return b.String(), nil
}

// PyPIDocument renders a PyPI project record. Keywords are emitted as the
// opaque string upstream published; project links keep upstream order.
func PyPIDocument(project *registry.PyPIProject, requested string) (string, error) {
	info := project.Info
	if info == nil {
		return "", &registry.SchemaError{Registry: "pypi", Detail: "missing info object"}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s v%s\n", info.Name, info.Version))

	if info.Summary != "" {
		b.WriteString("\n" + info.Summary + "\n")
	}

	b.WriteString("\n## Installation\n\n")
	b.WriteString(fmt.Sprintf("```\npip install %s\n```\n", requested))

	if info.HomePage != "" {
		b.WriteString("\n## Homepage\n\n" + info.HomePage + "\n")
	}

	if len(info.ProjectURLs) > 0 {
		b.WriteString("\n## Project Links\n\n")
		for _, link := range info.ProjectURLs {
			b.WriteString(fmt.Sprintf("- %s: %s\n", link.Name, link.URL))
		}
	}

	if info.Keywords != "" {
		b.WriteString("\n## Keywords\n\n" + info.Keywords + "\n")
	}

	if info.Description != "" {
		b.WriteString("\n## Documentation\n\n" + info.Description + "\n")
	}

	return b.String(), nil
}
