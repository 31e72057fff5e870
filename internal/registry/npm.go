package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NPMPackage is the subset of an npm registry document the renderer consumes.
type NPMPackage struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	DistTags    map[string]string     `json:"dist-tags"`
	Versions    map[string]NPMVersion `json:"versions"`
	Readme      string                `json:"readme"`
}

// NPMVersion carries the per-version metadata published with a release.
type NPMVersion struct {
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Homepage   string         `json:"homepage"`
	Repository *NPMRepository `json:"repository"`
	Keywords   []string       `json:"keywords"`
}

// NPMRepository is the repository entry of a version record.
type NPMRepository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// UnmarshalJSON accepts both the object form and the bare-string form the
// registry serves for older packages.
func (r *NPMRepository) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return err
		}
		r.URL = url
		return nil
	}
	type repository NPMRepository
	var repo repository
	if err := json.Unmarshal(data, &repo); err != nil {
		return err
	}
	*r = NPMRepository(repo)
	return nil
}

// Latest resolves the "latest" dist-tag to its version record. Absence of the
// tag or of the matching versions entry is a schema error, not a lookup miss.
func (p *NPMPackage) Latest() (string, NPMVersion, error) {
	tag, ok := p.DistTags["latest"]
	if !ok || tag == "" {
		return "", NPMVersion{}, &SchemaError{Registry: "npm", Detail: "missing dist-tags.latest"}
	}
	version, ok := p.Versions[tag]
	if !ok {
		return "", NPMVersion{}, &SchemaError{Registry: "npm", Detail: fmt.Sprintf("missing versions entry for latest tag %q", tag)}
	}
	return tag, version, nil
}

// NPMClient fetches package documents from an npm-compatible registry.
type NPMClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNPMClient returns a client for the registry at baseURL. The timeout
// bounds each lookup end to end.
func NewNPMClient(baseURL string, timeout time.Duration) *NPMClient {
	return &NPMClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and validates the registry document for the named package.
// The name is used verbatim in the request path; scoped names (@org/pkg) are
// accepted as-is by the registry.
func (c *NPMClient) Fetch(ctx context.Context, name string) (*NPMPackage, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create npm request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("npm registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("npm registry returned status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read npm response: %w", err)
	}

	var pkg NPMPackage
	if err := json.Unmarshal(body, &pkg); err != nil {
		return nil, &SchemaError{Registry: "npm", Detail: err.Error()}
	}
	if _, _, err := pkg.Latest(); err != nil {
		return nil, err
	}
	return &pkg, nil
}
