package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PyPIProject is the top-level document returned by the PyPI JSON API.
type PyPIProject struct {
	Info *PyPIInfo `json:"info"`
}

// PyPIInfo is the subset of the "info" object the renderer consumes.
// Keywords stays a single opaque string: upstream publishes it free-form.
type PyPIInfo struct {
	Name        string      `json:"name"`
	Version     string      `json:"version"`
	Summary     string      `json:"summary"`
	HomePage    string      `json:"home_page"`
	ProjectURLs ProjectURLs `json:"project_urls"`
	Keywords    string      `json:"keywords"`
	Description string      `json:"description"`
}

// ProjectURL is one named link from the project_urls mapping.
type ProjectURL struct {
	Name string
	URL  string
}

// ProjectURLs preserves the upstream ordering of the project_urls object,
// which decoding into a map would lose.
type ProjectURLs []ProjectURL

func (p *ProjectURLs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("project_urls: expected object, got %v", tok)
	}

	var urls ProjectURLs
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("project_urls: unexpected key %v", keyTok)
		}
		var url string
		if err := dec.Decode(&url); err != nil {
			return err
		}
		urls = append(urls, ProjectURL{Name: key, URL: url})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = urls
	return nil
}

// PyPIClient fetches project documents from the PyPI JSON API.
type PyPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPyPIClient returns a client for the index at baseURL. The timeout bounds
// each lookup end to end.
func NewPyPIClient(baseURL string, timeout time.Duration) *PyPIClient {
	return &PyPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and validates the project document for the named package.
func (c *PyPIClient) Fetch(ctx context.Context, name string) (*PyPIProject, error) {
	endpoint := fmt.Sprintf("%s/%s/json", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pypi request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pypi registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pypi registry returned status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pypi response: %w", err)
	}

	var project PyPIProject
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, &SchemaError{Registry: "pypi", Detail: err.Error()}
	}
	if project.Info == nil {
		return nil, &SchemaError{Registry: "pypi", Detail: "missing info object"}
	}
	return &project, nil
}
