package registry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPyPIFetchSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/requests/json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "info": {
                "name": "requests",
                "version": "2.32.0",
                "summary": "Python HTTP for Humans.",
                "home_page": "https://requests.readthedocs.io",
                "project_urls": {"Documentation": "https://d", "Source": "https://s"},
                "keywords": "http, requests",
                "description": "Requests is an HTTP library."
            }
        }`))
	}))
	defer server.Close()

	client := NewPyPIClient(server.URL, 5*time.Second)
	project, err := client.Fetch(context.Background(), "requests")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if project.Info.Name != "requests" || project.Info.Version != "2.32.0" {
		t.Fatalf("unexpected info: %+v", project.Info)
	}
	if len(project.Info.ProjectURLs) != 2 {
		t.Fatalf("expected 2 project urls, got %d", len(project.Info.ProjectURLs))
	}
}

func TestPyPIFetchMissingInfo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"releases": {}}`))
	}))
	defer server.Close()

	client := NewPyPIClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "odd")
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Registry != "pypi" {
		t.Fatalf("unexpected registry in error: %q", schemaErr.Registry)
	}
}

func TestPyPIFetchNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewPyPIClient(server.URL, 5*time.Second)
	if _, err := client.Fetch(context.Background(), "no-such-project"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestProjectURLsPreserveOrder(t *testing.T) {
	t.Parallel()

	raw := `{"Zebra": "https://z", "Alpha": "https://a", "Middle": "https://m"}`
	var urls ProjectURLs
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []ProjectURL{
		{Name: "Zebra", URL: "https://z"},
		{Name: "Alpha", URL: "https://a"},
		{Name: "Middle", URL: "https://m"},
	}
	if len(urls) != len(want) {
		t.Fatalf("expected %d urls, got %d", len(want), len(urls))
	}
	for i, u := range urls {
		if u != want[i] {
			t.Fatalf("url %d: expected %+v, got %+v", i, want[i], u)
		}
	}
}

func TestProjectURLsNull(t *testing.T) {
	t.Parallel()

	var info PyPIInfo
	if err := json.Unmarshal([]byte(`{"name": "x", "version": "1", "project_urls": null}`), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(info.ProjectURLs) != 0 {
		t.Fatalf("expected no project urls, got %+v", info.ProjectURLs)
	}
}
