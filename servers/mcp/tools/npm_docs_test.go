package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mwiater/pkgdocs/internal/appconfig"
	"github.com/mwiater/pkgdocs/internal/registry"
)

func TestGetNPMDocsSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "name": "left-pad",
            "description": "String left pad",
            "dist-tags": {"latest": "1.3.0"},
            "versions": {"1.3.0": {"version": "1.3.0", "homepage": "https://example.com"}},
            "readme": "# left-pad\n\npad strings"
        }`))
	}))
	defer server.Close()

	ts := New(appconfig.Config{NPMRegistryURL: server.URL, TimeoutSeconds: 5})
	parts, err := ts.GetNPMDocs(context.Background(), map[string]any{"package_name": "left-pad"})
	if err != nil {
		t.Fatalf("GetNPMDocs error: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("expected one content part, got %d", len(parts))
	}
	if parts[0].Type != "text" {
		t.Fatalf("expected text content, got %q", parts[0].Type)
	}
	if !strings.Contains(parts[0].Text, "# left-pad v1.3.0") {
		t.Fatalf("unexpected document: %s", parts[0].Text)
	}
	if !strings.Contains(parts[0].Text, "npm install left-pad") {
		t.Fatalf("expected install command, got: %s", parts[0].Text)
	}
}

func TestGetNPMDocsFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	ts := New(appconfig.Config{NPMRegistryURL: server.URL, TimeoutSeconds: 5})
	_, err := ts.GetNPMDocs(context.Background(), map[string]any{"package_name": "left-pad"})
	if err == nil {
		t.Fatal("expected error for upstream failure")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected upstream status in error text, got: %v", err)
	}
}

func TestGetNPMDocsSchemaMismatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "odd"}`))
	}))
	defer server.Close()

	ts := New(appconfig.Config{NPMRegistryURL: server.URL, TimeoutSeconds: 5})
	_, err := ts.GetNPMDocs(context.Background(), map[string]any{"package_name": "odd"})
	var schemaErr *registry.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestGetNPMDocsBadArguments(t *testing.T) {
	t.Parallel()

	ts := New(appconfig.Config{})
	_, err := ts.GetNPMDocs(context.Background(), map[string]any{})
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
}
