package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-listingwizard/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
)

const payload = "openapi: 3.0.3\n"

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := loader.New(pkgopenapi.NewLoaderOptions()).Load(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload || doc.Location() != path {
		t.Fatalf("unexpected document %q from %q", doc.Raw(), doc.Location())
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{"specs/listing.yaml": {Data: []byte(payload)}}
	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))

	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/listing.yaml")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.yaml" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	src, err := pkgopenapi.SourceFromURL(server.URL + "/openapi.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	disabled := loader.New(pkgopenapi.NewLoaderOptions())
	if _, err := disabled.Load(context.Background(), src); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}

	enabled := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(server.Client())))
	doc, err := enabled.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}

	missing, _ := pkgopenapi.SourceFromURL(server.URL + "/nope.yaml")
	if _, err := enabled.Load(context.Background(), missing); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "listing.yaml")
	_ = os.WriteFile(path, []byte(payload), 0o644)

	if _, err := loader.New(pkgopenapi.NewLoaderOptions()).Load(ctx, pkgopenapi.SourceFromFile(path)); err == nil {
		t.Fatalf("expected context error")
	}
}
