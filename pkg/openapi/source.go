package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceKind tells a loader how to resolve Source.Location.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source is the origin of an OpenAPI document.
type Source interface {
	Kind() SourceKind
	Location() string
}

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source identifying a resource inside the loader's
// fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: strings.TrimPrefix(name, "/")}
}

// SourceFromURL validates raw as an absolute http(s) URL.
func SourceFromURL(raw string) (Source, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("openapi: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("openapi: unsupported URL scheme %q", u.Scheme)
	}
	return source{kind: SourceKindURL, location: u.String()}, nil
}

// ParseSource picks a URL source for http(s) locations and a file source
// otherwise. CLI flags use this.
func ParseSource(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("openapi: empty source location")
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return SourceFromURL(location)
	}
	return SourceFromFile(location), nil
}
