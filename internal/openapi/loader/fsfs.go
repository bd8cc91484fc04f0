package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
)

// maxDocumentSize bounds remote payloads.
const maxDocumentSize = 10 << 20

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(filesystem, name)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func loadHTTP(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}
