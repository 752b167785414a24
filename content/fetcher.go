package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FetchError reports a content or manifest document that could not be
// loaded, carrying the path and (for HTTP roots) the response status.
type FetchError struct {
	Path   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to load %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves one document by its path relative to the content root.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// NewFetcher picks an implementation from the content root: an http(s) URL
// fetches over the network, anything else reads from the local filesystem.
func NewFetcher(contentRoot string) Fetcher {
	if strings.HasPrefix(contentRoot, "http://") || strings.HasPrefix(contentRoot, "https://") {
		return &HTTPFetcher{BaseURL: strings.TrimSuffix(contentRoot, "/"), Client: http.DefaultClient}
	}
	return &DirFetcher{Root: contentRoot}
}

// DirFetcher serves documents from a directory on disk.
type DirFetcher struct {
	Root string
}

func (f *DirFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.Root, filepath.FromSlash(path)))
	if err != nil {
		return nil, &FetchError{Path: path, Err: err}
	}
	return data, nil
}

// HTTPFetcher retrieves documents from a remote content root.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := f.BaseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Path: path, Err: errors.WithStack(err)}
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Path: path, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Path: path, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Path: path, Err: errors.WithStack(err)}
	}
	return data, nil
}
