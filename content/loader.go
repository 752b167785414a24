package content

import (
	"context"
	"encoding/json"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/RZeijlon/ResumeRobertZeijlon/frontmatter"
)

// Record is one loaded content document.
type Record struct {
	// ID is derived from the source path: final segment, extension removed.
	// Two paths that normalize to the same filename collide; the index makes
	// that resolution deterministic (manifest order, last wins).
	ID        string
	Body      string
	Metadata  map[string]any
	RawSource string
}

// DeriveID maps a source path to its record id.
func DeriveID(sourcePath string) string {
	base := path.Base(strings.ReplaceAll(sourcePath, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Loader normalizes fetched documents into typed records.
type Loader struct {
	fetcher Fetcher
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// LoadConfig fetches a JSON configuration document into v.
func (l *Loader) LoadConfig(ctx context.Context, configPath string, v any) error {
	data, err := l.fetcher.Fetch(ctx, configPath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &FetchError{Path: configPath, Err: err}
	}
	return nil
}

// LoadContent fetches one content document and parses its metadata block.
func (l *Loader) LoadContent(ctx context.Context, contentPath string) (*Record, error) {
	data, err := l.fetcher.Fetch(ctx, contentPath)
	if err != nil {
		return nil, err
	}

	raw := string(data)
	doc := frontmatter.Parse(raw)

	return &Record{
		ID:        DeriveID(contentPath),
		Body:      doc.Body,
		Metadata:  doc.Metadata,
		RawSource: raw,
	}, nil
}

// LoadMany fetches documents concurrently. The result preserves input order;
// the call fails as a whole when any individual fetch fails.
func (l *Loader) LoadMany(ctx context.Context, paths []string) ([]*Record, error) {
	records := make([]*Record, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			record, err := l.LoadContent(gctx, p)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
